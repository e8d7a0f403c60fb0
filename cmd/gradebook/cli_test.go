package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/storage"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer, string) {
	t.Helper()
	log := zaptest.NewLogger(t)
	dir := t.TempDir()
	blobs, err := storage.NewFSStore(dir)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &commandLine{
		repo:   storage.NewCourseRepo(storage.NewStore(storage.NewMemoryKV(), "", log)),
		blobs:  blobs,
		out:    out,
		logger: log,
		rnd:    rand.New(rand.NewSource(7)),
	}, out, dir
}

// run executes one command line and returns what it printed.
func run(t *testing.T, cli *commandLine, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	err := cli.run(context.Background(), append([]string{"gradebook"}, strings.Fields(line)...))
	require.NoError(t, err, line)
	return out.String()
}

func TestCommandLineHelp(t *testing.T) {
	cli, out, _ := setup(t)

	assert.Equal(t, errHelp, cli.run(context.Background(), []string{"gradebook"}))
	assert.Contains(t, out.String(), "Usage:")

	assert.Equal(t, errHelp, cli.run(context.Background(), []string{"gradebook", "bogus"}))
	assert.Equal(t, errHelp, cli.run(context.Background(), []string{"gradebook", "course", "new"}))
}

func TestCommandLineWorkflow(t *testing.T) {
	cli, out, dir := setup(t)
	ctx := context.Background()

	id := strings.TrimSpace(run(t, cli, out, "course new -name Física -group 3A"))
	require.NotEmpty(t, id)
	assert.Contains(t, run(t, cli, out, "course list"), "Física")

	assert.Contains(t, run(t, cli, out, "student import -course Física -names Sofía;Tomás;sofia"), "2 alumnos")
	assert.Contains(t, run(t, cli, out, "student import -course Física -names Tomás"), "no se encontraron")

	run(t, cli, out, "rubric set -course Física -item Exámenes:60 -item Tareas:40")
	run(t, cli, out, "activity add -course Física -name Parcial -item Exámenes -type SCALE")
	run(t, cli, out, "activity add -course Física -name Tarea -item Tareas -type check")

	run(t, cli, out, "grade set -course Física -activity Parcial -student Sofía -value 80")
	run(t, cli, out, "grade toggle -course Física -activity Tarea -student Sofía")

	for _, d := range []string{"2024-02-01", "2024-02-08"} {
		run(t, cli, out, "attend mark -course Física -date "+d+" -student Sofía -status present")
	}
	run(t, cli, out, "attend mark -course Física -date 2024-02-01 -student Tomás -status absent")

	c, err := cli.repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, c.Students, 2)
	assert.Len(t, c.Grades, 2)
	assert.Len(t, c.Attendance, 3)

	csvOut := run(t, cli, out, "report -course Física -format csv -out -")
	assert.Contains(t, csvOut, "Sofía,80.0,100.0,88.0,100.0%,Aprobado,0")
	assert.Contains(t, csvOut, "Tomás,0.0,0.0,0.0,0.0%,Sin Derecho,2")

	table := run(t, cli, out, "report -course Física -mode attendance -filter febrero")
	assert.Contains(t, table, "Sofía")
	assert.Contains(t, table, "Aprobados 1")

	url := run(t, cli, out, "report -course Física -format xlsx")
	assert.True(t, strings.HasPrefix(url, "file://"))
	assert.FileExists(t, filepath.Join(dir, "Reporte_grades_3A.xlsx"))

	assert.Contains(t, run(t, cli, out, "missing -course Física -student Tomás"), "Parcial")
	assert.Contains(t, run(t, cli, out, "missing -course Física -student Sofía"), "sin pendientes")
	assert.Contains(t, run(t, cli, out, "stats -course Física -student Sofía"), "Aprobado")

	assert.Equal(t, "Reporte_grades_3A.xlsx\n", run(t, cli, out, "exports list"))
	run(t, cli, out, "report -course Física -format csv -out notas.csv")
	assert.Equal(t, csvOut, run(t, cli, out, "exports cat -key notas.csv"))

	err = cli.run(ctx, []string{"gradebook", "exports", "cat", "-key", "nada.csv"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCommandLineContext(t *testing.T) {
	cli, out, _ := setup(t)

	run(t, cli, out, "course new -name Historia -group 2C")
	run(t, cli, out, "student import -course Historia -names Ana;Beto")
	run(t, cli, out, "rubric set -course Historia -item Tareas:100")
	run(t, cli, out, "activity add -course Historia -name Ensayo -item Tareas -type SCALE")
	run(t, cli, out, "grade set -course Historia -activity Ensayo -student Ana -value 90")

	text := run(t, cli, out, "context -course Historia -action risk")
	assert.Contains(t, text, "Grupo: 2C")
	assert.Contains(t, text, "- Ana: Promedio actual 90.0")
	assert.Contains(t, text, "- Beto: Promedio actual 0.0")
	assert.Contains(t, text, "- Ensayo (SCALE)")
	assert.True(t, strings.HasSuffix(text, "¿Qué alumnos están en riesgo de reprobar según sus notas y qué les falta?\n"))

	var req assistantRequest
	require.NoError(t, json.Unmarshal([]byte(run(t, cli, out, "context -course Historia -format json")), &req))
	assert.Empty(t, req.Prompt)
	assert.Len(t, req.QuickActions, 3)
	assert.Contains(t, req.SystemInstruction, "Nombre: Historia")

	assert.Error(t, cli.run(context.Background(), []string{"gradebook", "context", "-course", "Historia", "-action", "poema"}))
}

func TestCommandLineTeams(t *testing.T) {
	cli, out, _ := setup(t)
	ctx := context.Background()

	id := strings.TrimSpace(run(t, cli, out, "course new -name Arte -group 1B"))
	run(t, cli, out, "student import -course Arte -names Ana;Beto;Carla;Dani")
	assert.Contains(t, run(t, cli, out, "team auto -course Arte -size 2"), "2 equipos")

	run(t, cli, out, "rubric set -course Arte -item Proyecto:100")
	run(t, cli, out, "activity add -course Arte -name Mural -item Proyecto -type SCALE -team")
	run(t, cli, out, "grade set -course Arte -activity Mural -team 1 -value 95")
	run(t, cli, out, "attend team -course Arte -date 2024-05-02 -team 2")

	c, err := cli.repo.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, c.Grades, 2)
	for _, g := range c.Grades {
		st, _ := c.Student(g.StudentID)
		assert.Equal(t, "1", st.TeamID)
		assert.Equal(t, 95.0, g.Value)
	}
	require.Len(t, c.Attendance, 2)
	for _, r := range c.Attendance {
		assert.Equal(t, course.Present, r.Status)
	}

	run(t, cli, out, "team clear -course Arte")
	c, err = cli.repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{course.NoTeam}, course.Teams(c))
}

func TestCommandLineErrors(t *testing.T) {
	cli, out, _ := setup(t)
	ctx := context.Background()

	run(t, cli, out, "course new -name Química")

	err := cli.run(ctx, []string{"gradebook", "student", "rm", "-course", "Historia", "-student", "x"})
	assert.ErrorIs(t, err, course.ErrCourseNotFound)

	err = cli.run(ctx, []string{"gradebook", "rubric", "set", "-course", "Química", "-item", "Todo:90"})
	assert.ErrorIs(t, err, course.ErrInvalidRubric)

	err = cli.run(ctx, []string{"gradebook", "grade", "set", "-course", "Química", "-activity", "X", "-student", "Y", "-value", "1"})
	assert.ErrorIs(t, err, course.ErrActivityNotFound)
}

func TestRunMainExitCode(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRADEBOOK_STORAGE_DRIVER", "sqlite")
	t.Setenv("GRADEBOOK_STORAGE_DSN", filepath.Join(dir, "gb.db"))
	t.Setenv("GRADEBOOK_EXPORT_DIR", filepath.Join(dir, "reports"))
	t.Setenv("GRADEBOOK_LOG_LEVEL", "error")

	assert.Equal(t, 0, runMain([]string{"gradebook", "course", "new", "-name", "Arte"}))
	assert.Equal(t, 1, runMain([]string{"gradebook", "course", "rm", "-course", "Música"}))
	// the sqlite file was closed and can be reopened with the saved course
	assert.Equal(t, 0, runMain([]string{"gradebook", "course", "rm", "-course", "Arte"}))

	t.Setenv("GRADEBOOK_STORAGE_DRIVER", "mongo")
	assert.Equal(t, 1, runMain([]string{"gradebook", "course", "list"}))
}
