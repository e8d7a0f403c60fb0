package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/report"
)

func TestRawAverage(t *testing.T) {
	c := classroom()

	assert.InDelta(t, 85, report.RawAverage(c, "a"), 1e-9)
	assert.InDelta(t, 25, report.RawAverage(c, "b"), 1e-9)
	assert.Zero(t, report.RawAverage(c, "nobody"))
}

func TestAssistantContext(t *testing.T) {
	c := classroom()

	got := report.AssistantContext(c)

	assert.Contains(t, got, "Nombre: Química\n")
	assert.Contains(t, got, "Grupo: 4A\n")
	assert.Contains(t, got, "- ana: Promedio actual 85.0\n")
	assert.Contains(t, got, "- Carla: Promedio actual 50.5\n")
	assert.Contains(t, got, "- Parcial 1 (SCALE)\n")
	assert.Contains(t, got, "Rúbrica: Mínimo asistencia 80%, Mínimo nota 60.\n")
	assert.Less(t, strings.Index(got, "Carla"), strings.Index(got, "ana"), "roster order")
}

func TestAssistantContextEmptyCourse(t *testing.T) {
	got := report.AssistantContext(course.New("Vacío", ""))

	assert.Contains(t, got, "Alumnos y su estado actual:\nActividades registradas:\n")
	assert.Contains(t, got, "Instrucciones:")
}

func TestFindQuickAction(t *testing.T) {
	qa, ok := report.FindQuickAction("RISK")
	require.True(t, ok)
	assert.Equal(t, "Analizar Riesgos", qa.Label)

	qa, ok = report.FindQuickAction("resumen mensual")
	require.True(t, ok)
	assert.Equal(t, "monthly", qa.Key)

	_, ok = report.FindQuickAction("poema")
	assert.False(t, ok)
	assert.Len(t, report.QuickActions, 3)
}
