package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/edit"
	"github.com/picksplaydoit-ai/superappprofe/internal/storage"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	repo   *storage.CourseRepo
	blobs  storage.BlobStore
	out    io.Writer
	logger *zap.Logger
	rnd    *rand.Rand
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  course new -name NAME -group GROUP          - create a course")
	fmt.Fprintln(cli.out, "  course list                                 - list courses")
	fmt.Fprintln(cli.out, "  course rm -course ID|NAME                   - delete a course")
	fmt.Fprintln(cli.out, "  student import -course C (-file F | -names \"A;B\")")
	fmt.Fprintln(cli.out, "  student rm -course C -student ID|NAME")
	fmt.Fprintln(cli.out, "  student clear -course C")
	fmt.Fprintln(cli.out, "  team auto -course C -size N | team clear -course C")
	fmt.Fprintln(cli.out, "  team set -course C -student S -team T")
	fmt.Fprintln(cli.out, "  rubric set -course C [-min-attendance P] [-min-grade G] -item NAME:PCT ...")
	fmt.Fprintln(cli.out, "  activity add -course C -name N -item RUBRIC -type CHECK|SCALE|POINTS [-max M] [-team]")
	fmt.Fprintln(cli.out, "  activity rm -course C -activity ID|NAME")
	fmt.Fprintln(cli.out, "  grade set -course C -activity A (-student S | -team T) -value V")
	fmt.Fprintln(cli.out, "  grade toggle -course C -activity A (-student S | -team T)")
	fmt.Fprintln(cli.out, "  grade clear -course C -activity A")
	fmt.Fprintln(cli.out, "  attend mark -course C -date YYYY-MM-DD (-student S | -team T) -status present|absent")
	fmt.Fprintln(cli.out, "  attend team -course C -date YYYY-MM-DD -team T")
	fmt.Fprintln(cli.out, "  report -course C [-mode grades|attendance] [-filter all|q1..q4|MONTH] [-format table|csv|xlsx|json] [-out FILE]")
	fmt.Fprintln(cli.out, "  missing -course C -student S [-item RUBRIC]")
	fmt.Fprintln(cli.out, "  stats -course C -student S [-filter F]")
	fmt.Fprintln(cli.out, "  context -course C [-action risk|dynamic|monthly] [-format text|json]")
	fmt.Fprintln(cli.out, "  exports list | exports cat -key KEY")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	sub := ""
	if len(args) > 2 {
		sub = args[2]
	}
	switch args[1] {
	case "course":
		return cli.courseCmd(ctx, sub, tail(args, 3))
	case "student":
		return cli.studentCmd(ctx, sub, tail(args, 3))
	case "team":
		return cli.teamCmd(ctx, sub, tail(args, 3))
	case "rubric":
		return cli.rubricCmd(ctx, sub, tail(args, 3))
	case "activity":
		return cli.activityCmd(ctx, sub, tail(args, 3))
	case "grade":
		return cli.gradeCmd(ctx, sub, tail(args, 3))
	case "attend":
		return cli.attendCmd(ctx, sub, tail(args, 3))
	case "report":
		return cli.reportCmd(ctx, tail(args, 2))
	case "missing":
		return cli.missingCmd(ctx, tail(args, 2))
	case "stats":
		return cli.statsCmd(ctx, tail(args, 2))
	case "context":
		return cli.contextCmd(ctx, tail(args, 2))
	case "exports":
		return cli.exportsCmd(sub, tail(args, 3))
	default:
		cli.printUsage()
		return errHelp
	}
}

func tail(args []string, n int) []string {
	if len(args) <= n {
		return nil
	}
	return args[n:]
}

func (cli *commandLine) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// loadCourse resolves -course by id or unique name.
func (cli *commandLine) loadCourse(ctx context.Context, fs *flag.FlagSet, key string) (course.Course, error) {
	if key == "" {
		fs.Usage()
		return course.Course{}, errHelp
	}
	c, err := cli.repo.Find(ctx, key)
	if err != nil {
		return course.Course{}, fmt.Errorf("course %q: %w", key, err)
	}
	return c, nil
}

// update applies fn to c and saves the result.
func (cli *commandLine) update(ctx context.Context, c course.Course, fn func(course.Course) (course.Course, error)) (course.Course, error) {
	next, err := fn(c)
	if err != nil {
		return c, err
	}
	cli.repo.Save(ctx, next)
	return next, nil
}

// updateRecords routes attendance and grade edits through a draft so that a
// no-op edit does not rewrite the stored course.
func (cli *commandLine) updateRecords(ctx context.Context, c course.Course, fn func(course.Course) (course.Course, error)) (course.Course, error) {
	d, err := edit.NewDraft(c).Apply(c, fn)
	if err != nil {
		return c, err
	}
	if !d.Dirty(c) {
		cli.logger.Debug("no changes", zap.String("course", c.ID))
		return c, nil
	}
	next := d.Commit(c)
	cli.repo.Save(ctx, next)
	return next, nil
}

func findStudent(c course.Course, key string) (course.Student, error) {
	if st, ok := c.Student(key); ok {
		return st, nil
	}
	for _, st := range c.Students {
		if strings.EqualFold(st.Name, key) {
			return st, nil
		}
	}
	return course.Student{}, fmt.Errorf("student %q: %w", key, course.ErrStudentNotFound)
}

func findActivity(c course.Course, key string) (course.Activity, error) {
	if a, ok := c.Activity(key); ok {
		return a, nil
	}
	for _, a := range c.Activities {
		if strings.EqualFold(a.Name, key) {
			return a, nil
		}
	}
	return course.Activity{}, fmt.Errorf("activity %q: %w", key, course.ErrActivityNotFound)
}

func findRubricItem(c course.Course, key string) (course.RubricItem, bool) {
	if it, ok := c.RubricItem(key); ok {
		return it, true
	}
	for _, it := range c.Rubric.Items {
		if strings.EqualFold(it.Name, key) {
			return it, true
		}
	}
	return course.RubricItem{}, false
}

// target builds an edit target from -student / -team flags.
func target(c course.Course, student, team string) (edit.Target, error) {
	switch {
	case team != "" && student != "":
		return edit.Target{}, errors.New("use either -student or -team")
	case team != "":
		return edit.Team(team), nil
	case student != "":
		st, err := findStudent(c, student)
		if err != nil {
			return edit.Target{}, err
		}
		return edit.Student(st.ID), nil
	}
	return edit.Target{}, errors.New("-student or -team is required")
}
