package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/edit"
	"github.com/picksplaydoit-ai/superappprofe/internal/export"
)

func (cli *commandLine) courseCmd(ctx context.Context, sub string, args []string) error {
	fs := cli.flagSet("course " + sub)
	name := fs.String("name", "", "Course name")
	group := fs.String("group", "", "Group name")
	key := fs.String("course", "", "Course id or name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch sub {
	case "new":
		if *name == "" {
			fs.Usage()
			return errHelp
		}
		c := course.New(*name, *group)
		cli.repo.Save(ctx, c)
		cli.logger.Info("course created", zap.String("id", c.ID), zap.String("name", c.Name))
		fmt.Fprintln(cli.out, c.ID)
		return nil
	case "list":
		for _, c := range cli.repo.List(ctx) {
			fmt.Fprintf(cli.out, "%s\t%s\t%s\t%d alumnos\n", c.ID, c.Name, c.GroupName, len(c.Students))
		}
		return nil
	case "rename":
		c, err := cli.loadCourse(ctx, fs, *key)
		if err != nil {
			return err
		}
		cli.repo.Save(ctx, edit.RenameCourse(c, *name, *group))
		return nil
	case "rm":
		c, err := cli.loadCourse(ctx, fs, *key)
		if err != nil {
			return err
		}
		return cli.repo.Delete(ctx, c.ID)
	}
	cli.printUsage()
	return errHelp
}

func (cli *commandLine) studentCmd(ctx context.Context, sub string, args []string) error {
	fs := cli.flagSet("student " + sub)
	key := fs.String("course", "", "Course id or name")
	file := fs.String("file", "", "Roster file (.txt, .csv or .xlsx)")
	names := fs.String("names", "", "Semicolon separated names")
	student := fs.String("student", "", "Student id or name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}

	switch sub {
	case "import":
		list, err := readRoster(*file, *names)
		if err != nil {
			return err
		}
		next, res := edit.ImportStudents(c, list)
		if res.Empty() {
			fmt.Fprintln(cli.out, "no se encontraron alumnos nuevos")
			return nil
		}
		cli.repo.Save(ctx, next)
		cli.logger.Info("students imported",
			zap.Int("added", len(res.Added)), zap.Int("skipped", len(res.Skipped)))
		fmt.Fprintf(cli.out, "%d alumnos agregados\n", len(res.Added))
		return nil
	case "rm":
		st, err := findStudent(c, *student)
		if err != nil {
			return err
		}
		_, err = cli.update(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.DeleteStudent(c, st.ID)
		})
		return err
	case "clear":
		cli.repo.Save(ctx, edit.ClearStudents(c))
		return nil
	}
	cli.printUsage()
	return errHelp
}

func readRoster(file, names string) ([]string, error) {
	if file == "" {
		if names == "" {
			return nil, fmt.Errorf("-file or -names is required")
		}
		return strings.Split(names, ";"), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(file)) {
	case ".csv":
		return export.ParseRosterCSV(f)
	case ".xlsx":
		return export.ParseRosterXLSX(f)
	default:
		return export.ParseRosterText(f)
	}
}

func (cli *commandLine) teamCmd(ctx context.Context, sub string, args []string) error {
	fs := cli.flagSet("team " + sub)
	key := fs.String("course", "", "Course id or name")
	size := fs.Int("size", 3, "Students per team")
	student := fs.String("student", "", "Student id or name")
	team := fs.String("team", "", "Team label")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}

	switch sub {
	case "auto":
		next := edit.AutoAssignTeams(c, *size, cli.rnd)
		cli.repo.Save(ctx, next)
		fmt.Fprintf(cli.out, "%d equipos\n", len(course.Teams(next)))
		return nil
	case "clear":
		cli.repo.Save(ctx, edit.ClearTeams(c))
		return nil
	case "set":
		st, err := findStudent(c, *student)
		if err != nil {
			return err
		}
		_, err = cli.update(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.AssignTeam(c, st.ID, *team)
		})
		return err
	case "list":
		for _, t := range course.Teams(c) {
			var names []string
			for _, s := range course.StudentsInTeam(c, t) {
				names = append(names, s.Name)
			}
			fmt.Fprintf(cli.out, "%s\t%s\n", t, strings.Join(names, ", "))
		}
		return nil
	}
	cli.printUsage()
	return errHelp
}

// itemsFlag collects repeated -item NAME:PCT values.
type itemsFlag []course.RubricItem

func (f *itemsFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, it := range *f {
		parts = append(parts, fmt.Sprintf("%s:%g", it.Name, it.Percentage))
	}
	return strings.Join(parts, ",")
}

func (f *itemsFlag) Set(s string) error {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return fmt.Errorf("item must look like NAME:PCT, got %q", s)
	}
	pct, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
	if err != nil {
		return fmt.Errorf("item %q: %w", s, err)
	}
	*f = append(*f, course.RubricItem{Name: strings.TrimSpace(s[:i]), Percentage: pct})
	return nil
}

func (cli *commandLine) rubricCmd(ctx context.Context, sub string, args []string) error {
	fs := cli.flagSet("rubric " + sub)
	key := fs.String("course", "", "Course id or name")
	minAtt := fs.Float64("min-attendance", -1, "Minimum attendance percentage")
	minGrade := fs.Float64("min-grade", -1, "Minimum passing grade")
	var items itemsFlag
	fs.Var(&items, "item", "Rubric item NAME:PCT (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}

	switch sub {
	case "show":
		fmt.Fprintf(cli.out, "asistencia minima: %g%%\tcalificacion minima: %g\n", c.Rubric.MinAttendance, c.Rubric.MinGrade)
		for _, it := range c.Rubric.Items {
			fmt.Fprintf(cli.out, "%s\t%s\t%g%%\n", it.ID, it.Name, it.Percentage)
		}
		return nil
	case "set":
		r := c.Rubric
		if *minAtt >= 0 {
			r.MinAttendance = *minAtt
		}
		if *minGrade >= 0 {
			r.MinGrade = *minGrade
		}
		if len(items) > 0 {
			// keep ids of items whose name is unchanged so activities stay linked
			next := make([]course.RubricItem, 0, len(items))
			for _, it := range items {
				if old, ok := findRubricItem(c, it.Name); ok {
					it.ID = old.ID
				}
				next = append(next, it)
			}
			r.Items = next
		}
		_, err := cli.update(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.SaveRubric(c, r)
		})
		return err
	}
	cli.printUsage()
	return errHelp
}

func (cli *commandLine) activityCmd(ctx context.Context, sub string, args []string) error {
	fs := cli.flagSet("activity " + sub)
	key := fs.String("course", "", "Course id or name")
	name := fs.String("name", "", "Activity name")
	item := fs.String("item", "", "Rubric item id or name")
	typ := fs.String("type", string(course.GradingCheck), "CHECK, SCALE or POINTS")
	maxPoints := fs.Float64("max", 0, "Maximum points (POINTS only)")
	team := fs.Bool("team", false, "Graded per team")
	activity := fs.String("activity", "", "Activity id or name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}

	switch sub {
	case "add":
		act := course.Activity{
			Name:         *name,
			RubricItemID: *item,
			GradingType:  course.GradingType(strings.ToUpper(*typ)),
			IsTeam:       *team,
		}
		if it, ok := findRubricItem(c, *item); ok {
			act.RubricItemID = it.ID
		}
		if act.GradingType == course.GradingPoints {
			act.MaxPoints = maxPoints
		}
		next, saved, err := edit.UpsertActivity(c, act)
		if err != nil {
			return err
		}
		cli.repo.Save(ctx, next)
		fmt.Fprintln(cli.out, saved.ID)
		return nil
	case "rm":
		a, err := findActivity(c, *activity)
		if err != nil {
			return err
		}
		_, err = cli.update(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.DeleteActivity(c, a.ID)
		})
		return err
	case "list":
		for _, a := range c.Activities {
			itemName := a.RubricItemID
			if it, ok := c.RubricItem(a.RubricItemID); ok {
				itemName = it.Name
			}
			fmt.Fprintf(cli.out, "%s\t%s\t%s\t%s\n", a.ID, a.Name, itemName, a.GradingType)
		}
		return nil
	}
	cli.printUsage()
	return errHelp
}

func (cli *commandLine) gradeCmd(ctx context.Context, sub string, args []string) error {
	fs := cli.flagSet("grade " + sub)
	key := fs.String("course", "", "Course id or name")
	activity := fs.String("activity", "", "Activity id or name")
	student := fs.String("student", "", "Student id or name")
	team := fs.String("team", "", "Team label")
	value := fs.String("value", "", "Grade value")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}
	a, err := findActivity(c, *activity)
	if err != nil {
		return err
	}
	if sub == "clear" {
		_, err = cli.updateRecords(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.ClearGrades(c, a.ID)
		})
		return err
	}
	t, err := target(c, *student, *team)
	if err != nil {
		return err
	}

	switch sub {
	case "set":
		_, err = cli.updateRecords(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.SetGradeInput(c, a.ID, t, *value)
		})
		return err
	case "toggle":
		_, err = cli.updateRecords(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.ToggleCheck(c, a.ID, t)
		})
		return err
	}
	cli.printUsage()
	return errHelp
}

func (cli *commandLine) attendCmd(ctx context.Context, sub string, args []string) error {
	fs := cli.flagSet("attend " + sub)
	key := fs.String("course", "", "Course id or name")
	date := fs.String("date", "", "Session date YYYY-MM-DD")
	student := fs.String("student", "", "Student id or name")
	team := fs.String("team", "", "Team label")
	status := fs.String("status", string(course.Present), "present or absent")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}
	if *date == "" {
		fs.Usage()
		return errHelp
	}

	switch sub {
	case "mark":
		t, err := target(c, *student, *team)
		if err != nil {
			return err
		}
		_, err = cli.updateRecords(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.MarkAttendance(c, *date, t, course.AttendanceStatus(strings.ToLower(*status)))
		})
		return err
	case "team":
		if *team == "" {
			fs.Usage()
			return errHelp
		}
		_, err = cli.updateRecords(ctx, c, func(c course.Course) (course.Course, error) {
			return edit.ToggleTeamAttendance(c, *team, *date)
		})
		return err
	}
	cli.printUsage()
	return errHelp
}
