package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/picksplaydoit-ai/superappprofe/internal/attendance"
	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/export"
	"github.com/picksplaydoit-ai/superappprofe/internal/report"
)

func (cli *commandLine) reportCmd(ctx context.Context, args []string) error {
	fs := cli.flagSet("report")
	key := fs.String("course", "", "Course id or name")
	mode := fs.String("mode", string(report.ModeGrades), "grades or attendance")
	filter := fs.String("filter", "all", "all, q1..q4 or a month")
	item := fs.String("item", report.AllItems, "Rubric item for pending work")
	format := fs.String("format", "table", "table, csv, xlsx or json")
	out := fs.String("out", "", "Output key under the export dir (\"-\" for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}
	opts, err := reportOptions(c, *mode, *filter, *item)
	if err != nil {
		return err
	}
	rep := report.Build(c, opts)

	switch *format {
	case "table":
		return renderTable(cli.out, rep)
	case "json":
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "csv":
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, rep); err != nil {
			return err
		}
		return cli.emit(&buf, *out, export.Filename(rep, "csv"))
	case "xlsx":
		buf, name, err := export.XLSX(rep)
		if err != nil {
			return err
		}
		return cli.emit(buf, *out, name)
	}
	return fmt.Errorf("unknown format %q", *format)
}

func reportOptions(c course.Course, mode, filter, item string) (report.Options, error) {
	m, err := report.ParseMode(mode)
	if err != nil {
		return report.Options{}, err
	}
	f, err := attendance.ParseFilter(filter)
	if err != nil {
		return report.Options{}, err
	}
	rf := report.AllItems
	if item != "" && item != report.AllItems {
		it, ok := findRubricItem(c, item)
		if !ok {
			return report.Options{}, fmt.Errorf("rubric item %q not found", item)
		}
		rf = it.ID
	}
	return report.Options{Mode: m, Filter: f, RubricFilter: rf}, nil
}

// emit writes r to stdout when out is "-", otherwise into the blob store.
func (cli *commandLine) emit(r io.Reader, out, defaultName string) error {
	if out == "-" {
		_, err := io.Copy(cli.out, r)
		return err
	}
	if out == "" {
		out = defaultName
	}
	key, err := cli.blobs.Put(out, r)
	if err != nil {
		return err
	}
	url, err := cli.blobs.SignedURL(key)
	if err != nil {
		return err
	}
	cli.logger.Info("report exported", zap.String("key", key))
	fmt.Fprintln(cli.out, url)
	return nil
}

func renderTable(w io.Writer, rep report.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s %s (%s)\n", rep.CourseName, rep.GroupName, rep.Filter)
	if rep.Mode == report.ModeAttendance {
		fmt.Fprintln(tw, "Alumno\tAsistencias\tFaltas\tSin Registro\t% Periodo\t% Total")
		for _, r := range rep.Rows {
			a := r.Attendance
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f%%\t%.1f%%\n",
				r.Student.Name, a.PresentCount, a.AbsentCount, a.UnsetCount, a.PeriodPercentage, a.GlobalPercentage)
		}
	} else {
		head := []string{"Alumno"}
		for _, it := range rep.Items {
			head = append(head, fmt.Sprintf("%s (%g%%)", it.Name, it.Percentage))
		}
		head = append(head, "Nota Final", "Asistencia", "Estatus", "Pendientes")
		fmt.Fprintln(tw, strings.Join(head, "\t"))
		for _, r := range rep.Rows {
			cols := []string{r.Student.Name}
			for _, it := range rep.Items {
				cols = append(cols, fmt.Sprintf("%.1f", r.Rubric.PerItem[it.ID]))
			}
			cols = append(cols,
				fmt.Sprintf("%.1f", r.FinalGrade),
				fmt.Sprintf("%.1f%%", r.Attendance.GlobalPercentage),
				string(r.Status),
				fmt.Sprint(len(r.Missing)))
			fmt.Fprintln(tw, strings.Join(cols, "\t"))
		}
	}
	if g := rep.Group; g != nil {
		fmt.Fprintf(tw, "\nAprobados %d (%.1f%%)\tReprobados %d (%.1f%%)\tSin Derecho %d (%.1f%%)\tAsistencia grupal %.1f%%\n",
			g.ApprovedCount, g.ApprovedPct, g.FailedCount, g.FailedPct, g.NoRightsCount, g.NoRightsPct, g.AvgAttendancePct)
	}
	return tw.Flush()
}

func (cli *commandLine) missingCmd(ctx context.Context, args []string) error {
	fs := cli.flagSet("missing")
	key := fs.String("course", "", "Course id or name")
	student := fs.String("student", "", "Student id or name")
	item := fs.String("item", report.AllItems, "Rubric item id or name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}
	st, err := findStudent(c, *student)
	if err != nil {
		return err
	}
	opts, err := reportOptions(c, "", "all", *item)
	if err != nil {
		return err
	}
	missing := report.FindMissingActivities(c, st.ID, opts.RubricFilter)
	if len(missing) == 0 {
		fmt.Fprintln(cli.out, "sin pendientes")
		return nil
	}
	for _, a := range missing {
		fmt.Fprintf(cli.out, "%s\t%s\n", a.Name, a.GradingType)
	}
	return nil
}

func (cli *commandLine) statsCmd(ctx context.Context, args []string) error {
	fs := cli.flagSet("stats")
	key := fs.String("course", "", "Course id or name")
	student := fs.String("student", "", "Student id or name")
	filter := fs.String("filter", "all", "all, q1..q4 or a month")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}
	st, err := findStudent(c, *student)
	if err != nil {
		return err
	}
	f, err := attendance.ParseFilter(*filter)
	if err != nil {
		return err
	}
	s := report.ComputeStudentStats(c, st.ID, f, report.AllItems)

	tw := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Alumno\t%s\n", s.Student.Name)
	fmt.Fprintf(tw, "Equipo\t%s\n", course.TeamOf(s.Student))
	fmt.Fprintf(tw, "Asistencia (%s)\t%.1f%% (%d/%d)\n", f, s.Attendance.PeriodPercentage, s.Attendance.PresentCount, s.Attendance.Sessions)
	fmt.Fprintf(tw, "Asistencia total\t%.1f%%\n", s.Attendance.GlobalPercentage)
	for _, it := range c.Rubric.Items {
		fmt.Fprintf(tw, "%s (%g%%)\t%.1f\n", it.Name, it.Percentage, s.Rubric.PerItem[it.ID])
	}
	fmt.Fprintf(tw, "Nota final\t%.1f\n", s.FinalGrade)
	fmt.Fprintf(tw, "Estatus\t%s\n", s.Status)
	fmt.Fprintf(tw, "Pendientes\t%d\n", len(s.Missing))
	for _, r := range attendance.History(c, st.ID, f) {
		fmt.Fprintf(tw, "  %s\t%s\n", r.Date, r.Status)
	}
	return tw.Flush()
}
