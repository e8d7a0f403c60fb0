package export

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/picksplaydoit-ai/superappprofe/internal/report"
)

type attendanceRow struct {
	Student   string `csv:"Alumno"`
	Present   int    `csv:"Asistencias"`
	Absent    int    `csv:"Faltas"`
	Unset     int    `csv:"Sin Registro"`
	PeriodPct string `csv:"% Periodo"`
	GlobalPct string `csv:"% Asistencia Total"`
}

// WriteCSV writes the report selected by rep.Mode.
func WriteCSV(w io.Writer, rep report.Report) error {
	if rep.Mode == report.ModeAttendance {
		return AttendanceCSV(w, rep)
	}
	return GradesCSV(w, rep)
}

func AttendanceCSV(w io.Writer, rep report.Report) error {
	rows := make([]*attendanceRow, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		rows = append(rows, &attendanceRow{
			Student:   r.Student.Name,
			Present:   r.Attendance.PresentCount,
			Absent:    r.Attendance.AbsentCount,
			Unset:     r.Attendance.UnsetCount,
			PeriodPct: pct(r.Attendance.PeriodPercentage),
			GlobalPct: pct(r.Attendance.GlobalPercentage),
		})
	}
	return errors.Wrap(gocsv.Marshal(&rows, w), "write attendance csv")
}

// GradesCSV has one column per rubric item, so rows are written through the
// gocsv writer instead of a tagged struct.
func GradesCSV(w io.Writer, rep report.Report) error {
	cw := gocsv.DefaultCSVWriter(w)
	for _, rec := range gradeRecords(rep) {
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "write grades csv")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush grades csv")
}

func gradeHeader(rep report.Report) []string {
	h := []string{"Alumno"}
	for _, it := range rep.Items {
		h = append(h, fmt.Sprintf("%s (%s%%)", it.Name, strconv.FormatFloat(it.Percentage, 'f', -1, 64)))
	}
	return append(h, "Nota Final", "Asistencia %", "Estatus", "Pendientes")
}

func gradeRecords(rep report.Report) [][]string {
	out := [][]string{gradeHeader(rep)}
	for _, r := range rep.Rows {
		rec := []string{r.Student.Name}
		for _, it := range rep.Items {
			rec = append(rec, num(r.Rubric.PerItem[it.ID]))
		}
		rec = append(rec,
			num(r.FinalGrade),
			pct(r.Attendance.GlobalPercentage),
			string(r.Status),
			strconv.Itoa(len(r.Missing)),
		)
		out = append(out, rec)
	}
	return out
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
func pct(v float64) string { return num(v) + "%" }

var unsafeName = regexp.MustCompile(`[^\pL\pN_-]+`)

// Filename suggests "Reporte_<mode>_<group>.<ext>".
func Filename(rep report.Report, ext string) string {
	group := unsafeName.ReplaceAllString(rep.GroupName, "_")
	if group == "" {
		group = "grupo"
	}
	return fmt.Sprintf("Reporte_%s_%s.%s", rep.Mode, group, ext)
}
