package export

import (
	"bytes"
	"math"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/picksplaydoit-ai/superappprofe/internal/report"
)

const (
	sheetSummary    = "Resumen"
	sheetAttendance = "Asistencia"
	sheetGrades     = "Notas"
)

// XLSX renders the summary, attendance and grades sheets into one workbook.
// It returns the file contents and a suggested filename.
func XLSX(rep report.Report) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, "", errors.Wrap(err, "rename sheet")
	}
	for _, name := range []string{sheetAttendance, sheetGrades} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, "", errors.Wrapf(err, "new sheet %s", name)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", errors.Wrap(err, "header style")
	}

	if err := writeRows(f, sheetSummary, bold, summaryRows(rep)); err != nil {
		return nil, "", err
	}
	if err := writeRows(f, sheetAttendance, bold, attendanceRows(rep)); err != nil {
		return nil, "", err
	}
	if err := writeRows(f, sheetGrades, bold, gradeRows(rep)); err != nil {
		return nil, "", err
	}

	active := sheetGrades
	if rep.Mode == report.ModeAttendance {
		active = sheetAttendance
	}
	if idx, err := f.GetSheetIndex(active); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", errors.Wrap(err, "write xlsx")
	}
	return buf, Filename(rep, "xlsx"), nil
}

func writeRows(f *excelize.File, sheet string, headerStyle int, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "cell name")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write %s row %d", sheet, i+1)
		}
	}
	if len(rows) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return errors.Wrap(err, "header style")
		}
	}
	return f.SetColWidth(sheet, "A", "A", 32)
}

func summaryRows(rep report.Report) [][]interface{} {
	rows := [][]interface{}{
		{"Curso", rep.CourseName},
		{"Grupo", rep.GroupName},
		{"Periodo", rep.Filter},
	}
	g := rep.Group
	if g == nil {
		return append(rows, []interface{}{"Alumnos", 0})
	}
	return append(rows,
		[]interface{}{"Alumnos", g.Total},
		[]interface{}{"Aprobados", g.ApprovedCount, round1(g.ApprovedPct)},
		[]interface{}{"Reprobados", g.FailedCount, round1(g.FailedPct)},
		[]interface{}{"Sin Derecho", g.NoRightsCount, round1(g.NoRightsPct)},
		[]interface{}{"Asistencia Grupal %", round1(g.AvgAttendancePct)},
	)
}

func attendanceRows(rep report.Report) [][]interface{} {
	rows := [][]interface{}{{"Alumno", "Asistencias", "Faltas", "Sin Registro", "% Periodo", "% Asistencia Total"}}
	for _, r := range rep.Rows {
		a := r.Attendance
		rows = append(rows, []interface{}{
			r.Student.Name, a.PresentCount, a.AbsentCount, a.UnsetCount,
			round1(a.PeriodPercentage), round1(a.GlobalPercentage),
		})
	}
	return rows
}

func gradeRows(rep report.Report) [][]interface{} {
	header := gradeHeader(rep)
	rows := [][]interface{}{toIface(header)}
	for _, r := range rep.Rows {
		row := []interface{}{r.Student.Name}
		for _, it := range rep.Items {
			row = append(row, round1(r.Rubric.PerItem[it.ID]))
		}
		row = append(row, round1(r.FinalGrade), round1(r.Attendance.GlobalPercentage), string(r.Status), len(r.Missing))
		rows = append(rows, row)
	}
	return rows
}

func toIface(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
