package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var ErrNoNameColumn = errors.New("roster has no Nombre/Name column")

type rosterRow struct {
	Nombre string `csv:"Nombre"`
	Name   string `csv:"Name"`
}

// ParseRosterText reads one student name per line.
func ParseRosterText(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if n := strings.TrimSpace(sc.Text()); n != "" {
			names = append(names, n)
		}
	}
	return names, errors.Wrap(sc.Err(), "read roster")
}

// ParseRosterCSV reads the Nombre (or Name) column of a CSV with a header row.
func ParseRosterCSV(r io.Reader) ([]string, error) {
	var rows []*rosterRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(err, "parse roster csv")
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		n := strings.TrimSpace(row.Nombre)
		if n == "" {
			n = strings.TrimSpace(row.Name)
		}
		if n != "" {
			names = append(names, n)
		}
	}
	if len(rows) > 0 && len(names) == 0 {
		return nil, ErrNoNameColumn
	}
	return names, nil
}

// ParseRosterXLSX reads the first column of the first sheet. A first cell
// reading Nombre or Name is treated as a header.
func ParseRosterXLSX(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open roster xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "read roster sheet")
	}
	names := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		n := strings.TrimSpace(row[0])
		if i == 0 && isNameHeader(n) {
			continue
		}
		if n != "" {
			names = append(names, n)
		}
	}
	return names, nil
}

func isNameHeader(s string) bool {
	switch strings.ToLower(s) {
	case "nombre", "name", "alumno":
		return true
	}
	return false
}
