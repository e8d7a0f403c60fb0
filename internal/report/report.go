package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/picksplaydoit-ai/superappprofe/internal/attendance"
	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

// Mode selects which report a caller renders.
type Mode string

const (
	ModeAttendance Mode = "attendance"
	ModeGrades     Mode = "grades"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeGrades:
		return ModeGrades, nil
	case ModeAttendance:
		return ModeAttendance, nil
	}
	return "", fmt.Errorf("unknown report mode %q", s)
}

type Options struct {
	Mode         Mode
	Filter       attendance.DateFilter
	RubricFilter string // AllItems or a rubric item id
}

// Report is the read-only projection rendered by the CLI and the exporters.
type Report struct {
	CourseName string              `json:"courseName"`
	GroupName  string              `json:"groupName"`
	Mode       Mode                `json:"mode"`
	Filter     string              `json:"filter"`
	Items      []course.RubricItem `json:"items"`
	Rows       []StudentStats      `json:"rows"`
	Group      *GroupStats         `json:"group"`
}

// Build computes one row per student, ordered by name.
func Build(c course.Course, opts Options) Report {
	if opts.RubricFilter == "" {
		opts.RubricFilter = AllItems
	}
	students := SortStudents(c.Students)
	rows := make([]StudentStats, 0, len(students))
	for _, s := range students {
		rows = append(rows, ComputeStudentStats(c, s.ID, opts.Filter, opts.RubricFilter))
	}
	return Report{
		CourseName: c.Name,
		GroupName:  c.GroupName,
		Mode:       opts.Mode,
		Filter:     opts.Filter.String(),
		Items:      append([]course.RubricItem(nil), c.Rubric.Items...),
		Rows:       rows,
		Group:      ComputeGroupStats(c),
	}
}

// SortStudents returns a copy of students ordered by name using Spanish
// collation (accents and case do not split "Álvarez" from "alvarez").
func SortStudents(students []course.Student) []course.Student {
	out := append([]course.Student(nil), students...)
	col := collate.New(language.Spanish, collate.IgnoreCase, collate.Loose)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
