package course

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// Default thresholds for a freshly created course.
const (
	DefaultMinAttendance = 80
	DefaultMinGrade      = 60
)

func DefaultRubric() RubricSettings {
	return RubricSettings{
		MinAttendance: DefaultMinAttendance,
		MinGrade:      DefaultMinGrade,
		Items:         []RubricItem{},
	}
}

// New creates an empty course with the default rubric.
func New(name, groupName string) Course {
	return Course{
		ID:         NewID(),
		Name:       name,
		GroupName:  groupName,
		Students:   []Student{},
		Attendance: []AttendanceRecord{},
		Rubric:     DefaultRubric(),
		Activities: []Activity{},
		Grades:     []Grade{},
	}
}

func NewID() string { return uuid.NewString() }

func (c Course) Student(id string) (Student, bool) {
	for _, s := range c.Students {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}

func (c Course) Activity(id string) (Activity, bool) {
	for _, a := range c.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

func (c Course) RubricItem(id string) (RubricItem, bool) {
	for _, it := range c.Rubric.Items {
		if it.ID == id {
			return it, true
		}
	}
	return RubricItem{}, false
}

// GradeFor returns the recorded grade of a student for an activity.
func (c Course) GradeFor(studentID, activityID string) (Grade, bool) {
	for _, g := range c.Grades {
		if g.StudentID == studentID && g.ActivityID == activityID {
			return g, true
		}
	}
	return Grade{}, false
}

func (c Course) ActivitiesForItem(itemID string) []Activity {
	out := make([]Activity, 0)
	for _, a := range c.Activities {
		if a.RubricItemID == itemID {
			out = append(out, a)
		}
	}
	return out
}

// TeamOf returns the team label of s, NoTeam when unassigned.
func TeamOf(s Student) string {
	if s.TeamID == "" {
		return NoTeam
	}
	return s.TeamID
}

// StudentsInTeam returns the members of teamID in roster order.
// NoTeam matches every unassigned student.
func StudentsInTeam(c Course, teamID string) []Student {
	out := make([]Student, 0)
	for _, s := range c.Students {
		if TeamOf(s) == teamID {
			out = append(out, s)
		}
	}
	return out
}

// Teams lists the distinct team labels, numeric labels in numeric order and NoTeam last.
func Teams(c Course) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, s := range c.Students {
		t := TeamOf(s)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return teamLess(out[i], out[j]) })
	return out
}

func teamLess(a, b string) bool {
	if a == NoTeam {
		return false
	}
	if b == NoTeam {
		return true
	}
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return ai < bi
	case aerr == nil:
		return true
	case berr == nil:
		return false
	}
	return a < b
}
