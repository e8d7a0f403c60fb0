package edit

import (
	"strings"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

// ImportResult reports what an import batch did. Added == 0 means no new
// students were found.
type ImportResult struct {
	Added   []course.Student
	Skipped []string // blank lines are not reported
}

func (r ImportResult) Empty() bool { return len(r.Added) == 0 }

// ImportStudents appends one student per name. Names already on the roster,
// or repeated inside the batch, are skipped.
func ImportStudents(c course.Course, names []string) (course.Course, ImportResult) {
	seen := make(map[string]struct{}, len(c.Students)+len(names))
	for _, s := range c.Students {
		seen[nameKey(s.Name)] = struct{}{}
	}
	var res ImportResult
	students := append(make([]course.Student, 0, len(c.Students)+len(names)), c.Students...)
	for _, raw := range names {
		name := strings.Join(strings.Fields(raw), " ")
		if name == "" {
			continue
		}
		k := nameKey(name)
		if _, dup := seen[k]; dup || k == "" {
			res.Skipped = append(res.Skipped, name)
			continue
		}
		seen[k] = struct{}{}
		st := course.Student{ID: course.NewID(), Name: name}
		students = append(students, st)
		res.Added = append(res.Added, st)
	}
	if !res.Empty() {
		c.Students = students
	}
	return c, res
}

// DeleteStudent removes a student together with their grades and attendance.
func DeleteStudent(c course.Course, studentID string) (course.Course, error) {
	if _, ok := c.Student(studentID); !ok {
		return c, course.ErrStudentNotFound
	}
	students := make([]course.Student, 0, len(c.Students))
	for _, s := range c.Students {
		if s.ID != studentID {
			students = append(students, s)
		}
	}
	grades := make([]course.Grade, 0, len(c.Grades))
	for _, g := range c.Grades {
		if g.StudentID != studentID {
			grades = append(grades, g)
		}
	}
	recs := make([]course.AttendanceRecord, 0, len(c.Attendance))
	for _, r := range c.Attendance {
		if r.StudentID != studentID {
			recs = append(recs, r)
		}
	}
	c.Students, c.Grades, c.Attendance = students, grades, recs
	return c, nil
}

// ClearStudents empties the roster and every student-owned record, keeping
// the rubric and activities so the course can be reused.
func ClearStudents(c course.Course) course.Course {
	c.Students = []course.Student{}
	c.Attendance = []course.AttendanceRecord{}
	c.Grades = []course.Grade{}
	return c
}
