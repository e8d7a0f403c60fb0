package edit

import (
	"reflect"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

// Draft holds attendance and grade edits that have not been committed to the
// course yet. Apply runs an update function against the course overlaid
// with the draft and captures the result as a new draft; the committed course
// is only touched by Commit.
type Draft struct {
	CourseID   string
	Attendance []course.AttendanceRecord
	Grades     []course.Grade
}

func NewDraft(c course.Course) Draft {
	return Draft{
		CourseID:   c.ID,
		Attendance: append([]course.AttendanceRecord{}, c.Attendance...),
		Grades:     append([]course.Grade{}, c.Grades...),
	}
}

// View is base with the pending collections in place.
func (d Draft) View(base course.Course) course.Course {
	base.Attendance = d.Attendance
	base.Grades = d.Grades
	return base
}

func (d Draft) Apply(base course.Course, fn func(course.Course) (course.Course, error)) (Draft, error) {
	next, err := fn(d.View(base))
	if err != nil {
		return d, err
	}
	return Draft{CourseID: d.CourseID, Attendance: next.Attendance, Grades: next.Grades}, nil
}

// Dirty reports whether the draft differs from the committed course.
func (d Draft) Dirty(base course.Course) bool {
	return !sameSlice(d.Attendance, base.Attendance) || !sameSlice(d.Grades, base.Grades)
}

func sameSlice[T any](a, b []T) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func (d Draft) Commit(base course.Course) course.Course {
	base.Attendance = append([]course.AttendanceRecord{}, d.Attendance...)
	base.Grades = append([]course.Grade{}, d.Grades...)
	return base
}
