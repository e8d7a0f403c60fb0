package edit

import (
	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/grading"
)

// SetGrade stores value for every student the target resolves to, replacing
// existing grades for the activity and appending missing ones. On a team
// activity a student target grades the whole team.
func SetGrade(c course.Course, activityID string, t Target, value float64) (course.Course, error) {
	act, ok := c.Activity(activityID)
	if !ok {
		return c, course.ErrActivityNotFound
	}
	ids, err := Resolve(c, forActivity(c, act, t))
	if err != nil {
		return c, err
	}
	c.Grades = upsertGrades(c.Grades, activityID, ids, value)
	return c, nil
}

// SetGradeInput parses raw with the activity's input rules and stores it.
func SetGradeInput(c course.Course, activityID string, t Target, raw string) (course.Course, error) {
	act, ok := c.Activity(activityID)
	if !ok {
		return c, course.ErrActivityNotFound
	}
	v, err := grading.ParseInput(act, raw)
	if err != nil {
		return c, err
	}
	return SetGrade(c, activityID, t, v)
}

// ToggleCheck flips a CHECK grade. For a team the first member's value decides.
func ToggleCheck(c course.Course, activityID string, t Target) (course.Course, error) {
	act, ok := c.Activity(activityID)
	if !ok {
		return c, course.ErrActivityNotFound
	}
	t = forActivity(c, act, t)
	ids, err := Resolve(c, t)
	if err != nil {
		return c, err
	}
	current := 0.0
	if g, ok := c.GradeFor(ids[0], activityID); ok {
		current = g.Value
	}
	return SetGrade(c, activityID, t, grading.ToggleCheck(current))
}

// forActivity widens a student target to the student's team when the activity
// is graded per team. Unassigned students keep an individual grade.
func forActivity(c course.Course, act course.Activity, t Target) Target {
	if !act.IsTeam || t.IsTeam() {
		return t
	}
	if st, ok := c.Student(t.StudentID); ok && st.TeamID != "" {
		return Team(st.TeamID)
	}
	return t
}

// ClearGrades removes every grade captured for the activity.
func ClearGrades(c course.Course, activityID string) (course.Course, error) {
	if _, ok := c.Activity(activityID); !ok {
		return c, course.ErrActivityNotFound
	}
	out := make([]course.Grade, 0, len(c.Grades))
	for _, g := range c.Grades {
		if g.ActivityID != activityID {
			out = append(out, g)
		}
	}
	c.Grades = out
	return c, nil
}

func upsertGrades(grades []course.Grade, activityID string, studentIDs []string, value float64) []course.Grade {
	out := append(make([]course.Grade, 0, len(grades)+len(studentIDs)), grades...)
	for _, sid := range studentIDs {
		idx := -1
		for i, g := range out {
			if g.ActivityID == activityID && g.StudentID == sid {
				idx = i
				break
			}
		}
		if idx >= 0 {
			out[idx].Value = value
			continue
		}
		out = append(out, course.Grade{StudentID: sid, ActivityID: activityID, Value: value})
	}
	return out
}
