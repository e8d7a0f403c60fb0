package edit

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// UpsertActivity validates act and replaces the activity with the same id,
// or appends it with a fresh id when act.ID is empty or unknown.
func UpsertActivity(c course.Course, act course.Activity) (course.Course, course.Activity, error) {
	if err := course.ValidateActivity(act, c.Rubric); err != nil {
		return c, act, err
	}
	out := make([]course.Activity, 0, len(c.Activities)+1)
	replaced := false
	for _, a := range c.Activities {
		if act.ID != "" && a.ID == act.ID {
			out = append(out, act)
			replaced = true
			continue
		}
		out = append(out, a)
	}
	if !replaced {
		if act.ID == "" {
			act.ID = course.NewID()
		}
		out = append(out, act)
	}
	c.Activities = out
	return c, act, nil
}

// DeleteActivity removes an activity and every grade captured for it.
func DeleteActivity(c course.Course, activityID string) (course.Course, error) {
	if _, ok := c.Activity(activityID); !ok {
		return c, course.ErrActivityNotFound
	}
	acts := make([]course.Activity, 0, len(c.Activities))
	for _, a := range c.Activities {
		if a.ID != activityID {
			acts = append(acts, a)
		}
	}
	grades := make([]course.Grade, 0, len(c.Grades))
	for _, g := range c.Grades {
		if g.ActivityID != activityID {
			grades = append(grades, g)
		}
	}
	c.Activities, c.Grades = acts, grades
	return c, nil
}
