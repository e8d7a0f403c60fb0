package report

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// AllItems disables the rubric item filter of FindMissingActivities.
const AllItems = "all"

// FindMissingActivities lists the activities, optionally restricted to one
// rubric item, that the student has no grade for or a grade of exactly 0.
func FindMissingActivities(c course.Course, studentID, rubricFilter string) []course.Activity {
	out := make([]course.Activity, 0)
	for _, act := range c.Activities {
		if rubricFilter != AllItems && rubricFilter != "" && act.RubricItemID != rubricFilter {
			continue
		}
		g, ok := c.GradeFor(studentID, act.ID)
		if !ok || g.Value == 0 {
			out = append(out, act)
		}
	}
	return out
}
