package edit

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// SaveRubric replaces the course rubric once it passes validation. Items
// without an id get one. Activities linked to a removed item are kept; they
// simply stop counting toward the final grade.
func SaveRubric(c course.Course, r course.RubricSettings) (course.Course, error) {
	items := make([]course.RubricItem, 0, len(r.Items))
	for _, it := range r.Items {
		if it.ID == "" {
			it.ID = course.NewID()
		}
		items = append(items, it)
	}
	r.Items = items
	if err := course.ValidateRubric(r); err != nil {
		return c, err
	}
	c.Rubric = r
	return c, nil
}
