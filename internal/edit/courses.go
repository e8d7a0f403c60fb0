package edit

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// UpsertCourse replaces the course with the same id or appends it.
func UpsertCourse(list []course.Course, c course.Course) []course.Course {
	out := make([]course.Course, 0, len(list)+1)
	replaced := false
	for _, x := range list {
		if x.ID == c.ID {
			out = append(out, c)
			replaced = true
			continue
		}
		out = append(out, x)
	}
	if !replaced {
		out = append(out, c)
	}
	return out
}

func DeleteCourse(list []course.Course, id string) []course.Course {
	out := make([]course.Course, 0, len(list))
	for _, x := range list {
		if x.ID != id {
			out = append(out, x)
		}
	}
	return out
}

// RenameCourse updates the display fields of a course.
func RenameCourse(c course.Course, name, groupName string) course.Course {
	if name != "" {
		c.Name = name
	}
	if groupName != "" {
		c.GroupName = groupName
	}
	return c
}
