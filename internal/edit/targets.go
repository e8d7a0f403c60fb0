// Package edit holds the pure update functions applied to a course. Every
// function returns a new course value whose changed collections are freshly
// built slices; inputs are never modified in place.
package edit

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// Target is either one student or a whole team.
type Target struct {
	StudentID string
	TeamID    string
}

func Student(id string) Target { return Target{StudentID: id} }
func Team(id string) Target    { return Target{TeamID: id} }

func (t Target) IsTeam() bool { return t.TeamID != "" }

// Resolve expands a target into the ids of the affected students: a team
// resolves to its members, a student to itself.
func Resolve(c course.Course, t Target) ([]string, error) {
	if t.IsTeam() {
		members := course.StudentsInTeam(c, t.TeamID)
		if len(members) == 0 {
			return nil, course.ErrTeamNotFound
		}
		ids := make([]string, 0, len(members))
		for _, m := range members {
			ids = append(ids, m.ID)
		}
		return ids, nil
	}
	if _, ok := c.Student(t.StudentID); !ok {
		return nil, course.ErrStudentNotFound
	}
	return []string{t.StudentID}, nil
}
