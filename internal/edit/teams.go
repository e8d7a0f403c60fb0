package edit

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

// AutoAssignTeams shuffles the roster and cuts it into teams of size,
// labelled "1", "2", ... A size below 1 is treated as 1. A nil rnd is seeded
// from the clock.
func AutoAssignTeams(c course.Course, size int, rnd *rand.Rand) course.Course {
	if size < 1 {
		size = 1
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	out := append([]course.Student(nil), c.Students...)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	for i := range out {
		out[i].TeamID = strconv.Itoa(i/size + 1)
	}
	c.Students = out
	return c
}

// ClearTeams unassigns every student.
func ClearTeams(c course.Course) course.Course {
	out := append([]course.Student(nil), c.Students...)
	for i := range out {
		out[i].TeamID = ""
	}
	c.Students = out
	return c
}

// AssignTeam moves one student to teamID; "" or course.NoTeam unassigns.
func AssignTeam(c course.Course, studentID, teamID string) (course.Course, error) {
	if _, ok := c.Student(studentID); !ok {
		return c, course.ErrStudentNotFound
	}
	if teamID == course.NoTeam {
		teamID = ""
	}
	out := append([]course.Student(nil), c.Students...)
	for i := range out {
		if out[i].ID == studentID {
			out[i].TeamID = teamID
		}
	}
	c.Students = out
	return c, nil
}
