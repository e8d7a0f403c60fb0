package attendance

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// StudentStatus is the student's mark on date, Unset when there is none.
func StudentStatus(c course.Course, studentID, date string) course.AttendanceStatus {
	key := dateKey(date)
	st := course.Unset
	for _, r := range c.Attendance {
		if r.StudentID == studentID && dateKey(r.Date) == key {
			st = r.Status
		}
	}
	return st
}

// TeamStatus aggregates the members' marks on date: Present or Absent when
// everybody agrees, Unset when nobody has a mark, Mixed otherwise.
// A team without members is Unset.
func TeamStatus(c course.Course, teamID, date string) course.AttendanceStatus {
	members := course.StudentsInTeam(c, teamID)
	if len(members) == 0 {
		return course.Unset
	}
	first := StudentStatus(c, members[0].ID, date)
	for _, m := range members[1:] {
		if StudentStatus(c, m.ID, date) != first {
			return course.Mixed
		}
	}
	return first
}
