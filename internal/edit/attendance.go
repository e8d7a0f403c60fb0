package edit

import (
	"errors"
	"time"

	"github.com/picksplaydoit-ai/superappprofe/internal/attendance"
	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

var (
	ErrInvalidDate   = errors.New("invalid attendance date")
	ErrInvalidStatus = errors.New("attendance status must be present or absent")
)

// MarkAttendance records status on date for the target. Marking a single
// student with the status they already have removes the record, so a second
// tap clears a mistaken mark. Team marks are always applied uniformly.
func MarkAttendance(c course.Course, date string, t Target, status course.AttendanceStatus) (course.Course, error) {
	if status != course.Present && status != course.Absent {
		return c, ErrInvalidStatus
	}
	day, err := normalizeDate(date)
	if err != nil {
		return c, err
	}
	ids, err := Resolve(c, t)
	if err != nil {
		return c, err
	}
	if !t.IsTeam() && attendance.StudentStatus(c, ids[0], day) == status {
		c.Attendance = removeRecords(c.Attendance, day, ids)
		return c, nil
	}
	c.Attendance = upsertRecords(c.Attendance, day, ids, status)
	return c, nil
}

// ToggleTeamAttendance marks every member of the team with the opposite of
// the first member's current status; an unset first member becomes present.
func ToggleTeamAttendance(c course.Course, teamID, date string) (course.Course, error) {
	day, err := normalizeDate(date)
	if err != nil {
		return c, err
	}
	ids, err := Resolve(c, Team(teamID))
	if err != nil {
		return c, err
	}
	next := course.Present
	if attendance.StudentStatus(c, ids[0], day) == course.Present {
		next = course.Absent
	}
	c.Attendance = upsertRecords(c.Attendance, day, ids, next)
	return c, nil
}

func normalizeDate(s string) (string, error) {
	t, ok := attendance.ParseDate(s)
	if !ok {
		return "", ErrInvalidDate
	}
	return t.Format(time.DateOnly), nil
}

func sameDay(recordDate, day string) bool {
	t, ok := attendance.ParseDate(recordDate)
	if !ok {
		return recordDate == day
	}
	return t.Format(time.DateOnly) == day
}

func upsertRecords(recs []course.AttendanceRecord, day string, studentIDs []string, status course.AttendanceStatus) []course.AttendanceRecord {
	out := removeRecords(recs, day, studentIDs)
	for _, sid := range studentIDs {
		out = append(out, course.AttendanceRecord{Date: day, StudentID: sid, Status: status})
	}
	return out
}

// removeRecords drops every record of the students on day, duplicates included.
func removeRecords(recs []course.AttendanceRecord, day string, studentIDs []string) []course.AttendanceRecord {
	drop := toSet(studentIDs)
	out := make([]course.AttendanceRecord, 0, len(recs))
	for _, r := range recs {
		if _, ok := drop[r.StudentID]; ok && sameDay(r.Date, day) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func toSet(arr []string) map[string]struct{} {
	m := make(map[string]struct{}, len(arr))
	for _, s := range arr {
		m[s] = struct{}{}
	}
	return m
}
