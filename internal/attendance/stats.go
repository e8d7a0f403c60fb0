package attendance

import (
	"sort"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

// Stats summarises one student's attendance.
//
// AbsentCount only counts explicit "absent" records; session days the student
// has no record for are reported in UnsetCount instead.
type Stats struct {
	PresentCount     int     `json:"presentCount"`
	AbsentCount      int     `json:"absentCount"`
	UnsetCount       int     `json:"unsetCount"`
	Sessions         int     `json:"sessions"`         // session dates inside the filter
	PeriodPercentage float64 `json:"periodPercentage"` // over Sessions
	GlobalPercentage float64 `json:"globalPercentage"` // over every session date, ignores the filter
}

// SessionDates returns the distinct dates with at least one record in the
// course, sorted ascending.
func SessionDates(c course.Course) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, r := range c.Attendance {
		k := dateKey(r.Date)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FilterDates keeps the dates matched by f.
func FilterDates(dates []string, f DateFilter) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// ComputeStats counts a student's records over the session dates selected by
// f. The global percentage always uses every session date so a filtered view
// never changes a student's standing.
func ComputeStats(c course.Course, studentID string, f DateFilter) Stats {
	all := SessionDates(c)
	period := FilterDates(all, f)
	marks := studentMarks(c, studentID)

	st := Stats{Sessions: len(period)}
	for _, d := range period {
		switch marks[d] {
		case course.Present:
			st.PresentCount++
		case course.Absent:
			st.AbsentCount++
		}
	}
	st.UnsetCount = st.Sessions - st.PresentCount - st.AbsentCount
	st.PeriodPercentage = percent(st.PresentCount, len(period))

	globalPresent := 0
	for _, d := range all {
		if marks[d] == course.Present {
			globalPresent++
		}
	}
	st.GlobalPercentage = percent(globalPresent, len(all))
	return st
}

// GlobalPercentage is the attendance figure used for classification.
func GlobalPercentage(c course.Course, studentID string) float64 {
	return ComputeStats(c, studentID, All).GlobalPercentage
}

// History lists the student's records inside f ordered by date.
func History(c course.Course, studentID string, f DateFilter) []course.AttendanceRecord {
	out := make([]course.AttendanceRecord, 0)
	for _, r := range c.Attendance {
		if r.StudentID == studentID && f.Match(r.Date) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return dateKey(out[i].Date) < dateKey(out[j].Date) })
	return out
}

// studentMarks maps session key -> status for one student. A later record for
// the same day wins.
func studentMarks(c course.Course, studentID string) map[string]course.AttendanceStatus {
	m := map[string]course.AttendanceStatus{}
	for _, r := range c.Attendance {
		if r.StudentID == studentID {
			m[dateKey(r.Date)] = r.Status
		}
	}
	return m
}

func percent(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d) * 100
}
