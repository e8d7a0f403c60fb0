package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picksplaydoit-ai/superappprofe/internal/attendance"
	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

var sessions = []string{
	"2024-01-15", "2024-02-12", "2024-03-04", // q1
	"2024-04-08", "2024-04-22", "2024-05-06", "2024-05-20", "2024-06-03",
	"2024-09-02", "2024-10-07",
}

// tenSessions has S present on 8 of 10 days: absent 2024-02-12 and 2024-05-06.
// T is marked only on the first day so every date counts as a session.
func tenSessions() course.Course {
	c := course.New("Historia", "1C")
	c.Students = []course.Student{{ID: "s", Name: "Sara"}, {ID: "t", Name: "Tito"}}
	for _, d := range sessions {
		st := course.Present
		if d == "2024-02-12" || d == "2024-05-06" {
			st = course.Absent
		}
		c.Attendance = append(c.Attendance, course.AttendanceRecord{Date: d, StudentID: "s", Status: st})
	}
	c.Attendance = append(c.Attendance, course.AttendanceRecord{Date: sessions[0], StudentID: "t", Status: course.Present})
	return c
}

func TestComputeStats(t *testing.T) {
	c := tenSessions()

	all := attendance.ComputeStats(c, "s", attendance.All)
	assert.Equal(t, 10, all.Sessions)
	assert.Equal(t, 8, all.PresentCount)
	assert.Equal(t, 2, all.AbsentCount)
	assert.Equal(t, 0, all.UnsetCount)
	assert.InDelta(t, 80, all.GlobalPercentage, 1e-9)
	assert.InDelta(t, 80, all.PeriodPercentage, 1e-9)

	q1 := attendance.ComputeStats(c, "s", attendance.Quarter(1))
	assert.Equal(t, 3, q1.Sessions)
	assert.Equal(t, 2, q1.PresentCount)
	assert.InDelta(t, 66.7, q1.PeriodPercentage, 0.05)
	assert.InDelta(t, 80, q1.GlobalPercentage, 1e-9, "global ignores the filter")

	may := attendance.ComputeStats(c, "s", attendance.Month(4))
	assert.Equal(t, 2, may.Sessions)
	assert.InDelta(t, 50, may.PeriodPercentage, 1e-9)
}

func TestComputeStatsUnsetDays(t *testing.T) {
	c := tenSessions()

	st := attendance.ComputeStats(c, "t", attendance.All)

	assert.Equal(t, 1, st.PresentCount)
	assert.Equal(t, 0, st.AbsentCount)
	assert.Equal(t, 9, st.UnsetCount)
	assert.InDelta(t, 10, st.GlobalPercentage, 1e-9)
}

func TestComputeStatsNoRecords(t *testing.T) {
	c := course.New("Vacío", "")
	c.Students = []course.Student{{ID: "s", Name: "Sara"}}

	st := attendance.ComputeStats(c, "s", attendance.Quarter(2))

	assert.Zero(t, st.PeriodPercentage)
	assert.Zero(t, st.GlobalPercentage)
	assert.Zero(t, st.Sessions)
}

func TestSessionDatesNormalisesTimestamps(t *testing.T) {
	c := course.Course{Attendance: []course.AttendanceRecord{
		{Date: "2024-03-01", StudentID: "a", Status: course.Present},
		{Date: "2024-03-01T10:00:00Z", StudentID: "b", Status: course.Present},
		{Date: "2024-02-01", StudentID: "a", Status: course.Absent},
	}}

	assert.Equal(t, []string{"2024-02-01", "2024-03-01"}, attendance.SessionDates(c))
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    attendance.DateFilter
		wantErr bool
	}{
		{"", attendance.All, false},
		{"all", attendance.All, false},
		{"Q3", attendance.Quarter(3), false},
		{"0", attendance.Month(0), false},
		{"11", attendance.Month(11), false},
		{"septiembre", attendance.Month(8), false},
		{"mar", attendance.Month(2), false},
		{"12", attendance.All, true},
		{"q5", attendance.All, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := attendance.ParseFilter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterMatch(t *testing.T) {
	assert.True(t, attendance.Quarter(4).Match("2024-12-31"))
	assert.False(t, attendance.Quarter(4).Match("2024-09-30"))
	assert.False(t, attendance.Month(0).Match("2024-01-31T23:00:00-05:00"), "in UTC this is February")
	assert.True(t, attendance.Month(1).Match("2024-01-31T23:00:00-05:00"))
	assert.True(t, attendance.All.Match("not a date"))
	assert.False(t, attendance.Month(0).Match("not a date"))
}

func TestTeamStatus(t *testing.T) {
	c := course.Course{
		Students: []course.Student{
			{ID: "a", TeamID: "1"}, {ID: "b", TeamID: "1"},
			{ID: "c", TeamID: "2"}, {ID: "d", TeamID: "2"},
		},
		Attendance: []course.AttendanceRecord{
			{Date: "2024-03-01", StudentID: "a", Status: course.Present},
			{Date: "2024-03-01", StudentID: "b", Status: course.Present},
			{Date: "2024-03-01", StudentID: "c", Status: course.Present},
			{Date: "2024-03-01", StudentID: "d", Status: course.Absent},
		},
	}

	assert.Equal(t, course.Present, attendance.TeamStatus(c, "1", "2024-03-01"))
	assert.Equal(t, course.Mixed, attendance.TeamStatus(c, "2", "2024-03-01"))
	assert.Equal(t, course.Unset, attendance.TeamStatus(c, "1", "2024-03-02"))
	assert.Equal(t, course.Unset, attendance.TeamStatus(c, "9", "2024-03-01"))
}

func TestHistory(t *testing.T) {
	c := tenSessions()

	h := attendance.History(c, "s", attendance.Quarter(1))

	require.Len(t, h, 3)
	assert.Equal(t, "2024-01-15", h[0].Date)
	assert.Equal(t, course.Absent, h[1].Status)
}
