package report

import (
	"github.com/picksplaydoit-ai/superappprofe/internal/attendance"
	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/grading"
)

type GroupStats struct {
	Total            int     `json:"total"`
	ApprovedCount    int     `json:"approvedCount"`
	ApprovedPct      float64 `json:"approvedPct"`
	FailedCount      int     `json:"failedCount"`
	FailedPct        float64 `json:"failedPct"`
	NoRightsCount    int     `json:"noRightsCount"`
	NoRightsPct      float64 `json:"noRightsPct"`
	AvgAttendancePct float64 `json:"avgAttendancePct"`
}

// ComputeGroupStats classifies every student. It returns nil for a course
// without students.
func ComputeGroupStats(c course.Course) *GroupStats {
	total := len(c.Students)
	if total == 0 {
		return nil
	}
	gs := &GroupStats{Total: total}
	attSum := 0.0
	for _, s := range c.Students {
		att := attendance.GlobalPercentage(c, s.ID)
		final := grading.ComputeWeightedRubricScores(c, s.ID).FinalGrade
		attSum += att
		switch Classify(att, final, c.Rubric) {
		case course.StatusApproved:
			gs.ApprovedCount++
		case course.StatusFailed:
			gs.FailedCount++
		case course.StatusNoRights:
			gs.NoRightsCount++
		}
	}
	n := float64(total)
	gs.ApprovedPct = float64(gs.ApprovedCount) / n * 100
	gs.FailedPct = float64(gs.FailedCount) / n * 100
	gs.NoRightsPct = float64(gs.NoRightsCount) / n * 100
	gs.AvgAttendancePct = attSum / n
	return gs
}
