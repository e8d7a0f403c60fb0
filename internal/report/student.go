package report

import (
	"github.com/picksplaydoit-ai/superappprofe/internal/attendance"
	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/grading"
)

// StudentStats is everything a report row needs for one student.
type StudentStats struct {
	Student    course.Student       `json:"student"`
	Attendance attendance.Stats     `json:"attendance"`
	Rubric     grading.RubricScores `json:"rubric"`
	FinalGrade float64              `json:"finalGrade"`
	Status     course.Status        `json:"status"`
	Missing    []course.Activity    `json:"missing"`
}

// ComputeStudentStats combines attendance, rubric and status for studentID.
// The status always uses the global attendance percentage.
func ComputeStudentStats(c course.Course, studentID string, f attendance.DateFilter, rubricFilter string) StudentStats {
	st, _ := c.Student(studentID)
	att := attendance.ComputeStats(c, studentID, f)
	scores := grading.ComputeWeightedRubricScores(c, studentID)
	return StudentStats{
		Student:    st,
		Attendance: att,
		Rubric:     scores,
		FinalGrade: scores.FinalGrade,
		Status:     Classify(att.GlobalPercentage, scores.FinalGrade, c.Rubric),
		Missing:    FindMissingActivities(c, studentID, rubricFilter),
	}
}
