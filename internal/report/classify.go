package report

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// Classify applies the attendance gate before the grade threshold: a student
// below MinAttendance is Sin Derecho whatever the grade.
func Classify(globalAttendancePct, finalGrade float64, rubric course.RubricSettings) course.Status {
	if globalAttendancePct < rubric.MinAttendance {
		return course.StatusNoRights
	}
	if finalGrade < rubric.MinGrade {
		return course.StatusFailed
	}
	return course.StatusApproved
}
