package grading

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// RubricScores is the per-item breakdown of a student's final grade.
type RubricScores struct {
	PerItem    map[string]float64 `json:"perItem"`  // item id -> mean activity score (0..100)
	Weighted   map[string]float64 `json:"weighted"` // item id -> mean * percentage / 100
	FinalGrade float64            `json:"finalGrade"`
}

// ComputeWeightedRubricScores averages the activities of every rubric item
// (unweighted mean, missing grades count as 0) and sums the weighted means.
// Items without activities contribute 0 but still appear in the maps.
// Percentages are not required to add up to 100.
func ComputeWeightedRubricScores(c course.Course, studentID string) RubricScores {
	res := RubricScores{
		PerItem:  make(map[string]float64, len(c.Rubric.Items)),
		Weighted: make(map[string]float64, len(c.Rubric.Items)),
	}
	for _, item := range c.Rubric.Items {
		acts := c.ActivitiesForItem(item.ID)
		if len(acts) == 0 {
			res.PerItem[item.ID] = 0
			res.Weighted[item.ID] = 0
			continue
		}
		sum := 0.0
		for _, act := range acts {
			sum += StudentScore(c, act, studentID)
		}
		avg := sum / float64(len(acts))
		weighted := avg * item.Percentage / 100
		res.PerItem[item.ID] = avg
		res.Weighted[item.ID] = weighted
		res.FinalGrade += weighted
	}
	return res
}
