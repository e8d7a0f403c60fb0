package grading_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
	"github.com/picksplaydoit-ai/superappprofe/internal/grading"
)

func ptr(v float64) *float64 { return &v }

func TestResolveActivityScore(t *testing.T) {
	points10 := course.Activity{GradingType: course.GradingPoints, MaxPoints: ptr(10)}
	points0 := course.Activity{GradingType: course.GradingPoints, MaxPoints: ptr(0)}
	pointsNil := course.Activity{GradingType: course.GradingPoints}

	tests := []struct {
		name  string
		act   course.Activity
		grade *course.Grade
		want  float64
	}{
		{"points full", points10, &course.Grade{Value: 10}, 100},
		{"points zero", points10, &course.Grade{Value: 0}, 0},
		{"points half", points10, &course.Grade{Value: 5}, 50},
		{"points max zero", points0, &course.Grade{Value: 10}, 0},
		{"points max unset", pointsNil, &course.Grade{Value: 10}, 0},
		{"points not clamped", points10, &course.Grade{Value: 12}, 120},
		{"check on", course.Activity{GradingType: course.GradingCheck}, &course.Grade{Value: 100}, 100},
		{"check off", course.Activity{GradingType: course.GradingCheck}, &course.Grade{Value: 0}, 0},
		{"scale", course.Activity{GradingType: course.GradingScale}, &course.Grade{Value: 73.5}, 73.5},
		{"unknown type", course.Activity{GradingType: "LETTER"}, &course.Grade{Value: 90}, 0},
		{"no grade", points10, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grading.ResolveActivityScore(tt.act, tt.grade)
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func rubricCourse() course.Course {
	c := course.New("Física", "2B")
	c.Students = []course.Student{{ID: "s", Name: "Sofía"}, {ID: "t", Name: "Tomás"}}
	c.Rubric.Items = []course.RubricItem{
		{ID: "exams", Name: "Exams", Percentage: 60},
		{ID: "hw", Name: "Homework", Percentage: 40},
	}
	c.Activities = []course.Activity{
		{ID: "exam1", Name: "Parcial", RubricItemID: "exams", GradingType: course.GradingScale},
		{ID: "hw1", Name: "Tarea 1", RubricItemID: "hw", GradingType: course.GradingCheck},
	}
	c.Grades = []course.Grade{
		{StudentID: "s", ActivityID: "exam1", Value: 80},
		{StudentID: "s", ActivityID: "hw1", Value: 100},
	}
	return c
}

func TestComputeWeightedRubricScores(t *testing.T) {
	c := rubricCourse()

	got := grading.ComputeWeightedRubricScores(c, "s")

	assert.InDelta(t, 88, got.FinalGrade, 1e-9)
	assert.InDelta(t, 80, got.PerItem["exams"], 1e-9)
	assert.InDelta(t, 48, got.Weighted["exams"], 1e-9)
	assert.InDelta(t, 100, got.PerItem["hw"], 1e-9)
	assert.InDelta(t, 40, got.Weighted["hw"], 1e-9)
}

func TestComputeWeightedRubricScoresMissingGradesCountAsZero(t *testing.T) {
	c := rubricCourse()
	c.Activities = append(c.Activities, course.Activity{ID: "hw2", Name: "Tarea 2", RubricItemID: "hw", GradingType: course.GradingCheck})

	got := grading.ComputeWeightedRubricScores(c, "s")
	assert.InDelta(t, 50, got.PerItem["hw"], 1e-9)
	assert.InDelta(t, 68, got.FinalGrade, 1e-9)

	none := grading.ComputeWeightedRubricScores(c, "t")
	assert.Zero(t, none.FinalGrade)
}

func TestComputeWeightedRubricScoresEmptyItem(t *testing.T) {
	c := rubricCourse()
	c.Rubric.Items = append(c.Rubric.Items, course.RubricItem{ID: "proj", Name: "Proyecto", Percentage: 0})
	c.Rubric.Items[1].Percentage = 40

	got := grading.ComputeWeightedRubricScores(c, "s")

	require.Contains(t, got.PerItem, "proj")
	assert.Zero(t, got.PerItem["proj"])
	assert.Zero(t, got.Weighted["proj"])
	assert.InDelta(t, 88, got.FinalGrade, 1e-9)
}

func TestComputeWeightedRubricScoresPercentagesNotSummingTo100(t *testing.T) {
	c := rubricCourse()
	c.Rubric.Items[0].Percentage = 100
	c.Rubric.Items[1].Percentage = 50
	c.Grades[0].Value = 100

	got := grading.ComputeWeightedRubricScores(c, "s")

	assert.InDelta(t, 100, got.Weighted["exams"], 1e-9)
	assert.InDelta(t, 50, got.Weighted["hw"], 1e-9)
	assert.InDelta(t, 150, got.FinalGrade, 1e-9)

	c.Rubric.Items[0].Percentage = 30
	c.Rubric.Items[1].Percentage = 20
	assert.InDelta(t, 50, grading.ComputeWeightedRubricScores(c, "s").FinalGrade, 1e-9)
}

func TestParseInput(t *testing.T) {
	check := course.Activity{GradingType: course.GradingCheck}
	scale := course.Activity{GradingType: course.GradingScale}

	tests := []struct {
		name    string
		act     course.Activity
		raw     string
		want    float64
		wantErr bool
	}{
		{"empty", scale, "  ", 0, false},
		{"decimal", scale, "87.5", 87.5, false},
		{"comma decimal", scale, "87,5", 87.5, false},
		{"garbage", scale, "abc", 0, true},
		{"trailing token", scale, "85 abc", 0, true},
		{"two numbers", scale, "85 90", 0, true},
		{"comma is decimal", scale, "1,000", 1, false},
		{"both separators", scale, "1,000.5", 0, true},
		{"nan", scale, "NaN", 0, true},
		{"inf", scale, "+Inf", 0, true},
		{"check yes", check, "sí", 100, false},
		{"check x", check, "X", 100, false},
		{"check no", check, "no", 0, false},
		{"check garbage", check, "maybe", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := grading.ParseInput(tt.act, tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, grading.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggleCheck(t *testing.T) {
	assert.Equal(t, 0.0, grading.ToggleCheck(100))
	assert.Equal(t, 100.0, grading.ToggleCheck(0))
	assert.Equal(t, 100.0, grading.ToggleCheck(37))
}
