package grading

import "github.com/picksplaydoit-ai/superappprofe/internal/course"

// Normalizer turns a stored grade value into a 0..100 score for one grading type.
type Normalizer interface {
	Normalize(act course.Activity, value float64) float64
}

var normalizers = map[course.GradingType]Normalizer{
	course.GradingCheck:  passThrough{},
	course.GradingScale:  passThrough{},
	course.GradingPoints: pointsNormalizer{},
}

// NormalizerFor returns the normalizer of t; unknown types score 0.
func NormalizerFor(t course.GradingType) Normalizer {
	if n, ok := normalizers[t]; ok {
		return n
	}
	return zeroNormalizer{}
}

// ResolveActivityScore returns the 0..100 contribution of a grade to its
// activity. A nil grade counts as 0. Values are not clamped.
func ResolveActivityScore(act course.Activity, grade *course.Grade) float64 {
	if grade == nil {
		return 0
	}
	return NormalizerFor(act.GradingType).Normalize(act, grade.Value)
}

// StudentScore resolves the score of studentID for act inside c.
func StudentScore(c course.Course, act course.Activity, studentID string) float64 {
	g, ok := c.GradeFor(studentID, act.ID)
	if !ok {
		return 0
	}
	return ResolveActivityScore(act, &g)
}

// --- Normalizers ---

// CHECK values are stored as 0/100 and SCALE values as 0..100 already.
type passThrough struct{}

func (passThrough) Normalize(_ course.Activity, v float64) float64 { return v }

type pointsNormalizer struct{}

func (pointsNormalizer) Normalize(act course.Activity, v float64) float64 {
	max := act.Max()
	if max <= 0 {
		return 0
	}
	return v / max * 100
}

type zeroNormalizer struct{}

func (zeroNormalizer) Normalize(course.Activity, float64) float64 { return 0 }
