package grading

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

var ErrInvalidInput = errors.New("invalid grade input")

// CheckOn is the stored value of a ticked CHECK activity.
const CheckOn = 100

// ToggleCheck flips a CHECK value between 0 and 100.
func ToggleCheck(current float64) float64 {
	if current == CheckOn {
		return 0
	}
	return CheckOn
}

// ParseInput converts what was typed in a grade cell into the value stored in a Grade.
// Empty input is 0. CHECK accepts boolean-ish words and normalises to 0/100;
// SCALE and POINTS accept decimals with '.' or ','.
func ParseInput(act course.Activity, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	if act.GradingType == course.GradingCheck {
		switch strings.ToLower(s) {
		case "1", "100", "true", "x", "✓", "si", "sí", "yes":
			return CheckOn, nil
		case "0", "false", "no", "-":
			return 0, nil
		}
		return 0, ErrInvalidInput
	}
	v, ok := parseFloatLoose(s)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidInput
	}
	return v, nil
}

// parseFloatLoose accepts a plain decimal or one with a single decimal comma.
// A comma is never a thousands separator: "1,000" reads as 1.
func parseFloatLoose(s string) (float64, bool) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		if v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
