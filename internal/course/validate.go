package course

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidRubric   = errors.New("invalid rubric")
	ErrInvalidActivity = errors.New("invalid activity")
)

// percentages are floats; sums like 33.3+33.3+33.4 must still count as 100
const percentEpsilon = 1e-6

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Use JSON tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRubric checks a rubric before it is saved. Items must add up to 100%.
func ValidateRubric(r RubricSettings) error {
	fields := structFieldErrors(validate.Struct(r))

	total := 0.0
	for _, it := range r.Items {
		total += it.Percentage
	}
	if math.Abs(total-100) > percentEpsilon {
		fields = append(fields, FieldError{
			Field: "items",
			Error: fmt.Sprintf("percentages must add up to 100 (got %g)", total),
		})
	}
	if len(fields) > 0 {
		return NewValidationError(ErrInvalidRubric, fields...)
	}
	return nil
}

// ValidateActivity checks an activity against the rubric it points into.
func ValidateActivity(a Activity, r RubricSettings) error {
	fields := structFieldErrors(validate.Struct(a))

	found := false
	for _, it := range r.Items {
		if it.ID == a.RubricItemID {
			found = true
			break
		}
	}
	if a.RubricItemID != "" && !found {
		fields = append(fields, FieldError{Field: "rubricItemId", Error: "unknown rubric item"})
	}
	if a.GradingType == GradingPoints && a.Max() <= 0 {
		fields = append(fields, FieldError{Field: "maxPoints", Error: "must be greater than 0 for POINTS"})
	}
	if len(fields) > 0 {
		return NewValidationError(ErrInvalidActivity, fields...)
	}
	return nil
}

func structFieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Error: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe.Namespace()), Error: tagText(fe)})
	}
	return out
}

// fieldPath drops the leading struct name: "RubricSettings.items[0].name" -> "items[0].name".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "failed on " + fe.Tag()
}
