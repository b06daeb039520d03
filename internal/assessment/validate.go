package assessment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected required field, in request order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// requiredFields carries the parsed required values through range validation.
type requiredFields struct {
	Age      float64 `json:"age" validate:"gte=1,lte=120"`
	Gender   string  `json:"gender" validate:"oneof=male female other"`
	HeightCM float64 `json:"height_cm" validate:"gte=1,lte=300"`
	WeightKG float64 `json:"weight_kg" validate:"gte=1,lte=500"`
}

var fieldOrder = []string{"age", "gender", "height_cm", "weight_kg"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the required fields of raw. Required numerics must be
// present and numeric; they are never silently defaulted. The returned
// error, if any, is a *ValidationError.
func Validate(raw RawInput) error {
	problems := make(map[string]string)

	number := func(field string, v Value) float64 {
		if v.Blank() {
			problems[field] = "is required"
			return 0
		}
		f, ok := v.Float()
		if !ok {
			problems[field] = "must be a number"
		}
		return f
	}

	req := requiredFields{
		Age:      number("age", raw.Age),
		HeightCM: number("height_cm", raw.HeightCM),
		WeightKG: number("weight_kg", raw.WeightKG),
		Gender:   strings.ToLower(strings.TrimSpace(raw.Gender.String())),
	}
	if req.Gender == "" {
		problems["gender"] = "is required"
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if _, seen := problems[fe.Field()]; seen {
				continue
			}
			problems[fe.Field()] = describe(fe)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	out := &ValidationError{}
	for _, f := range fieldOrder {
		if msg, ok := problems[f]; ok {
			out.Fields = append(out.Fields, FieldError{Field: f, Message: msg})
		}
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
