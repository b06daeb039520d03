package assessment

import (
	"errors"
	"fmt"
)

// ErrInternal reports an unexpected failure while computing an assessment.
// No partial result accompanies it.
var ErrInternal = errors.New("assessment: internal failure")

// Assess runs the full pipeline on a normalized input.
func Assess(in Input) *Result {
	bmi := CalculateBMI(in.HeightCM, in.WeightKG)
	c := contributions{
		demographic: demographicRisks(in, bmi.Category),
		dietary:     analyzeDiet(in.Habits),
		geographic:  geographicRisks(in.Location),
		symptom:     symptomRisks(in.Questionnaire),
	}
	records := aggregate(in, bmi, c)
	return &Result{
		BMIAnalysis:        bmi,
		DemographicSummary: demographicSummary(in, bmi),
		DeficiencyRisks:    records,
		Alerts:             generateAlerts(records),
		Recommendations:    generateRecommendations(in, records),
		Visualization:      visualize(in, records),
	}
}

// Evaluate is Assess with panics converted to ErrInternal.
func Evaluate(in Input) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	return Assess(in), nil
}

// Run validates raw, normalizes it and evaluates the assessment. Validation
// failures are returned as *ValidationError.
func Run(raw RawInput) (*Result, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	return Evaluate(Normalize(raw))
}
