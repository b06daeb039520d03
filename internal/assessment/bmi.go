package assessment

import (
	"math"

	"github.com/Skufu/nutririsk/internal/benchmark"
)

// BMIResult is the body-mass analysis section of a Result.
type BMIResult struct {
	Value          float64               `json:"bmi_value"`
	Category       benchmark.BMICategory `json:"category"`
	Interpretation string                `json:"interpretation"`
}

// CalculateBMI computes weight/height² rounded to two decimals. A
// non-positive height or weight yields the unknown category and 0.
func CalculateBMI(heightCM, weightKG float64) BMIResult {
	if heightCM <= 0 || weightKG <= 0 {
		return BMIResult{
			Category:       benchmark.BMIUnknown,
			Interpretation: benchmark.BMIUnknown.Interpretation(),
		}
	}
	m := heightCM / 100
	bmi := weightKG / (m * m)
	cat := benchmark.ClassifyBMI(bmi)
	return BMIResult{
		Value:          round(bmi, 2),
		Category:       cat,
		Interpretation: cat.Interpretation(),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
