package benchmark

// BMICategory is the weight-status band a BMI value falls into.
type BMICategory string

const (
	BMIUnknown     BMICategory = "unknown"
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// Upper bounds are exclusive: [0,18.5) underweight, [18.5,25) normal, [25,30) overweight.
const (
	bmiUnderweightBelow = 18.5
	bmiNormalBelow      = 25.0
	bmiOverweightBelow  = 30.0
)

var bmiInterpretations = map[BMICategory]string{
	BMIUnknown:     "Invalid measurements",
	BMIUnderweight: "BMI indicates underweight status. May indicate nutritional deficiency risk, particularly for protein, iron, and B-vitamins.",
	BMINormal:      "BMI is within healthy range. Focus on maintaining balanced nutrition.",
	BMIOverweight:  "BMI indicates overweight status. May benefit from dietary modifications and increased physical activity.",
	BMIObese:       "BMI indicates obesity. Higher risk for certain nutrient deficiencies despite excess caloric intake.",
}

// ClassifyBMI returns the category for a positive BMI value.
// Non-positive values are reported as BMIUnknown.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi <= 0:
		return BMIUnknown
	case bmi < bmiUnderweightBelow:
		return BMIUnderweight
	case bmi < bmiNormalBelow:
		return BMINormal
	case bmi < bmiOverweightBelow:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// Interpretation returns the fixed explanatory sentence for c.
func (c BMICategory) Interpretation() string {
	if s, ok := bmiInterpretations[c]; ok {
		return s
	}
	return bmiInterpretations[BMIUnknown]
}
