package assessment

import (
	"strings"

	"github.com/Skufu/nutririsk/internal/nutrient"
)

type severity int

const (
	severityNone severity = iota
	severityWeak
	severityStrong
)

func classifyAnswer(a string) severity {
	switch a {
	case "yes", "severe", "high", "frequent", "always":
		return severityStrong
	case "moderate", "sometimes", "occasional":
		return severityWeak
	default:
		return severityNone
	}
}

type symptomRule struct {
	strong, weak []weightedNutrient
}

type weightedNutrient struct {
	n nutrient.Nutrient
	w float64
}

var (
	fatigueRule = symptomRule{
		strong: []weightedNutrient{{nutrient.Iron, 25}, {nutrient.VitaminB12, 20}, {nutrient.VitaminD, 15}},
		weak:   []weightedNutrient{{nutrient.Iron, 15}, {nutrient.VitaminB12, 10}, {nutrient.VitaminD, 10}},
	}
	hairFallRule = symptomRule{
		strong: []weightedNutrient{{nutrient.Iron, 20}, {nutrient.Zinc, 20}, {nutrient.Protein, 15}, {nutrient.VitaminD, 10}},
		weak:   []weightedNutrient{{nutrient.Iron, 10}, {nutrient.Zinc, 10}, {nutrient.Protein, 10}},
	}
	crampsRule = symptomRule{
		strong: []weightedNutrient{{nutrient.Magnesium, 25}, {nutrient.Calcium, 20}, {nutrient.VitaminD, 15}},
		weak:   []weightedNutrient{{nutrient.Magnesium, 15}, {nutrient.Calcium, 10}, {nutrient.VitaminD, 10}},
	}
)

func (r symptomRule) apply(v *nutrient.Vector, answer string) {
	var ws []weightedNutrient
	switch classifyAnswer(answer) {
	case severityStrong:
		ws = r.strong
	case severityWeak:
		ws = r.weak
	}
	for _, w := range ws {
		v[w.n] += w.w
	}
}

func symptomRisks(q Questionnaire) nutrient.Vector {
	var r nutrient.Vector
	fatigueRule.apply(&r, q.Fatigue)
	hairFallRule.apply(&r, q.HairFall)
	crampsRule.apply(&r, q.MuscleCramps)

	switch sun := q.SunMinutes; {
	case sun < 10:
		r[nutrient.VitaminD] += 30
	case sun < 20:
		r[nutrient.VitaminD] += 20
	case sun < 30:
		r[nutrient.VitaminD] += 10
	default:
		r[nutrient.VitaminD] -= 10
	}

	switch d := q.DairyServings; {
	case d < 1:
		r[nutrient.Calcium] += 25
		r[nutrient.VitaminB12] += 15
		r[nutrient.VitaminD] += 10
	case d < 2:
		r[nutrient.Calcium] += 10
		r[nutrient.VitaminB12] += 5
	}

	switch g := q.GreensPerWeek; {
	case g < 2:
		r[nutrient.Iron] += 20
		r[nutrient.Magnesium] += 15
		r[nutrient.Calcium] += 10
	case g < 4:
		r[nutrient.Iron] += 10
		r[nutrient.Magnesium] += 5
	}

	if hardWaterSource(q.WaterSource) {
		r[nutrient.Calcium] += 5
	}
	return r
}

func hardWaterSource(src string) bool {
	return strings.Contains(src, "bore") || strings.Contains(src, "ground") || strings.Contains(src, "well")
}
