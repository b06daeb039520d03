package assessment

import (
	"fmt"
	"strconv"

	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/nutrient"
)

const (
	maxCauses          = 5
	maxPatternCauses   = 2
	demographicTrigger = 15.0
	geographicTrigger  = 10.0
	symptomTrigger     = 15.0
	lowSunMinutes      = 20.0
	fallbackCause      = "General dietary assessment"
)

func primaryCauses(n nutrient.Nutrient, in Input, bmi BMIResult, c contributions) []string {
	var causes []string

	if c.demographic[n] > demographicTrigger {
		if in.Diet.RestrictsSources() && oneOf(n, nutrient.VitaminB12, nutrient.Iron, nutrient.Zinc) {
			causes = append(causes, fmt.Sprintf("%s diet limits %s sources", in.DietaryPreference, n))
		}
		if in.Gender == "female" && n == nutrient.Iron && reproductiveAge(in.Age) {
			causes = append(causes, "Female reproductive age increases iron needs")
		}
		if in.LifeStage == benchmark.LifeStagePregnant {
			causes = append(causes, fmt.Sprintf("Pregnancy increases %s requirements", n))
		}
		if bmi.Category == benchmark.BMIUnderweight && oneOf(n, nutrient.Protein, nutrient.Iron) {
			causes = append(causes, "Underweight status suggests inadequate nutrition")
		}
	}

	if d := c.dietary[n]; d.Score < baselineCoverage {
		pens := d.Penalties
		if len(pens) > maxPatternCauses {
			pens = pens[:maxPatternCauses]
		}
		causes = append(causes, pens...)
	}

	if c.geographic[n] > geographicTrigger {
		switch n {
		case nutrient.Iron:
			if a, _ := benchmark.Anemia(in.Location); a.Prevalence > 50 {
				causes = append(causes, fmt.Sprintf("High regional anemia prevalence (%.1f%%)", a.Prevalence))
			}
		case nutrient.VitaminD:
			vd, _ := benchmark.VitaminD(in.Location)
			causes = append(causes, vd.Reason)
		}
	}

	if c.symptom[n] > symptomTrigger {
		q := in.Questionnaire
		if reported(q.Fatigue) && oneOf(n, nutrient.Iron, nutrient.VitaminB12, nutrient.VitaminD) {
			causes = append(causes, "Fatigue symptoms reported")
		}
		if reported(q.HairFall) && oneOf(n, nutrient.Iron, nutrient.Zinc) {
			causes = append(causes, "Hair fall symptoms reported")
		}
		if reported(q.MuscleCramps) && oneOf(n, nutrient.Magnesium, nutrient.Calcium) {
			causes = append(causes, "Muscle cramps reported")
		}
		if n == nutrient.VitaminD && q.SunMinutes < lowSunMinutes {
			causes = append(causes, "Low sun exposure ("+strconv.FormatFloat(q.SunMinutes, 'f', -1, 64)+" min/day)")
		}
	}

	if len(causes) == 0 {
		return []string{fallbackCause}
	}
	if len(causes) > maxCauses {
		causes = causes[:maxCauses]
	}
	return causes
}

// reported is true for answers that contributed a symptom score.
func reported(answer string) bool { return classifyAnswer(answer) != severityNone }

func oneOf(n nutrient.Nutrient, set ...nutrient.Nutrient) bool {
	for _, s := range set {
		if n == s {
			return true
		}
	}
	return false
}
