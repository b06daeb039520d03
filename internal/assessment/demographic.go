package assessment

import (
	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/nutrient"
)

// demographicRisks scores age, gender, life stage, BMI and diet. Each rule
// adds independently; nothing here is normalized.
func demographicRisks(in Input, bmi benchmark.BMICategory) nutrient.Vector {
	var r nutrient.Vector

	switch {
	case in.Age < 5:
		r[nutrient.Iron] += 15
		r[nutrient.Zinc] += 10
		r[nutrient.VitaminD] += 10
	case in.Age >= 60:
		r[nutrient.VitaminB12] += 20
		r[nutrient.VitaminD] += 15
		r[nutrient.Calcium] += 15
	case in.Age >= 14 && in.Age <= 18:
		r[nutrient.Iron] += 15
		r[nutrient.Calcium] += 10
		r[nutrient.Zinc] += 10
	}

	if in.Gender == "female" {
		if reproductiveAge(in.Age) {
			r[nutrient.Iron] += 20
		}
		r[nutrient.Calcium] += 10
	}

	switch in.LifeStage {
	case benchmark.LifeStagePregnant:
		r[nutrient.Iron] += 25
		r[nutrient.Calcium] += 15
		r[nutrient.VitaminD] += 15
		r[nutrient.VitaminB12] += 15
		r[nutrient.Protein] += 15
	case benchmark.LifeStageLactating:
		r[nutrient.Calcium] += 20
		r[nutrient.VitaminD] += 10
		r[nutrient.VitaminB12] += 10
		r[nutrient.Protein] += 10
	}

	switch bmi {
	case benchmark.BMIUnderweight:
		r[nutrient.Protein] += 25
		r[nutrient.Iron] += 20
		r[nutrient.VitaminB12] += 15
		r[nutrient.Zinc] += 15
	case benchmark.BMIObese:
		r[nutrient.VitaminD] += 20
		r[nutrient.Magnesium] += 15
	}

	return r.Add(benchmark.FactorsFor(in.Diet).Contributions())
}

func reproductiveAge(age int) bool { return age >= 14 && age <= 50 }
