// Package benchmark holds the static reference data behind a deficiency
// assessment: RDA benchmarks, BMI and risk bands, regional survey tables,
// habit impact tables, lab tests and food suggestions.
//
// Every table is initialized once and never mutated, so lookups are safe for
// concurrent use without synchronization.
package benchmark

import (
	"strings"

	"github.com/Skufu/nutririsk/internal/nutrient"
)

// AgeBand buckets an age for RDA lookup.
type AgeBand string

const (
	Child1to3     AgeBand = "child_1_3"
	Child4to8     AgeBand = "child_4_8"
	Child9to13    AgeBand = "child_9_13"
	Adolescent    AgeBand = "adolescent_14_18"
	Adult19to50   AgeBand = "adult_19_50"
	Adult51Plus   AgeBand = "adult_51_plus"
	bandPregnant  AgeBand = "pregnant"
	bandLactating AgeBand = "lactating"
)

// LifeStage is the adult/pregnant/lactating status affecting RDA and risk weighting.
type LifeStage string

const (
	LifeStageAdult     LifeStage = "adult"
	LifeStagePregnant  LifeStage = "pregnant"
	LifeStageLactating LifeStage = "lactating"
)

// ParseLifeStage maps free text onto a life stage. Anything that does not
// mention pregnancy or lactation is treated as adult.
func ParseLifeStage(s string) LifeStage {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "pregnant"):
		return LifeStagePregnant
	case strings.Contains(lower, "lactating"):
		return LifeStageLactating
	default:
		return LifeStageAdult
	}
}

// AgeBandFor returns the RDA age band for age in years.
func AgeBandFor(age int) AgeBand {
	switch {
	case age <= 3:
		return Child1to3
	case age <= 8:
		return Child4to8
	case age <= 13:
		return Child9to13
	case age <= 18:
		return Adolescent
	case age <= 50:
		return Adult19to50
	default:
		return Adult51Plus
	}
}

type rdaRow struct {
	male   map[AgeBand]float64
	female map[AgeBand]float64
}

// rdaTable is keyed by nutrient; values are per day in the nutrient's unit.
var rdaTable = [nutrient.Count]rdaRow{
	nutrient.Iron: {
		male:   map[AgeBand]float64{Child1to3: 7, Child4to8: 10, Child9to13: 8, Adolescent: 11, Adult19to50: 8, Adult51Plus: 8},
		female: map[AgeBand]float64{Child1to3: 7, Child4to8: 10, Child9to13: 8, Adolescent: 15, Adult19to50: 18, Adult51Plus: 8, bandPregnant: 27, bandLactating: 9},
	},
	nutrient.VitaminB12: {
		male:   map[AgeBand]float64{Child1to3: 0.9, Child4to8: 1.2, Child9to13: 1.8, Adolescent: 2.4, Adult19to50: 2.4, Adult51Plus: 2.4},
		female: map[AgeBand]float64{Child1to3: 0.9, Child4to8: 1.2, Child9to13: 1.8, Adolescent: 2.4, Adult19to50: 2.4, Adult51Plus: 2.4, bandPregnant: 2.6, bandLactating: 2.8},
	},
	nutrient.VitaminD: {
		male:   map[AgeBand]float64{Child1to3: 600, Child4to8: 600, Child9to13: 600, Adolescent: 600, Adult19to50: 600, Adult51Plus: 800},
		female: map[AgeBand]float64{Child1to3: 600, Child4to8: 600, Child9to13: 600, Adolescent: 600, Adult19to50: 600, Adult51Plus: 800, bandPregnant: 600, bandLactating: 600},
	},
	nutrient.Calcium: {
		male:   map[AgeBand]float64{Child1to3: 700, Child4to8: 1000, Child9to13: 1300, Adolescent: 1300, Adult19to50: 1000, Adult51Plus: 1200},
		female: map[AgeBand]float64{Child1to3: 700, Child4to8: 1000, Child9to13: 1300, Adolescent: 1300, Adult19to50: 1000, Adult51Plus: 1200, bandPregnant: 1000, bandLactating: 1300},
	},
	nutrient.Magnesium: {
		male:   map[AgeBand]float64{Child1to3: 80, Child4to8: 130, Child9to13: 240, Adolescent: 410, Adult19to50: 400, Adult51Plus: 420},
		female: map[AgeBand]float64{Child1to3: 80, Child4to8: 130, Child9to13: 240, Adolescent: 360, Adult19to50: 310, Adult51Plus: 320, bandPregnant: 350, bandLactating: 310},
	},
	nutrient.Zinc: {
		male:   map[AgeBand]float64{Child1to3: 3, Child4to8: 5, Child9to13: 8, Adolescent: 11, Adult19to50: 11, Adult51Plus: 11},
		female: map[AgeBand]float64{Child1to3: 3, Child4to8: 5, Child9to13: 8, Adolescent: 9, Adult19to50: 8, Adult51Plus: 8, bandPregnant: 11, bandLactating: 12},
	},
	nutrient.Protein: {
		male:   map[AgeBand]float64{Child1to3: 13, Child4to8: 19, Child9to13: 34, Adolescent: 52, Adult19to50: 56, Adult51Plus: 56},
		female: map[AgeBand]float64{Child1to3: 13, Child4to8: 19, Child9to13: 34, Adolescent: 46, Adult19to50: 46, Adult51Plus: 46, bandPregnant: 71, bandLactating: 71},
	},
}

// RDA returns the recommended daily allowance of n for the given person.
// Genders other than male use the female column. Pregnant and lactating
// overrides only apply to the female column.
func RDA(n nutrient.Nutrient, gender string, age int, stage LifeStage) float64 {
	if !n.Valid() {
		return 0
	}
	row := rdaTable[n]
	if !strings.EqualFold(gender, "male") {
		switch stage {
		case LifeStagePregnant:
			if v, ok := row.female[bandPregnant]; ok {
				return v
			}
			return row.female[Adult19to50]
		case LifeStageLactating:
			if v, ok := row.female[bandLactating]; ok {
				return v
			}
			return row.female[Adult19to50]
		}
		return row.female[AgeBandFor(age)]
	}
	return row.male[AgeBandFor(age)]
}
