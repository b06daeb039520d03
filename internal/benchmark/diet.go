package benchmark

import (
	"strings"

	"github.com/Skufu/nutririsk/internal/nutrient"
)

// Diet identifies a known dietary preference.
type Diet string

const (
	DietNonVegetarian Diet = "non_vegetarian"
	DietVegetarian    Diet = "vegetarian"
	DietVegan         Diet = "vegan"
	DietPescatarian   Diet = "pescatarian"
	DietEggetarian    Diet = "eggetarian"
)

const (
	defaultHighRiskMultiplier     = 1.5
	defaultModerateRiskMultiplier = 1.2

	// HighRiskWeight and ModerateRiskWeight are scaled by a diet multiplier.
	HighRiskWeight     = 25.0
	ModerateRiskWeight = 15.0
)

// DietFactors lists the nutrients a diet puts at risk and how strongly.
type DietFactors struct {
	HighRisk     []nutrient.Nutrient
	ModerateRisk []nutrient.Nutrient
	Multipliers  map[nutrient.Nutrient]float64
}

// Multiplier returns the weighting for n, falling back to the default for
// the list n appears in.
func (f DietFactors) Multiplier(n nutrient.Nutrient, high bool) float64 {
	if m, ok := f.Multipliers[n]; ok {
		return m
	}
	if high {
		return defaultHighRiskMultiplier
	}
	return defaultModerateRiskMultiplier
}

// Contributions returns the additive demographic risk implied by the diet.
func (f DietFactors) Contributions() nutrient.Vector {
	var out nutrient.Vector
	for _, n := range f.HighRisk {
		out[n] += HighRiskWeight * f.Multiplier(n, true)
	}
	for _, n := range f.ModerateRisk {
		out[n] += ModerateRiskWeight * f.Multiplier(n, false)
	}
	return out
}

var dietFactors = map[Diet]DietFactors{
	DietVegetarian: {
		HighRisk:     []nutrient.Nutrient{nutrient.VitaminB12, nutrient.Iron, nutrient.Zinc},
		ModerateRisk: []nutrient.Nutrient{nutrient.Protein},
		Multipliers: map[nutrient.Nutrient]float64{
			nutrient.VitaminB12: 1.8, nutrient.Iron: 1.4, nutrient.Zinc: 1.3, nutrient.Protein: 1.2,
		},
	},
	DietVegan: {
		HighRisk:     []nutrient.Nutrient{nutrient.VitaminB12, nutrient.Iron, nutrient.Zinc, nutrient.Calcium},
		ModerateRisk: []nutrient.Nutrient{nutrient.Protein, nutrient.VitaminD},
		Multipliers: map[nutrient.Nutrient]float64{
			nutrient.VitaminB12: 2.5, nutrient.Iron: 1.5, nutrient.Zinc: 1.4, nutrient.Calcium: 1.5,
			nutrient.Protein: 1.3, nutrient.VitaminD: 1.3,
		},
	},
	DietNonVegetarian: {
		ModerateRisk: []nutrient.Nutrient{nutrient.Magnesium},
		Multipliers:  map[nutrient.Nutrient]float64{nutrient.Magnesium: 1.1},
	},
	DietPescatarian: {
		ModerateRisk: []nutrient.Nutrient{nutrient.Zinc, nutrient.Magnesium},
		Multipliers:  map[nutrient.Nutrient]float64{nutrient.Zinc: 1.1, nutrient.Magnesium: 1.1},
	},
	DietEggetarian: {
		HighRisk:     []nutrient.Nutrient{nutrient.VitaminB12},
		ModerateRisk: []nutrient.Nutrient{nutrient.Iron, nutrient.Zinc},
		Multipliers: map[nutrient.Nutrient]float64{
			nutrient.VitaminB12: 1.4, nutrient.Iron: 1.2, nutrient.Zinc: 1.2,
		},
	},
}

// dietKeysSpecificFirst puts non_vegetarian ahead of vegetarian so that
// "non-vegetarian" is not read as vegetarian.
var dietKeysSpecificFirst = []Diet{DietNonVegetarian, DietVegetarian, DietVegan, DietPescatarian, DietEggetarian}

// dietKeysDeclared is the table order used for abbreviations such as "veg".
var dietKeysDeclared = []Diet{DietVegetarian, DietVegan, DietNonVegetarian, DietPescatarian, DietEggetarian}

// MatchDiet resolves a free-text preference to a known diet. A known key
// contained in the text wins first, then text that abbreviates a known key.
// Blank or unmatched text yields the non-vegetarian baseline.
func MatchDiet(preference string) Diet {
	key := normalizeDietKey(preference)
	if key == "" {
		return DietNonVegetarian
	}
	for _, d := range dietKeysSpecificFirst {
		if strings.Contains(key, string(d)) {
			return d
		}
	}
	for _, d := range dietKeysDeclared {
		if strings.Contains(string(d), key) {
			return d
		}
	}
	return DietNonVegetarian
}

func normalizeDietKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// FactorsFor returns the risk factors of a matched diet.
func FactorsFor(d Diet) DietFactors {
	if f, ok := dietFactors[d]; ok {
		return f
	}
	return dietFactors[DietNonVegetarian]
}

// PlantBased reports whether food suggestions should use the vegetarian list.
func (d Diet) PlantBased() bool {
	return d == DietVegetarian || d == DietVegan || d == DietEggetarian
}

// RestrictsSources reports whether d is a vegetarian or vegan diet, the
// two diets whose restriction is called out as a cause for b12, iron and zinc.
func (d Diet) RestrictsSources() bool {
	return d == DietVegetarian || d == DietVegan
}
