package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/nutririsk/internal/nutrient"
)

func TestRDA(t *testing.T) {
	tests := []struct {
		name   string
		n      nutrient.Nutrient
		gender string
		age    int
		stage  LifeStage
		want   float64
	}{
		{"adult female iron", nutrient.Iron, "female", 30, LifeStageAdult, 18},
		{"adult male iron", nutrient.Iron, "Male", 30, LifeStageAdult, 8},
		{"teen girl iron", nutrient.Iron, "female", 16, LifeStageAdult, 15},
		{"toddler protein", nutrient.Protein, "male", 2, LifeStageAdult, 13},
		{"senior vitamin d", nutrient.VitaminD, "female", 70, LifeStageAdult, 800},
		{"pregnant iron", nutrient.Iron, "female", 28, LifeStagePregnant, 27},
		{"lactating zinc", nutrient.Zinc, "female", 28, LifeStageLactating, 12},
		{"pregnancy ignored for male", nutrient.Iron, "male", 28, LifeStagePregnant, 8},
		{"other gender uses female column", nutrient.Magnesium, "other", 40, LifeStageAdult, 310},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RDA(tt.n, tt.gender, tt.age, tt.stage))
		})
	}
}

func TestParseLifeStage(t *testing.T) {
	assert.Equal(t, LifeStagePregnant, ParseLifeStage("Pregnant (2nd trimester)"))
	assert.Equal(t, LifeStageLactating, ParseLifeStage("lactating"))
	assert.Equal(t, LifeStageAdult, ParseLifeStage(""))
	assert.Equal(t, LifeStageAdult, ParseLifeStage("athlete"))
}

func TestClassifyBMIBoundaries(t *testing.T) {
	assert.Equal(t, BMIUnknown, ClassifyBMI(0))
	assert.Equal(t, BMIUnderweight, ClassifyBMI(18.49))
	assert.Equal(t, BMINormal, ClassifyBMI(18.5))
	assert.Equal(t, BMINormal, ClassifyBMI(24.99))
	assert.Equal(t, BMIOverweight, ClassifyBMI(25))
	assert.Equal(t, BMIObese, ClassifyBMI(30))
	assert.Equal(t, "Invalid measurements", BMIUnknown.Interpretation())
	assert.Contains(t, BMIObese.Interpretation(), "obesity")
}

func TestClassifyRisk(t *testing.T) {
	assert.Equal(t, RiskLow, ClassifyRisk(30))
	assert.Equal(t, RiskModerate, ClassifyRisk(30.1))
	assert.Equal(t, RiskModerate, ClassifyRisk(60))
	assert.Equal(t, RiskHigh, ClassifyRisk(80))
	assert.Equal(t, RiskCritical, ClassifyRisk(80.1))

	assert.Equal(t, 1, RiskCritical.Priority())
	assert.Equal(t, 3, RiskModerate.Priority())
	assert.False(t, RiskLow.AtRisk())
}

func TestMatchDiet(t *testing.T) {
	tests := map[string]Diet{
		"Vegan":          DietVegan,
		"vegetarian":     DietVegetarian,
		"non-vegetarian": DietNonVegetarian,
		"Non Vegetarian": DietNonVegetarian,
		"veg":            DietVegetarian,
		"pescatarian":    DietPescatarian,
		"eggetarian":     DietEggetarian,
		"":               DietNonVegetarian,
		"carnivore":      DietNonVegetarian,
	}
	for in, want := range tests {
		assert.Equal(t, want, MatchDiet(in), in)
	}
}

func TestDietContributions(t *testing.T) {
	c := FactorsFor(DietVegan).Contributions()
	assert.InDelta(t, 62.5, c[nutrient.VitaminB12], 1e-9)
	assert.InDelta(t, 37.5, c[nutrient.Iron], 1e-9)
	assert.InDelta(t, 19.5, c[nutrient.VitaminD], 1e-9)
	assert.Zero(t, c[nutrient.Magnesium])

	nv := FactorsFor(DietNonVegetarian).Contributions()
	assert.InDelta(t, 16.5, nv[nutrient.Magnesium], 1e-9)
}

func TestRegionalLookupFallbackChain(t *testing.T) {
	rec, ok := Anemia("West Bengal")
	require.True(t, ok)
	assert.Equal(t, 60.7, rec.Prevalence)

	rec, ok = Anemia("kolkata, west bengal")
	require.True(t, ok)
	assert.Equal(t, "critical", rec.Severity)

	rec, ok = Anemia("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, AnemiaRecord{52.0, "mixed", "moderate"}, rec)

	water, ok := Groundwater("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, "Regional data unavailable, using national baseline", water.HealthImpact)

	water, _ = Groundwater("Gujarat")
	assert.True(t, water.HighFluoride())
	assert.False(t, water.HighArsenic())

	vd, ok := VitaminD("kerala")
	require.True(t, ok)
	assert.Equal(t, 0.9, vd.Factor)

	vd, _ = VitaminD("")
	assert.Equal(t, 1.1, vd.Factor)
}

func TestHabitTablesOnlyTrackNonZeroDeltas(t *testing.T) {
	for _, table := range [][]Pattern{HabitPatterns(), LifestylePatterns()} {
		for _, p := range table {
			require.NotEmpty(t, p.Impacts, p.Key)
			for _, i := range p.Impacts {
				assert.True(t, i.Nutrient.Valid(), p.Key)
				assert.NotZero(t, i.Delta, p.Key)
			}
		}
	}
}

func TestCorrelateSymptoms(t *testing.T) {
	got := CorrelateSymptoms([]string{"Pale Skin", "fatigue"})
	require.NotEmpty(t, got)
	assert.Equal(t, "iron", got[0].Nutrient)
	assert.InDelta(t, 1.0, got[0].Weight, 1e-9)

	got = CorrelateSymptoms([]string{"poor wound healing"})
	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Nutrient
	}
	assert.Contains(t, names, "vitamin_c")

	assert.Empty(t, CorrelateSymptoms([]string{"", "   "}))
}

func TestFoodSuggestionsByDiet(t *testing.T) {
	assert.Equal(t, "Spinach", FoodSuggestions(nutrient.Iron, DietVegan)[0])
	assert.Equal(t, "Lean red meat", FoodSuggestions(nutrient.Iron, DietPescatarian)[0])
	assert.Equal(t, FoodSuggestions(nutrient.Calcium, DietVegan), FoodSuggestions(nutrient.Calcium, DietNonVegetarian))

	list := FoodSuggestions(nutrient.Zinc, DietVegetarian)
	list[0] = "mutated"
	assert.Equal(t, "Pumpkin seeds", FoodSuggestions(nutrient.Zinc, DietVegetarian)[0])
}

func TestRecommendedTestDefault(t *testing.T) {
	assert.Equal(t, "Serum Zinc", RecommendedTest(nutrient.Zinc).Primary)
	assert.Equal(t, "Comprehensive metabolic panel", RecommendedTest(nutrient.Count).Primary)
}

func TestTargetFor(t *testing.T) {
	stage, target := TargetFor("Pregnant")
	assert.Equal(t, LifeStagePregnant, stage)
	assert.Equal(t, 27.0, target.Iron)

	stage, target = TargetFor("teen")
	assert.Equal(t, LifeStageAdult, stage)
	assert.Equal(t, 46.0, target.Protein)
}
