package assessment

import (
	"strings"

	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/nutrient"
)

// Recommendation categories.
const (
	CategoryDietary   = "dietary"
	CategoryLifestyle = "lifestyle"
	CategoryMedical   = "medical"
)

// Recommendation is one piece of dietary, lifestyle or medical advice.
// Dietary entries carry Foods, lifestyle entries Action, medical entries
// Action and Tests.
type Recommendation struct {
	Category string   `json:"category"`
	Nutrient string   `json:"nutrient,omitempty"`
	Priority string   `json:"priority"`
	Foods    []string `json:"foods,omitempty"`
	Action   string   `json:"action,omitempty"`
	Tests    []string `json:"tests,omitempty"`
	Tip      string   `json:"tip"`
}

const maxRoutineTests = 3

func generateRecommendations(in Input, records []RiskRecord) []Recommendation {
	var recs []Recommendation

	for _, r := range records {
		if !r.RiskLevel.AtRisk() {
			continue
		}
		priority := "moderate"
		if r.RiskLevel == benchmark.RiskHigh || r.RiskLevel == benchmark.RiskCritical {
			priority = "high"
		}
		recs = append(recs, Recommendation{
			Category: CategoryDietary,
			Nutrient: r.Nutrient.String(),
			Priority: priority,
			Foods:    benchmark.FoodSuggestions(r.Nutrient, in.Diet),
			Tip:      benchmark.DietaryTip(r.Nutrient),
		})
	}

	if q := in.Questionnaire; q.SunReported && q.SunMinutes < lowSunMinutes {
		recs = append(recs, Recommendation{
			Category: CategoryLifestyle,
			Nutrient: nutrient.VitaminD.String(),
			Priority: "high",
			Action:   "Increase sun exposure to 20-30 minutes daily (10am-3pm)",
			Tip:      "Morning sun is best for vitamin D synthesis without excessive UV damage",
		})
	}

	if mentionsTea(in.Habits[Morning]) || mentionsTea(in.Habits[Evening]) {
		recs = append(recs, Recommendation{
			Category: CategoryLifestyle,
			Nutrient: nutrient.Iron.String(),
			Priority: "moderate",
			Action:   "Avoid tea/coffee with meals - have them 1-2 hours after meals",
			Tip:      "Tannins in tea reduce iron absorption by up to 60%",
		})
	}

	var critical, high []string
	for _, r := range records {
		switch r.RiskLevel {
		case benchmark.RiskCritical:
			critical = append(critical, benchmark.RecommendedTest(r.Nutrient).Primary)
		case benchmark.RiskHigh:
			high = append(high, benchmark.RecommendedTest(r.Nutrient).Primary)
		}
	}
	switch {
	case len(critical) > 0:
		recs = append(recs, Recommendation{
			Category: CategoryMedical,
			Priority: "critical",
			Action:   "Schedule blood tests for nutrient assessment",
			Tests:    critical,
			Tip:      "Consult a healthcare provider for proper evaluation",
		})
	case len(high) > 0:
		if len(high) > maxRoutineTests {
			high = high[:maxRoutineTests]
		}
		recs = append(recs, Recommendation{
			Category: CategoryMedical,
			Priority: "high",
			Action:   "Consider routine blood tests",
			Tests:    high,
			Tip:      "Annual nutrient screening recommended",
		})
	}

	if recs == nil {
		recs = []Recommendation{}
	}
	return recs
}

func mentionsTea(habit string) bool {
	return strings.Contains(strings.ToLower(habit), "tea")
}
