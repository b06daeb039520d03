package assessment

import (
	"sort"
	"strconv"

	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/nutrient"
)

// RiskRecord is the deficiency estimate for one nutrient.
type RiskRecord struct {
	Nutrient            nutrient.Nutrient   `json:"nutrient"`
	RiskLevel           benchmark.RiskLevel `json:"risk_level"`
	ProbabilityPercent  float64             `json:"probability_percent"`
	RecommendedIntake   string              `json:"recommended_intake"`
	EstimatedIntake     string              `json:"estimated_intake"`
	CoveragePercent     float64             `json:"coverage_percent"`
	PrimaryCauses       []string            `json:"primary_causes"`
	SymptomLinks        []string            `json:"symptom_links"`
	GeographicInfluence string              `json:"geographic_influence"`

	rda       float64
	estimated float64
}

// contributions are the per-stage scores for every nutrient.
type contributions struct {
	demographic nutrient.Vector
	dietary     [nutrient.Count]DietaryEstimate
	geographic  nutrient.Vector
	symptom     nutrient.Vector
}

const (
	coverageTarget      = 70.0
	coveragePenaltyRate = 0.5
)

// probability blends the additive stage scores with the shortfall below the
// coverage target, clamped to [0,100].
func probability(base, coveragePct float64) float64 {
	penalty := max(0, (coverageTarget-coveragePct)*coveragePenaltyRate)
	return clamp(base+penalty, 0, 100)
}

func aggregate(in Input, bmi BMIResult, c contributions) []RiskRecord {
	records := make([]RiskRecord, 0, nutrient.Count)
	for _, n := range nutrient.All {
		rda := benchmark.RDA(n, in.Gender, in.Age, in.LifeStage)
		score := c.dietary[n].Score
		coverage := score * 100
		estimated := rda * score

		base := c.demographic[n] + c.geographic[n] + c.symptom[n]
		// Level is taken from the rounded figure so the two never disagree.
		p := round(probability(base, coverage), 1)

		records = append(records, RiskRecord{
			Nutrient:            n,
			RiskLevel:           benchmark.ClassifyRisk(p),
			ProbabilityPercent:  p,
			RecommendedIntake:   strconv.FormatFloat(rda, 'f', -1, 64) + " " + n.Unit() + "/day",
			EstimatedIntake:     strconv.FormatFloat(estimated, 'f', 1, 64) + " " + n.Unit() + "/day",
			CoveragePercent:     round(coverage, 1),
			PrimaryCauses:       primaryCauses(n, in, bmi, c),
			SymptomLinks:        benchmark.SymptomLinks(n),
			GeographicInfluence: geographicInfluence(n, in.Location),
			rda:                 rda,
			estimated:           round(estimated, 1),
		})
	}
	// Stable, so equal probabilities keep canonical nutrient order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ProbabilityPercent > records[j].ProbabilityPercent
	})
	return records
}
