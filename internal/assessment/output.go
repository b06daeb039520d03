package assessment

import (
	"strconv"
	"strings"

	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/nutrient"
)

// Result is the complete assessment returned to callers.
type Result struct {
	BMIAnalysis        BMIResult        `json:"bmi_analysis"`
	DemographicSummary string           `json:"demographic_summary"`
	DeficiencyRisks    []RiskRecord     `json:"deficiency_risks"`
	Alerts             []Alert          `json:"alerts"`
	Recommendations    []Recommendation `json:"recommendations"`
	Visualization      Visualization    `json:"visualization_data"`
}

// Visualization holds chart-ready projections of the risk records.
type Visualization struct {
	NutrientComparison []ComparisonPoint `json:"nutrient_comparison_chart"`
	RiskRadar          []RadarPoint      `json:"risk_radar_chart"`
	HeatmapRegionFlag  string            `json:"heatmap_region_flag"`
	UrbanTrendFlag     string            `json:"urban_trend_flag"`
}

type ComparisonPoint struct {
	Nutrient        nutrient.Nutrient `json:"nutrient"`
	RDA             float64           `json:"who_rda"`
	EstimatedIntake float64           `json:"estimated_intake"`
	CoveragePercent float64           `json:"coverage_percent"`
}

type RadarPoint struct {
	Nutrient        nutrient.Nutrient   `json:"nutrient"`
	RiskProbability float64             `json:"risk_probability"`
	RiskLevel       benchmark.RiskLevel `json:"risk_level"`
}

const (
	heatmapElevated  = "elevated"
	heatmapNormal    = "normal"
	elevatedAnemiaAt = 50.0
)

func visualize(in Input, records []RiskRecord) Visualization {
	v := Visualization{
		NutrientComparison: make([]ComparisonPoint, len(records)),
		RiskRadar:          make([]RadarPoint, len(records)),
		HeatmapRegionFlag:  heatmapNormal,
		UrbanTrendFlag:     "mixed",
	}
	for i, r := range records {
		v.NutrientComparison[i] = ComparisonPoint{
			Nutrient:        r.Nutrient,
			RDA:             r.rda,
			EstimatedIntake: r.estimated,
			CoveragePercent: r.CoveragePercent,
		}
		v.RiskRadar[i] = RadarPoint{
			Nutrient:        r.Nutrient,
			RiskProbability: r.ProbabilityPercent,
			RiskLevel:       r.RiskLevel,
		}
	}
	if in.Location != "" {
		a, _ := benchmark.Anemia(in.Location)
		if a.Prevalence > elevatedAnemiaAt {
			v.HeatmapRegionFlag = heatmapElevated
		}
		v.UrbanTrendFlag = a.UrbanRural
	}
	return v
}

func demographicSummary(in Input, bmi BMIResult) string {
	parts := []string{strconv.Itoa(in.Age) + "-year-old " + in.Gender}
	if in.HealthCategory != "" {
		parts = append(parts, in.HealthCategory)
	}
	if in.DietaryPreference != "" {
		parts = append(parts, in.DietaryPreference+" diet")
	}
	if in.Location != "" {
		parts = append(parts, "residing in "+in.Location)
	}
	parts = append(parts, "BMI: "+strconv.FormatFloat(bmi.Value, 'f', -1, 64)+" ("+string(bmi.Category)+")")
	return strings.Join(parts, ". ")
}
