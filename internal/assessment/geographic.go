package assessment

import (
	"fmt"

	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/nutrient"
)

// unknownLocationRisk is applied to every nutrient when no location is given.
const unknownLocationRisk = 10.0

func geographicRisks(location string) nutrient.Vector {
	if location == "" {
		return nutrient.Fill(unknownLocationRisk)
	}
	var r nutrient.Vector

	anemia, _ := benchmark.Anemia(location)
	switch p := anemia.Prevalence; {
	case p >= 60:
		r[nutrient.Iron] += 25
	case p >= 50:
		r[nutrient.Iron] += 15
	case p >= 40:
		r[nutrient.Iron] += 10
	}

	water, _ := benchmark.Groundwater(location)
	if water.HighFluoride() {
		r[nutrient.Calcium] += 10
		r[nutrient.Magnesium] += 10
	}
	if water.HighArsenic() {
		r[nutrient.Iron] += 10
		r[nutrient.Zinc] += 10
	}

	vd, _ := benchmark.VitaminD(location)
	r[nutrient.VitaminD] += (vd.Factor - 1) * 30

	if anemia.UrbanRural == "urban" {
		r[nutrient.VitaminD] += 10
		r[nutrient.Magnesium] += 5
	}
	return r
}

// geographicInfluence describes how the region bears on n.
func geographicInfluence(n nutrient.Nutrient, location string) string {
	if location == "" {
		return "Location data unavailable for regional assessment"
	}
	switch n {
	case nutrient.Iron:
		a, _ := benchmark.Anemia(location)
		return fmt.Sprintf("Regional anemia prevalence: %.1f%% (%s severity)", a.Prevalence, a.Severity)
	case nutrient.VitaminD:
		vd, _ := benchmark.VitaminD(location)
		return vd.Reason
	case nutrient.Calcium, nutrient.Magnesium:
		w, _ := benchmark.Groundwater(location)
		if w.HighFluoride() {
			return "High fluoride in groundwater may affect absorption"
		}
		return w.HealthImpact
	default:
		return "No specific regional risk for " + n.String()
	}
}
