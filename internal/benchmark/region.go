package benchmark

import "strings"

// AnemiaRecord is a state's anemia prevalence from regional health surveys.
type AnemiaRecord struct {
	Prevalence float64
	UrbanRural string
	Severity   string
}

// GroundwaterRecord describes a state's groundwater mineral levels.
type GroundwaterRecord struct {
	Fluoride     string
	Arsenic      string
	Iron         string
	Nitrate      string
	Hardness     string
	HealthImpact string
}

// VitaminDRecord is a state's vitamin-D deficiency risk factor.
type VitaminDRecord struct {
	Risk   string
	Factor float64
	Reason string
}

type regionEntry[T any] struct {
	key   string
	value T
}

// regionTable keeps insertion order so substring fallback is deterministic.
type regionTable[T any] struct {
	entries  []regionEntry[T]
	fallback T
}

// lookup tries an exact key, then a case-insensitive containment match in
// either direction over the ordered keys, then the fallback.
func (t regionTable[T]) lookup(location string) (T, bool) {
	for _, e := range t.entries {
		if e.key == location {
			return e.value, true
		}
	}
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc != "" {
		for _, e := range t.entries {
			key := strings.ToLower(e.key)
			if strings.Contains(loc, key) || strings.Contains(key, loc) {
				return e.value, true
			}
		}
	}
	return t.fallback, false
}

func isElevated(level string) bool {
	return level == "high" || level == "very_high"
}

// HighFluoride reports a high or very high fluoride level.
func (g GroundwaterRecord) HighFluoride() bool { return isElevated(g.Fluoride) }

// HighArsenic reports a high or very high arsenic level.
func (g GroundwaterRecord) HighArsenic() bool { return isElevated(g.Arsenic) }

var anemiaTable = regionTable[AnemiaRecord]{
	entries: []regionEntry[AnemiaRecord]{
		{"Delhi", AnemiaRecord{52.0, "urban", "high"}},
		{"Punjab", AnemiaRecord{46.3, "mixed", "moderate"}},
		{"Haryana", AnemiaRecord{54.4, "mixed", "high"}},
		{"Uttar Pradesh", AnemiaRecord{50.4, "mixed", "high"}},
		{"Rajasthan", AnemiaRecord{54.4, "mixed", "high"}},
		{"Madhya Pradesh", AnemiaRecord{53.0, "mixed", "high"}},
		{"Uttarakhand", AnemiaRecord{43.6, "mixed", "moderate"}},
		{"Himachal Pradesh", AnemiaRecord{40.5, "rural", "moderate"}},
		{"Jammu and Kashmir", AnemiaRecord{48.0, "mixed", "moderate"}},
		{"Maharashtra", AnemiaRecord{48.0, "mixed", "moderate"}},
		{"Gujarat", AnemiaRecord{62.6, "mixed", "critical"}},
		{"Goa", AnemiaRecord{39.2, "urban", "moderate"}},
		{"Tamil Nadu", AnemiaRecord{53.2, "mixed", "high"}},
		{"Kerala", AnemiaRecord{36.3, "mixed", "moderate"}},
		{"Karnataka", AnemiaRecord{47.8, "mixed", "moderate"}},
		{"Andhra Pradesh", AnemiaRecord{58.0, "mixed", "high"}},
		{"Telangana", AnemiaRecord{57.6, "mixed", "high"}},
		{"West Bengal", AnemiaRecord{60.7, "mixed", "critical"}},
		{"Odisha", AnemiaRecord{64.3, "mixed", "critical"}},
		{"Bihar", AnemiaRecord{63.5, "mixed", "critical"}},
		{"Jharkhand", AnemiaRecord{65.3, "mixed", "critical"}},
		{"Assam", AnemiaRecord{66.4, "mixed", "critical"}},
		{"Meghalaya", AnemiaRecord{56.0, "rural", "high"}},
		{"Manipur", AnemiaRecord{39.0, "mixed", "moderate"}},
		{"Mizoram", AnemiaRecord{35.0, "mixed", "moderate"}},
		{"Nagaland", AnemiaRecord{28.0, "rural", "low"}},
		{"Tripura", AnemiaRecord{54.0, "mixed", "high"}},
		{"Arunachal Pradesh", AnemiaRecord{42.0, "rural", "moderate"}},
		{"Sikkim", AnemiaRecord{34.0, "rural", "moderate"}},
		{"Chhattisgarh", AnemiaRecord{60.0, "mixed", "critical"}},
	},
	fallback: AnemiaRecord{52.0, "mixed", "moderate"},
}

var groundwaterTable = regionTable[GroundwaterRecord]{
	entries: []regionEntry[GroundwaterRecord]{
		{"Delhi", GroundwaterRecord{"high", "moderate", "moderate", "high", "high", "Dental fluorosis risk, potential thyroid issues"}},
		{"Punjab", GroundwaterRecord{"moderate", "moderate", "low", "high", "moderate", "Agricultural nitrate contamination common"}},
		{"Gujarat", GroundwaterRecord{"very_high", "low", "moderate", "moderate", "high", "Severe fluorosis endemic areas"}},
		{"Rajasthan", GroundwaterRecord{"very_high", "low", "low", "high", "very_high", "Fluorosis belt, hard water common"}},
		{"West Bengal", GroundwaterRecord{"moderate", "very_high", "high", "moderate", "moderate", "Arsenic contamination in groundwater, iron toxicity risk"}},
		{"Bihar", GroundwaterRecord{"moderate", "high", "high", "moderate", "moderate", "Arsenic belt along Ganga plains"}},
		{"Andhra Pradesh", GroundwaterRecord{"high", "low", "moderate", "high", "high", "Fluoride endemic zones"}},
		{"Tamil Nadu", GroundwaterRecord{"moderate", "low", "low", "moderate", "high", "Hard water belt, affects calcium absorption"}},
		{"Karnataka", GroundwaterRecord{"high", "low", "moderate", "moderate", "moderate", "Fluorosis in certain districts"}},
		{"Maharashtra", GroundwaterRecord{"moderate", "low", "moderate", "moderate", "moderate", "Generally acceptable water quality"}},
		{"Kerala", GroundwaterRecord{"low", "low", "high", "low", "low", "High iron content in some areas"}},
		{"Odisha", GroundwaterRecord{"moderate", "moderate", "high", "moderate", "moderate", "Iron contamination common"}},
	},
	fallback: GroundwaterRecord{"moderate", "low", "moderate", "moderate", "moderate", "Regional data unavailable, using national baseline"},
}

var vitaminDTable = regionTable[VitaminDRecord]{
	entries: []regionEntry[VitaminDRecord]{
		{"Delhi", VitaminDRecord{"high", 1.3, "Urban indoor lifestyle, pollution reducing UV"}},
		{"Punjab", VitaminDRecord{"moderate", 1.1, "Seasonal variation in sun exposure"}},
		{"Haryana", VitaminDRecord{"moderate", 1.1, "Mixed urban-rural pattern"}},
		{"Uttar Pradesh", VitaminDRecord{"moderate", 1.15, "Large population with varied exposure"}},
		{"Maharashtra", VitaminDRecord{"moderate", 1.2, "High urbanization in Mumbai, Pune"}},
		{"Gujarat", VitaminDRecord{"moderate", 1.0, "Good sun exposure but indoor work common"}},
		{"Tamil Nadu", VitaminDRecord{"moderate", 1.0, "Good sun availability"}},
		{"Kerala", VitaminDRecord{"low", 0.9, "Adequate sun exposure, coastal lifestyle"}},
		{"Karnataka", VitaminDRecord{"moderate", 1.15, "Bangalore IT sector indoor work"}},
		{"Andhra Pradesh", VitaminDRecord{"moderate", 1.0, "Mixed exposure patterns"}},
		{"West Bengal", VitaminDRecord{"high", 1.25, "High vegetarian population, less fortified foods"}},
		{"Odisha", VitaminDRecord{"moderate", 1.05, "Rural areas have better exposure"}},
		{"Bihar", VitaminDRecord{"high", 1.2, "Indoor work patterns, dietary limitations"}},
	},
	fallback: VitaminDRecord{"moderate", 1.1, "National average applied"},
}

// Anemia returns the anemia record for location. The boolean is false when
// the national default was used.
func Anemia(location string) (AnemiaRecord, bool) { return anemiaTable.lookup(location) }

// Groundwater returns the groundwater record for location, or the national baseline.
func Groundwater(location string) (GroundwaterRecord, bool) {
	return groundwaterTable.lookup(location)
}

// VitaminD returns the vitamin-D risk record for location, or the national average.
func VitaminD(location string) (VitaminDRecord, bool) { return vitaminDTable.lookup(location) }

// States lists the states with anemia survey data, in table order.
func States() []string {
	out := make([]string, len(anemiaTable.entries))
	for i, e := range anemiaTable.entries {
		out[i] = e.key
	}
	return out
}
