package benchmark

import (
	"sort"
	"strings"

	"github.com/Skufu/nutririsk/internal/nutrient"
)

var symptomLinks = [nutrient.Count][]string{
	nutrient.Iron:       {"Fatigue", "Pale skin", "Brittle nails", "Shortness of breath", "Hair loss"},
	nutrient.VitaminB12: {"Fatigue", "Numbness/tingling", "Memory issues", "Mood changes", "Pale skin"},
	nutrient.VitaminD:   {"Bone pain", "Muscle weakness", "Fatigue", "Depression", "Frequent illness"},
	nutrient.Calcium:    {"Muscle cramps", "Brittle nails", "Dental problems", "Osteoporosis risk", "Numbness"},
	nutrient.Magnesium:  {"Muscle cramps", "Fatigue", "Weakness", "Poor sleep", "Headaches"},
	nutrient.Zinc:       {"Hair loss", "Poor wound healing", "Loss of taste/smell", "Skin issues", "Frequent infections"},
	nutrient.Protein:    {"Muscle loss", "Weakness", "Hair loss", "Slow healing", "Edema"},
}

// SymptomLinks returns the common symptoms of a deficiency in n as a fresh slice.
func SymptomLinks(n nutrient.Nutrient) []string {
	if !n.Valid() {
		return []string{"General weakness", "Fatigue"}
	}
	return append([]string(nil), symptomLinks[n]...)
}

type weight struct {
	nutrient string
	value    float64
}

type symptomCorrelation struct {
	key     string
	weights []weight
}

// The correlation matrix also covers nutrients outside the tracked set
// (potassium, vitamin_c), so weights are keyed by name.
var symptomMatrix = []symptomCorrelation{
	{"fatigue", []weight{{"iron", 0.4}, {"vitamin_b12", 0.3}, {"vitamin_d", 0.2}, {"magnesium", 0.1}}},
	{"hair_fall", []weight{{"iron", 0.35}, {"zinc", 0.25}, {"protein", 0.2}, {"vitamin_d", 0.1}, {"vitamin_b12", 0.1}}},
	{"muscle_cramps", []weight{{"magnesium", 0.4}, {"calcium", 0.3}, {"vitamin_d", 0.2}, {"potassium", 0.1}}},
	{"bone_pain", []weight{{"vitamin_d", 0.45}, {"calcium", 0.4}, {"magnesium", 0.15}}},
	{"weakness", []weight{{"iron", 0.3}, {"vitamin_b12", 0.25}, {"protein", 0.2}, {"vitamin_d", 0.15}, {"calcium", 0.1}}},
	{"pale_skin", []weight{{"iron", 0.6}, {"vitamin_b12", 0.4}}},
	{"brittle_nails", []weight{{"iron", 0.4}, {"zinc", 0.3}, {"protein", 0.15}, {"calcium", 0.15}}},
	{"poor_wound_healing", []weight{{"zinc", 0.4}, {"protein", 0.3}, {"vitamin_c", 0.2}, {"iron", 0.1}}},
	{"mood_changes", []weight{{"vitamin_d", 0.35}, {"vitamin_b12", 0.3}, {"magnesium", 0.25}, {"iron", 0.1}}},
	{"numbness_tingling", []weight{{"vitamin_b12", 0.6}, {"calcium", 0.2}, {"magnesium", 0.2}}},
}

// Correlation is the summed weight linking reported symptoms to one nutrient.
type Correlation struct {
	Nutrient string  `json:"nutrient"`
	Weight   float64 `json:"weight"`
}

// CorrelateSymptoms sums the correlation weights of every matrix entry that a
// reported symptom names. A symptom matches an entry when either contains the
// other after lower-casing and replacing spaces with underscores. Results are
// sorted by descending weight, ties by name.
func CorrelateSymptoms(symptoms []string) []Correlation {
	totals := make(map[string]float64)
	for _, s := range symptoms {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
		if key == "" {
			continue
		}
		for _, row := range symptomMatrix {
			if !strings.Contains(key, row.key) && !strings.Contains(row.key, key) {
				continue
			}
			for _, w := range row.weights {
				totals[w.nutrient] += w.value
			}
		}
	}
	out := make([]Correlation, 0, len(totals))
	for n, w := range totals {
		out = append(out, Correlation{Nutrient: n, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Nutrient < out[j].Nutrient
	})
	return out
}
