package assessment

import (
	"strings"

	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/nutrient"
)

const (
	baselineCoverage = 0.5
	minCoverage      = 0.1
	maxCoverage      = 1.0
)

// DietaryEstimate is a nutrient's habit-derived coverage score with the
// evidence behind it.
type DietaryEstimate struct {
	Score     float64
	Sources   []string
	Penalties []string
}

// analyzeDiet scans the habit strings against the habit and lifestyle
// tables. Matching is plain substring containment on the lower-cased text,
// and every matching pattern applies.
func analyzeDiet(habits [periodCount]string) [nutrient.Count]DietaryEstimate {
	var est [nutrient.Count]DietaryEstimate
	for i := range est {
		est[i].Score = baselineCoverage
	}

	for p := Morning; p < periodCount; p++ {
		text := strings.ToLower(habits[p])
		if text == "" {
			continue
		}
		for _, pat := range benchmark.HabitPatterns() {
			if !strings.Contains(text, pat.Key) {
				continue
			}
			for _, im := range pat.Impacts {
				e := &est[im.Nutrient]
				e.Score += im.Delta
				if im.Delta > 0 {
					e.Sources = append(e.Sources, pat.Key+" ("+p.String()+")")
				} else {
					e.Penalties = append(e.Penalties, pat.Key+" reduces absorption")
				}
			}
		}
		for _, pat := range benchmark.LifestylePatterns() {
			if !strings.Contains(text, pat.Key) {
				continue
			}
			for _, im := range pat.Impacts {
				e := &est[im.Nutrient]
				e.Score += im.Delta
				if im.Delta < 0 {
					e.Penalties = append(e.Penalties, pat.Key+" lifestyle")
				}
			}
		}
	}

	for i := range est {
		est[i].Score = clamp(est[i].Score, minCoverage, maxCoverage)
	}
	return est
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
