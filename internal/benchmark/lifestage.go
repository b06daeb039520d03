package benchmark

import "strings"

// DailyTarget is the simplified per-day intake target used by the food log,
// which only tracks iron (mg), calcium (mg) and protein (g).
type DailyTarget struct {
	Iron    float64
	Calcium float64
	Protein float64
}

var lifeStageTargets = map[LifeStage]DailyTarget{
	LifeStageAdult:     {Iron: 18, Calcium: 1000, Protein: 46},
	LifeStagePregnant:  {Iron: 27, Calcium: 1000, Protein: 71},
	LifeStageLactating: {Iron: 9, Calcium: 1300, Protein: 71},
}

// TargetFor returns the daily target for an exact life-stage key. Unknown
// keys fall back to adult.
func TargetFor(stage string) (LifeStage, DailyTarget) {
	s := LifeStage(strings.ToLower(strings.TrimSpace(stage)))
	if t, ok := lifeStageTargets[s]; ok {
		return s, t
	}
	return LifeStageAdult, lifeStageTargets[LifeStageAdult]
}
