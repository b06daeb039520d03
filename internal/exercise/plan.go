// Package exercise maps a life stage and coarse risk label to a general
// activity plan.
package exercise

import (
	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/riskmodel"
)

// Disclaimer accompanies every plan.
const Disclaimer = "Exercise suggestions are general and not a substitute for professional advice."

type Plan struct {
	Type      string   `json:"type"`
	Examples  []string `json:"examples"`
	Duration  string   `json:"duration"`
	Intensity string   `json:"intensity"`
	Notes     string   `json:"notes"`
}

// rule matches when the stage and label agree. An empty label matches any label.
type rule struct {
	pregnant bool
	label    riskmodel.Label
	plan     Plan
}

var rules = []rule{
	{pregnant: true, label: riskmodel.LabelHigh, plan: Plan{
		Type:      "Light activity",
		Examples:  []string{"Slow walking", "Prenatal stretching"},
		Duration:  "10–15 minutes",
		Intensity: "Low",
		Notes:     "Focus on gentle movement and rest",
	}},
	{pregnant: true, label: riskmodel.LabelMedium, plan: Plan{
		Type:      "Moderate activity",
		Examples:  []string{"Walking", "Prenatal yoga"},
		Duration:  "20–30 minutes",
		Intensity: "Moderate",
		Notes:     "Avoid overexertion",
	}},
	{pregnant: true, plan: Plan{
		Type:      "Regular prenatal exercise",
		Examples:  []string{"Walking", "Light yoga"},
		Duration:  "30 minutes",
		Intensity: "Moderate",
		Notes:     "Maintain consistency",
	}},
	{label: riskmodel.LabelHigh, plan: Plan{
		Type:      "Low-impact activity",
		Examples:  []string{"Walking", "Stretching"},
		Duration:  "15–20 minutes",
		Intensity: "Low",
		Notes:     "Focus on recovery",
	}},
	{label: riskmodel.LabelMedium, plan: Plan{
		Type:      "Balanced activity",
		Examples:  []string{"Brisk walking", "Yoga"},
		Duration:  "30 minutes",
		Intensity: "Moderate",
		Notes:     "Consistency matters",
	}},
	{plan: Plan{
		Type:      "Active routine",
		Examples:  []string{"Jogging", "Strength training"},
		Duration:  "45 minutes",
		Intensity: "Moderate–High",
		Notes:     "Maintain balanced nutrition",
	}},
}

// For returns the first plan whose rule matches. Labels other than HIGH and
// MEDIUM, including UNKNOWN, get the default plan for the stage.
func For(stage benchmark.LifeStage, label riskmodel.Label) Plan {
	pregnant := stage == benchmark.LifeStagePregnant
	for _, r := range rules {
		if r.pregnant != pregnant {
			continue
		}
		if r.label != "" && r.label != label {
			continue
		}
		p := r.plan
		p.Examples = append([]string(nil), r.plan.Examples...)
		return p
	}
	return Plan{}
}
