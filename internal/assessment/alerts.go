package assessment

import (
	"sort"
	"strconv"

	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/nutrient"
)

// Alert flags a nutrient at moderate or higher risk.
type Alert struct {
	Type     string            `json:"type"`
	Nutrient nutrient.Nutrient `json:"nutrient"`
	Message  string            `json:"message"`
	Action   string            `json:"action"`
	Priority int               `json:"priority"`
}

var alertLabels = map[benchmark.RiskLevel]string{
	benchmark.RiskCritical: "🚨 Critical Alert",
	benchmark.RiskHigh:     "🔴 High Alert",
	benchmark.RiskModerate: "⚠️ Moderate Alert",
}

var alertAdjectives = map[benchmark.RiskLevel]string{
	benchmark.RiskCritical: "Critical",
	benchmark.RiskHigh:     "High",
	benchmark.RiskModerate: "Moderate",
}

func generateAlerts(records []RiskRecord) []Alert {
	alerts := make([]Alert, 0, len(records))
	for _, r := range records {
		if !r.RiskLevel.AtRisk() {
			continue
		}
		var action string
		switch r.RiskLevel {
		case benchmark.RiskCritical:
			action = "Recommend: " + benchmark.RecommendedTest(r.Nutrient).Primary
		case benchmark.RiskHigh:
			action = "Consider: " + benchmark.RecommendedTest(r.Nutrient).Primary
		default:
			action = "Dietary modification recommended"
		}
		msg := alertAdjectives[r.RiskLevel] + " " + r.Nutrient.String() +
			" deficiency risk (" + strconv.FormatFloat(r.ProbabilityPercent, 'f', -1, 64) + "%)"
		alerts = append(alerts, Alert{
			Type:     alertLabels[r.RiskLevel],
			Nutrient: r.Nutrient,
			Message:  msg,
			Action:   action,
			Priority: r.RiskLevel.Priority(),
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool { return alerts[i].Priority < alerts[j].Priority })
	return alerts
}
