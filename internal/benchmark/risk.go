package benchmark

// RiskLevel is the discrete band a deficiency probability falls into.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ClassifyRisk bands a probability in percent: low <=30, moderate <=60,
// high <=80, critical above that.
func ClassifyRisk(probability float64) RiskLevel {
	switch {
	case probability <= 30:
		return RiskLow
	case probability <= 60:
		return RiskModerate
	case probability <= 80:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// AtRisk reports whether l warrants an alert and dietary recommendations.
func (l RiskLevel) AtRisk() bool {
	return l == RiskModerate || l == RiskHigh || l == RiskCritical
}

// Priority orders alerts: 1 critical, 2 high, 3 moderate. Low has no alert
// and returns 0.
func (l RiskLevel) Priority() int {
	switch l {
	case RiskCritical:
		return 1
	case RiskHigh:
		return 2
	case RiskModerate:
		return 3
	default:
		return 0
	}
}
