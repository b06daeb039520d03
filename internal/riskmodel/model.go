// Package riskmodel classifies a week of logged intake into a coarse
// LOW/MEDIUM/HIGH nutrition risk label using a multinomial logistic
// regression exported as JSON.
package riskmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Label is a coarse risk class.
type Label string

const (
	LabelLow     Label = "LOW"
	LabelMedium  Label = "MEDIUM"
	LabelHigh    Label = "HIGH"
	LabelUnknown Label = "UNKNOWN"
)

// ErrInvalidModel is returned when a model artifact has inconsistent shapes.
var ErrInvalidModel = errors.New("invalid risk model")

const featureCount = 4

// Features are the seven-day intake averages the model was trained on.
type Features struct {
	AvgIron     float64 `json:"avg_iron"`
	AvgCalcium  float64 `json:"avg_calcium"`
	AvgProtein  float64 `json:"avg_protein"`
	Consistency float64 `json:"consistency"`
}

func (f Features) vector() [featureCount]float64 {
	return [featureCount]float64{f.AvgIron, f.AvgCalcium, f.AvgProtein, f.Consistency}
}

// Prediction is the most probable class and its probability, rounded to
// two decimals.
type Prediction struct {
	RiskLevel  Label   `json:"risk_level"`
	Confidence float64 `json:"confidence"`
}

// Unavailable is returned when no model is loaded.
var Unavailable = Prediction{RiskLevel: LabelUnknown, Confidence: 0}

// Predictor is satisfied by *Model. A nil *Model predicts Unavailable.
type Predictor interface {
	Predict(Features) Prediction
}

// Model holds logistic regression weights, one coefficient row per class.
// A two-class model may carry a single row for the positive (second) class.
type Model struct {
	Classes      []Label     `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// Load reads a model artifact from path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read risk model: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a model artifact.
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode risk model: %w", err)
	}
	if err := m.check(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Model) check() error {
	if len(m.Classes) < 2 {
		return fmt.Errorf("%w: need at least two classes, got %d", ErrInvalidModel, len(m.Classes))
	}
	rows := len(m.Classes)
	if rows == 2 && len(m.Coefficients) == 1 {
		rows = 1
	}
	if len(m.Coefficients) != rows || len(m.Intercepts) != rows {
		return fmt.Errorf("%w: %d classes with %d coefficient rows and %d intercepts",
			ErrInvalidModel, len(m.Classes), len(m.Coefficients), len(m.Intercepts))
	}
	for i, row := range m.Coefficients {
		if len(row) != featureCount {
			return fmt.Errorf("%w: coefficient row %d has %d weights, want %d", ErrInvalidModel, i, len(row), featureCount)
		}
	}
	return nil
}

// Predict returns the argmax class of the softmax over class scores.
func (m *Model) Predict(f Features) Prediction {
	if m == nil {
		return Unavailable
	}
	probs := m.probabilities(f.vector())
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return Prediction{
		RiskLevel:  m.Classes[best],
		Confidence: math.Round(probs[best]*100) / 100,
	}
}

func (m *Model) probabilities(x [featureCount]float64) []float64 {
	scores := make([]float64, len(m.Coefficients))
	for i, row := range m.Coefficients {
		s := m.Intercepts[i]
		for j, w := range row {
			s += w * x[j]
		}
		scores[i] = s
	}

	if len(scores) == 1 {
		p := 1 / (1 + math.Exp(-scores[0]))
		return []float64{1 - p, p}
	}

	peak := scores[0]
	for _, s := range scores[1:] {
		peak = math.Max(peak, s)
	}
	var sum float64
	for i, s := range scores {
		scores[i] = math.Exp(s - peak)
		sum += scores[i]
	}
	for i := range scores {
		scores[i] /= sum
	}
	return scores
}
