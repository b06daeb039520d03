package riskmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeClassModel = `{
	"classes": ["LOW", "MEDIUM", "HIGH"],
	"coefficients": [
		[0.2, 0.001, 0.05, 2.0],
		[0.0, 0.0, 0.0, 0.0],
		[-0.2, -0.001, -0.05, -2.0]
	],
	"intercepts": [-5.0, 0.0, 5.0]
}`

func TestParseRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"one class":       `{"classes":["LOW"],"coefficients":[[1,1,1,1]],"intercepts":[0]}`,
		"missing rows":    `{"classes":["LOW","MEDIUM","HIGH"],"coefficients":[[1,1,1,1]],"intercepts":[0]}`,
		"short row":       `{"classes":["LOW","HIGH"],"coefficients":[[1,1,1]],"intercepts":[0]}`,
		"intercept count": `{"classes":["LOW","MEDIUM","HIGH"],"coefficients":[[1,1,1,1],[1,1,1,1],[1,1,1,1]],"intercepts":[0]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			require.ErrorIs(t, err, ErrInvalidModel)
		})
	}

	_, err := Parse([]byte(`{"classes":`))
	require.Error(t, err)
}

func TestPredictPicksMostProbableClass(t *testing.T) {
	m, err := Parse([]byte(threeClassModel))
	require.NoError(t, err)

	poor := m.Predict(Features{AvgIron: 2, AvgCalcium: 100, AvgProtein: 10, Consistency: 0.14})
	assert.Equal(t, LabelHigh, poor.RiskLevel)
	assert.Greater(t, poor.Confidence, 0.5)
	assert.LessOrEqual(t, poor.Confidence, 1.0)

	good := m.Predict(Features{AvgIron: 20, AvgCalcium: 1100, AvgProtein: 60, Consistency: 1})
	assert.Equal(t, LabelLow, good.RiskLevel)
}

func TestPredictZeroWeightsIsUniform(t *testing.T) {
	m, err := Parse([]byte(`{"classes":["LOW","MEDIUM","HIGH"],"coefficients":[[0,0,0,0],[0,0,0,0],[0,0,0,0]],"intercepts":[0,0,0]}`))
	require.NoError(t, err)

	p := m.Predict(Features{AvgIron: 10})
	assert.Equal(t, LabelLow, p.RiskLevel, "ties resolve to the first class")
	assert.Equal(t, 0.33, p.Confidence)
}

func TestPredictBinaryModel(t *testing.T) {
	m, err := Parse([]byte(`{"classes":["LOW","HIGH"],"coefficients":[[0,0,0,0]],"intercepts":[2.0]}`))
	require.NoError(t, err)

	p := m.Predict(Features{})
	assert.Equal(t, LabelHigh, p.RiskLevel)
	assert.Equal(t, 0.88, p.Confidence)
}

func TestNilModelIsUnavailable(t *testing.T) {
	var m *Model
	assert.Equal(t, Unavailable, m.Predict(Features{AvgIron: 5}))

	var p Predictor = m
	assert.Equal(t, LabelUnknown, p.Predict(Features{}).RiskLevel)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(threeClassModel), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Label{LabelLow, LabelMedium, LabelHigh}, m.Classes)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
