package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/nutririsk/internal/auth"
	"github.com/Skufu/nutririsk/internal/explain"
	"github.com/Skufu/nutririsk/internal/foodlog"
	"github.com/Skufu/nutririsk/internal/riskmodel"
)

// fakeStore implements the routes under test; anything else panics through
// the embedded nil interface.
type fakeStore struct {
	FoodStore
	items    map[int64]foodlog.FoodItem
	entries  []foodlog.Entry
	features map[string]riskmodel.Features
	report   foodlog.DeficiencyReport
	stage    string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:    map[int64]foodlog.FoodItem{1: {ID: 1, Name: "Spinach", Iron: 2.7, Calcium: 99, Protein: 2.9, Region: "Kerala"}},
		features: map[string]riskmodel.Features{},
	}
}

func (f *fakeStore) GetFoodItem(ctx context.Context, id int64) (foodlog.FoodItem, error) {
	item, ok := f.items[id]
	if !ok {
		return foodlog.FoodItem{}, fmt.Errorf("food item %d: %w", id, foodlog.ErrNotFound)
	}
	return item, nil
}

func (f *fakeStore) CreateFoodItem(ctx context.Context, item foodlog.FoodItem) (foodlog.FoodItem, error) {
	item.ID = int64(len(f.items) + 1)
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeStore) CreateEntry(ctx context.Context, userID string, e foodlog.Entry) (foodlog.Entry, error) {
	if _, err := f.GetFoodItem(ctx, e.FoodID); err != nil {
		return foodlog.Entry{}, err
	}
	e.ID = int64(len(f.entries) + 1)
	e.UserID = userID
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeStore) ListEntries(ctx context.Context, userID string) ([]foodlog.Entry, error) {
	out := []foodlog.Entry{}
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) Features(ctx context.Context, userID string) (riskmodel.Features, error) {
	feat, ok := f.features[userID]
	if !ok {
		return riskmodel.Features{}, foodlog.ErrNotEnoughData
	}
	return feat, nil
}

func (f *fakeStore) Deficiency(ctx context.Context, userID, lifeStage, state string) (foodlog.DeficiencyReport, error) {
	f.stage = lifeStage
	r := f.report
	r.Region = state
	return r, nil
}

type fixedModel struct {
	pred riskmodel.Prediction
}

func (m fixedModel) Predict(riskmodel.Features) riskmodel.Prediction { return m.pred }

func do(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFoodRoutesWithoutStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Deps{})

	w := do(router, http.MethodGet, "/api/v1/food-items", "", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), codeStorageDisabled)
}

func TestFoodRoutesRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := auth.New("s3cret", nil)
	router := NewRouter(Deps{Foods: newFakeStore(), Auth: a})

	w := do(router, http.MethodGet, "/api/v1/food-logs", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := a.Issue("alice", time.Hour)
	require.NoError(t, err)
	w = do(router, http.MethodGet, "/api/v1/food-logs", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestFoodLogsAreUserScoped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := auth.New("s3cret", nil)
	store := newFakeStore()
	router := NewRouter(Deps{Foods: store, Auth: a})

	alice, err := a.Issue("alice", time.Hour)
	require.NoError(t, err)
	bob, err := a.Issue("bob", time.Hour)
	require.NoError(t, err)

	w := do(router, http.MethodPost, "/api/v1/food-logs", `{"food_id": 1, "quantity": 150, "user_id": "bob"}`, alice)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created foodlog.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "alice", created.UserID)

	w = do(router, http.MethodGet, "/api/v1/food-logs", "", bob)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateEntryErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Deps{Foods: newFakeStore()})

	w := do(router, http.MethodPost, "/api/v1/food-logs", `{"food_id": 42, "quantity": 100}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/api/v1/food-logs", `{"food_id": 1, "quantity": 0}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodItemRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Deps{Foods: newFakeStore()})

	w := do(router, http.MethodPost, "/api/v1/food-items", `{"name": "Ragi", "iron": 3.9, "calcium": 344, "protein": 7.3, "region": "Karnataka"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":2`)

	w = do(router, http.MethodPost, "/api/v1/food-items", `{"iron": 1}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/api/v1/food-items/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Spinach"`)

	w = do(router, http.MethodGet, "/api/v1/food-items/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/api/v1/food-items/99", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"not_found"`)
}

func TestRiskWithoutLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Deps{Foods: newFakeStore()})

	w := do(router, http.MethodGet, "/api/v1/risk", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"not_enough_data","message":"not enough data for risk prediction"}`, w.Body.String())
}

func TestRiskWithoutModel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFakeStore()
	store.features[auth.LocalUser] = riskmodel.Features{AvgIron: 4, AvgCalcium: 300, AvgProtein: 20, Consistency: 0.43}
	router := NewRouter(Deps{Foods: store})

	w := do(router, http.MethodGet, "/api/v1/risk", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"features": {"avg_iron": 4, "avg_calcium": 300, "avg_protein": 20, "consistency": 0.43},
		"prediction": {"risk_level": "UNKNOWN", "confidence": 0}
	}`, w.Body.String())
}

func TestExercisePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFakeStore()
	store.features[auth.LocalUser] = riskmodel.Features{AvgIron: 4}
	router := NewRouter(Deps{
		Foods:     store,
		Model:     fixedModel{pred: riskmodel.Prediction{RiskLevel: riskmodel.LabelHigh, Confidence: 0.81}},
		Explainer: explain.New(stubGenerator{reply: "Go gently."}, nil),
	})

	w := do(router, http.MethodGet, "/api/v1/exercise?life_stage=pregnant&state=Kerala", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body exerciseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pregnant", string(body.LifeStage))
	assert.Equal(t, riskmodel.LabelHigh, body.RiskLevel)
	assert.Equal(t, 0.81, body.Confidence)
	assert.Equal(t, "Light activity", body.Plan.Type)
	assert.Equal(t, "Go gently.", body.AIExplanation)
	assert.NotEmpty(t, body.Disclaimer)
}

func TestDeficiencyAddsExplanation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFakeStore()
	store.report = foodlog.DeficiencyReport{
		LifeStage:  "lactating",
		Status:     foodlog.Levels{Iron: foodlog.StatusLow, Calcium: foodlog.StatusLow, Protein: foodlog.StatusAdequate},
		Disclaimer: foodlog.DeficiencyDisclaimer,
	}
	router := NewRouter(Deps{Foods: store})

	w := do(router, http.MethodGet, "/api/v1/deficiency?life_stage=lactating&state=Goa", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lactating", store.stage)

	var body foodlog.DeficiencyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Goa", body.Region)
	assert.Equal(t, explain.Fallback, body.AIExplanation)
	assert.Equal(t, foodlog.DeficiencyDisclaimer, body.Disclaimer)
}
