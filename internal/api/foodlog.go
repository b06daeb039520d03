package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/nutririsk/internal/auth"
	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/exercise"
	"github.com/Skufu/nutririsk/internal/foodlog"
	"github.com/Skufu/nutririsk/internal/riskmodel"
)

// FoodStore is the food log persistence used by the per-user routes.
// *foodlog.Store implements it.
type FoodStore interface {
	ListFoodItems(ctx context.Context) ([]foodlog.FoodItem, error)
	GetFoodItem(ctx context.Context, id int64) (foodlog.FoodItem, error)
	CreateFoodItem(ctx context.Context, f foodlog.FoodItem) (foodlog.FoodItem, error)
	UpdateFoodItem(ctx context.Context, f foodlog.FoodItem) (foodlog.FoodItem, error)
	DeleteFoodItem(ctx context.Context, id int64) error

	ListEntries(ctx context.Context, userID string) ([]foodlog.Entry, error)
	GetEntry(ctx context.Context, userID string, id int64) (foodlog.Entry, error)
	CreateEntry(ctx context.Context, userID string, e foodlog.Entry) (foodlog.Entry, error)
	DeleteEntry(ctx context.Context, userID string, id int64) error

	Daily(ctx context.Context, userID string) (foodlog.DaySummary, error)
	Weekly(ctx context.Context, userID string) ([]foodlog.DaySummary, error)
	Deficiency(ctx context.Context, userID, lifeStage, state string) (foodlog.DeficiencyReport, error)
	Regional(ctx context.Context, userID, state string) (foodlog.RegionalRecommendations, error)
	Features(ctx context.Context, userID string) (riskmodel.Features, error)
}

var errStorageDisabled = errors.New("food log storage is not configured")

func (h *handler) requireStore(c *gin.Context) {
	if h.foods == nil {
		respondError(c, http.StatusServiceUnavailable, codeStorageDisabled, errStorageDisabled)
		return
	}
	c.Next()
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidPayload, errors.New("id must be a positive integer"))
		return 0, false
	}
	return id, true
}

func (h *handler) listFoodItems(c *gin.Context) {
	items, err := h.foods.ListFoodItems(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handler) getFoodItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.foods.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handler) createFoodItem(c *gin.Context) {
	var item foodlog.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondBindError(c, err)
		return
	}
	item.ID = 0
	created, err := h.foods.CreateFoodItem(c.Request.Context(), item)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) updateFoodItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var item foodlog.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondBindError(c, err)
		return
	}
	item.ID = id
	updated, err := h.foods.UpdateFoodItem(c.Request.Context(), item)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handler) deleteFoodItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.foods.DeleteFoodItem(c.Request.Context(), id); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) listEntries(c *gin.Context) {
	entries, err := h.foods.ListEntries(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *handler) getEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := h.foods.GetEntry(c.Request.Context(), auth.UserID(c), id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *handler) createEntry(c *gin.Context) {
	var entry foodlog.Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.foods.CreateEntry(c.Request.Context(), auth.UserID(c), entry)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) deleteEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.foods.DeleteEntry(c.Request.Context(), auth.UserID(c), id); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) dailySummary(c *gin.Context) {
	day, err := h.foods.Daily(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *handler) weeklySummary(c *gin.Context) {
	week, err := h.foods.Weekly(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

func (h *handler) deficiency(c *gin.Context) {
	ctx := c.Request.Context()
	report, err := h.foods.Deficiency(ctx, auth.UserID(c), c.Query("life_stage"), c.Query("state"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	report.AIExplanation = h.explainer.Deficiency(ctx, report)
	c.JSON(http.StatusOK, report)
}

func (h *handler) regional(c *gin.Context) {
	recs, err := h.foods.Regional(c.Request.Context(), auth.UserID(c), c.Query("state"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *handler) predict(f riskmodel.Features) riskmodel.Prediction {
	if h.model == nil {
		return riskmodel.Unavailable
	}
	return h.model.Predict(f)
}

// features loads the classifier features, answering 400 when the user has
// not logged anything recently.
func (h *handler) features(c *gin.Context, purpose string) (riskmodel.Features, bool) {
	f, err := h.foods.Features(c.Request.Context(), auth.UserID(c))
	if errors.Is(err, foodlog.ErrNotEnoughData) {
		respondError(c, http.StatusBadRequest, codeNotEnoughData, errors.New("not enough data for "+purpose))
		return f, false
	}
	if err != nil {
		h.respondStoreError(c, err)
		return f, false
	}
	return f, true
}

func (h *handler) risk(c *gin.Context) {
	f, ok := h.features(c, "risk prediction")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"features": f, "prediction": h.predict(f)})
}

type exerciseResponse struct {
	LifeStage     benchmark.LifeStage `json:"life_stage"`
	RiskLevel     riskmodel.Label     `json:"risk_level"`
	Confidence    float64             `json:"confidence"`
	Plan          exercise.Plan       `json:"exercise_plan"`
	AIExplanation string              `json:"ai_explanation"`
	Disclaimer    string              `json:"disclaimer"`
}

func (h *handler) exercise(c *gin.Context) {
	f, ok := h.features(c, "exercise recommendation")
	if !ok {
		return
	}
	stage, _ := benchmark.TargetFor(c.Query("life_stage"))
	pred := h.predict(f)
	plan := exercise.For(stage, pred.RiskLevel)
	c.JSON(http.StatusOK, exerciseResponse{
		LifeStage:     stage,
		RiskLevel:     pred.RiskLevel,
		Confidence:    pred.Confidence,
		Plan:          plan,
		AIExplanation: h.explainer.Exercise(c.Request.Context(), string(stage), string(pred.RiskLevel), c.Query("state"), plan),
		Disclaimer:    exercise.Disclaimer,
	})
}
