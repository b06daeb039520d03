package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/nutririsk/internal/assessment"
	"github.com/Skufu/nutririsk/internal/benchmark"
)

type explainedResult struct {
	*assessment.Result
	AIExplanation string `json:"ai_explanation"`
}

func (h *handler) assess(c *gin.Context) {
	var raw assessment.RawInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondBindError(c, err)
		return
	}
	if err := assessment.Validate(raw); err != nil {
		var verr *assessment.ValidationError
		if errors.As(err, &verr) {
			respondValidation(c, verr)
			return
		}
		respondError(c, http.StatusBadRequest, codeInvalidPayload, err)
		return
	}

	ctx := c.Request.Context()
	in := assessment.Normalize(raw)

	res, hit, err := h.cache.Get(ctx, in)
	if err != nil {
		h.log.Warn("cache read failed", "error", err)
	}
	if !hit {
		res, err = assessment.Evaluate(in)
		if err != nil {
			h.log.Error("assessment failed", "error", err, "request_id", c.GetString(requestIDKey))
			respondError(c, http.StatusInternalServerError, codeInternal, assessment.ErrInternal)
			return
		}
		if err := h.cache.Put(ctx, in, res); err != nil {
			h.log.Warn("cache write failed", "error", err)
		}
	}
	if h.cache != nil {
		state := "miss"
		if hit {
			state = "hit"
		}
		c.Header("X-Cache", state)
	}

	if c.Query("explain") == "true" {
		c.JSON(http.StatusOK, explainedResult{
			Result:        res,
			AIExplanation: h.explainer.Assessment(ctx, in, res),
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

type correlationRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
}

func (h *handler) correlateSymptoms(c *gin.Context) {
	var req correlationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	correlations := benchmark.CorrelateSymptoms(req.Symptoms)
	if correlations == nil {
		correlations = []benchmark.Correlation{}
	}
	c.JSON(http.StatusOK, gin.H{"correlations": correlations})
}
