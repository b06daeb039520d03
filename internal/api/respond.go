package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/nutririsk/internal/assessment"
	"github.com/Skufu/nutririsk/internal/foodlog"
)

const (
	codeInvalidPayload   = "invalid_payload"
	codePayloadTooLarge  = "payload_too_large"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeNotEnoughData    = "not_enough_data"
	codeStorageDisabled  = "storage_disabled"
	codeInternal         = "internal_error"
)

type errorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message,omitempty"`
	Fields  []assessment.FieldError `json:"fields,omitempty"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	body := errorResponse{Error: code}
	if err != nil {
		body.Message = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

// respondBindError maps a request decoding failure to 413 or 400.
func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(c, http.StatusRequestEntityTooLarge, codePayloadTooLarge, errors.New("request body too large"))
		return
	}
	respondError(c, http.StatusBadRequest, codeInvalidPayload, err)
}

func respondValidation(c *gin.Context, verr *assessment.ValidationError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse{
		Error:  codeValidationFailed,
		Fields: verr.Fields,
	})
}

// respondStoreError maps food log errors. Unexpected errors are logged and
// hidden from the client.
func (h *handler) respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, foodlog.ErrNotFound):
		respondError(c, http.StatusNotFound, codeNotFound, err)
	case errors.Is(err, foodlog.ErrNotEnoughData):
		respondError(c, http.StatusBadRequest, codeNotEnoughData, err)
	case errors.Is(err, foodlog.ErrInvalidEntry):
		respondError(c, http.StatusBadRequest, codeInvalidPayload, err)
	default:
		h.log.Error("food log operation failed", "error", err, "path", c.FullPath(), "request_id", c.GetString(requestIDKey))
		respondError(c, http.StatusInternalServerError, codeInternal, errors.New("internal error"))
	}
}
