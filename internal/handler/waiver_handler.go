package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diulabs/admission-api/internal/service"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
	"github.com/diulabs/admission-api/pkg/response"
)

// WaiverHandler exposes the waiver eligibility evaluator.
type WaiverHandler struct {
	waivers *service.WaiverService
	metrics *service.MetricsService
}

// NewWaiverHandler constructs WaiverHandler.
func NewWaiverHandler(waivers *service.WaiverService, metrics *service.MetricsService) *WaiverHandler {
	return &WaiverHandler{waivers: waivers, metrics: metrics}
}

// Recommend godoc
// @Summary Evaluate waiver eligibility
// @Tags Waivers
// @Accept json
// @Produce json
// @Param payload body service.WaiverEvaluationRequest true "Evaluation payload"
// @Success 200 {object} response.Envelope
// @Router /waivers/recommend [post]
func (h *WaiverHandler) Recommend(c *gin.Context) {
	var req service.WaiverEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	start := time.Now()
	waivers, err := h.waivers.Evaluate(c.Request.Context(), req)
	h.metrics.ObserveEngineEvaluation("waiver", time.Since(start))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, waivers, nil)
}
