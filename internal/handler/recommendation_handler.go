package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diulabs/admission-api/internal/service"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
	"github.com/diulabs/admission-api/pkg/response"
)

// RecommendationHandler exposes the department recommender.
type RecommendationHandler struct {
	recommendations *service.RecommendationService
	metrics         *service.MetricsService
}

// NewRecommendationHandler constructs RecommendationHandler.
func NewRecommendationHandler(recommendations *service.RecommendationService, metrics *service.MetricsService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations, metrics: metrics}
}

// Recommend godoc
// @Summary Recommend departments from interests
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param payload body service.RecommendationRequest true "Recommendation query"
// @Success 200 {object} response.Envelope
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req service.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	start := time.Now()
	recommendations, err := h.recommendations.Recommend(c.Request.Context(), req)
	h.metrics.ObserveEngineEvaluation("recommendation", time.Since(start))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, recommendations, nil)
}
