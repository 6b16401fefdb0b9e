package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-canvas/internal/service"
)

type InsightsHandler struct {
	logger      *zap.Logger
	insightsSvc *service.InsightsService
}

func NewInsightsHandler(logger *zap.Logger, insightsSvc *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{logger: logger, insightsSvc: insightsSvc}
}

// GetInsights maneja GET /insights.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, h.insightsSvc.Insights(c.Request.Context()))
}
