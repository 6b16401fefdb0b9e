package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-canvas/internal/service"
)

// StudioHandler expone el analisis de texto y la generacion de obras.
type StudioHandler struct {
	logger    *zap.Logger
	studioSvc *service.StudioService
}

func NewStudioHandler(logger *zap.Logger, studioSvc *service.StudioService) *StudioHandler {
	return &StudioHandler{logger: logger, studioSvc: studioSvc}
}

// ListStyles maneja GET /styles.
func (h *StudioHandler) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"styles": service.ArtStyles()})
}

// ListEmotions maneja GET /emotions.
func (h *StudioHandler) ListEmotions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"emotions": service.EmotionProfiles()})
}

// Analyze maneja POST /analyze.
func (h *StudioHandler) Analyze(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	out, err := h.studioSvc.Analyze(c.Request.Context(), GetVisitorID(c), req.Text)
	if err != nil {
		status, msg := studioErrorStatus(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("analyze failed", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, out)
}

type generateRequest struct {
	AnalysisID string `json:"analysis_id"`
	Emotion    string `json:"emotion"`
	StyleID    string `json:"style_id"`
	Seed       *int   `json:"seed"`
}

// GenerateArtwork maneja POST /artworks. Bloquea durante el retardo simulado.
func (h *StudioHandler) GenerateArtwork(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.AnalysisID == "" && req.Emotion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis_id or emotion is required"})
		return
	}

	artwork, err := h.studioSvc.Generate(c.Request.Context(), service.GenerateInput{
		VisitorID:  GetVisitorID(c),
		ClientKey:  c.ClientIP(),
		AnalysisID: req.AnalysisID,
		Emotion:    req.Emotion,
		StyleID:    req.StyleID,
		Seed:       req.Seed,
	})
	if err != nil {
		status, msg := studioErrorStatus(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("generate artwork failed", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"artwork": artwork})
}

// Gallery maneja GET /artworks.
func (h *StudioHandler) Gallery(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	gallery, err := h.studioSvc.Gallery(c.Request.Context(), GetVisitorID(c), limit)
	if err != nil {
		h.logger.Error("gallery failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch artworks"})
		return
	}

	c.JSON(http.StatusOK, gallery)
}

// studioErrorStatus traduce errores de dominio a status HTTP y mensaje publico.
func studioErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInputTooShort):
		return http.StatusBadRequest, service.ErrInputTooShort.Error()
	case errors.Is(err, service.ErrUnknownEmotion):
		return http.StatusBadRequest, "unknown emotion"
	case errors.Is(err, service.ErrUnknownStyle):
		return http.StatusBadRequest, "unknown style"
	case errors.Is(err, service.ErrAnalysisNotFound):
		return http.StatusNotFound, "analysis not found"
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests, "too many generation requests"
	case errors.Is(err, service.ErrGenerationFailed):
		return http.StatusBadGateway, "failed to generate artwork"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, "request cancelled"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
