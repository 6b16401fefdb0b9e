package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-canvas/internal/service"
)

// SessionHandler emite sesiones de visitantes anonimos.
type SessionHandler struct {
	logger *zap.Logger
	jwtSvc *service.JWTService
}

func NewSessionHandler(logger *zap.Logger, jwtSvc *service.JWTService) *SessionHandler {
	return &SessionHandler{logger: logger, jwtSvc: jwtSvc}
}

// CreateSession maneja POST /session.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	if !h.jwtSvc.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sessions not configured"})
		return
	}

	visitor, pair, err := h.jwtSvc.NewVisitor()
	if err != nil {
		h.logger.Error("create visitor failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"visitor": visitor,
		"tokens":  pair,
	})
}

// RefreshSession maneja POST /session/refresh.
func (h *SessionHandler) RefreshSession(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid refresh request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.jwtSvc.RefreshPair(req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrJWTExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": pair})
}
