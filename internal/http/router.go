package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-canvas/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	sessionH *SessionHandler,
	studioH *StudioHandler,
	insightsH *InsightsHandler,
	streamH *StreamHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/", jsonContentTypeMiddleware())
	api.POST("/session", sessionH.CreateSession)
	api.POST("/session/refresh", sessionH.RefreshSession)

	visitor := api.Group("/", VisitorMiddleware(jwtSvc))
	visitor.GET("/styles", studioH.ListStyles)
	visitor.GET("/emotions", studioH.ListEmotions)
	visitor.POST("/analyze", studioH.Analyze)
	visitor.POST("/artworks", studioH.GenerateArtwork)
	visitor.GET("/artworks", studioH.Gallery)
	visitor.GET("/insights", insightsH.GetInsights)

	// El upgrade de websocket no debe llevar Content-Type JSON.
	r.GET("/ws/create", VisitorMiddleware(jwtSvc), streamH.Create)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
