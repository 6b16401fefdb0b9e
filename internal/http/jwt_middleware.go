package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"emotion-canvas/internal/service"
)

const visitorIDKey = "visitor_id"

// VisitorMiddleware identifica al visitante si trae un access token. Sin
// header el pedido sigue como anonimo; un token invalido corta con 401.
// Los navegadores no pueden mandar headers en el upgrade de websocket, asi
// que tambien se acepta ?access_token=.
func VisitorMiddleware(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			if qt := strings.TrimSpace(c.Query("access_token")); qt != "" {
				header = "Bearer " + qt
			}
		}
		if header == "" {
			c.Next()
			return
		}
		if !jwtSvc.Enabled() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sessions not configured"})
			c.Abort()
			return
		}
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := jwtSvc.ParseAccessToken(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, service.ErrJWTExpired) {
				msg = "token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set(visitorIDKey, claims.VisitorID)
		c.Next()
	}
}

// GetVisitorID devuelve el visitante autenticado o "" si es anonimo.
func GetVisitorID(c *gin.Context) string {
	val, ok := c.Get(visitorIDKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
