package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"emotion-canvas/internal/domain"
	"emotion-canvas/internal/service"
)

const (
	streamWriteWait = 10 * time.Second
	streamReadLimit = 16 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamEvent es el sobre de cada mensaje enviado por el websocket.
type streamEvent struct {
	Type     string                  `json:"type"`
	Analysis *service.AnalysisOutput `json:"analysis,omitempty"`
	Artwork  *domain.Artwork         `json:"artwork,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

type streamRequest struct {
	Text    string `json:"text"`
	StyleID string `json:"style_id"`
	Seed    *int   `json:"seed"`
}

// StreamHandler corre el flujo completo texto -> analisis -> obra sobre un
// websocket, enviando el analisis apenas esta listo y la obra al terminar.
type StreamHandler struct {
	logger    *zap.Logger
	studioSvc *service.StudioService
}

func NewStreamHandler(logger *zap.Logger, studioSvc *service.StudioService) *StreamHandler {
	return &StreamHandler{logger: logger, studioSvc: studioSvc}
}

// Create maneja GET /ws/create. Cada mensaje del cliente dispara una creacion.
func (h *StreamHandler) Create(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(streamReadLimit)

	ctx := c.Request.Context()
	visitorID := GetVisitorID(c)
	clientKey := c.ClientIP()

	for {
		var req streamRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		out, err := h.studioSvc.Analyze(ctx, visitorID, req.Text)
		if err != nil {
			if !h.writeError(conn, err) {
				return
			}
			continue
		}
		if !h.write(conn, streamEvent{Type: "analysis", Analysis: &out}) {
			return
		}

		artwork, err := h.studioSvc.Generate(ctx, service.GenerateInput{
			VisitorID:  visitorID,
			ClientKey:  clientKey,
			AnalysisID: out.Analysis.ID,
			StyleID:    req.StyleID,
			Seed:       req.Seed,
		})
		if err != nil {
			if !h.writeError(conn, err) {
				return
			}
			continue
		}
		if !h.write(conn, streamEvent{Type: "artwork", Artwork: &artwork}) {
			return
		}
	}
}

func (h *StreamHandler) writeError(conn *websocket.Conn, err error) bool {
	status, msg := studioErrorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("stream create failed", zap.Error(err))
	}
	return h.write(conn, streamEvent{Type: "error", Error: msg})
}

func (h *StreamHandler) write(conn *websocket.Conn, ev streamEvent) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	if err := conn.WriteJSON(ev); err != nil {
		h.logger.Warn("websocket write failed", zap.Error(err))
		return false
	}
	return true
}
