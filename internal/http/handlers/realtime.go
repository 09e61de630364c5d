package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/realtime"
)

type RealtimeHandler struct {
	log      *logger.Logger
	hub      *realtime.Hub
	appCtx   context.Context
	upgrader websocket.Upgrader
}

// NewRealtimeHandler upgrades /ws requests onto hub. Connections end when appCtx is
// cancelled. An empty origins list accepts any origin.
func NewRealtimeHandler(appCtx context.Context, baseLog *logger.Logger, hub *realtime.Hub, origins []string) *RealtimeHandler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return &RealtimeHandler{
		log:    baseLog.With("handler", "RealtimeHandler"),
		hub:    hub,
		appCtx: appCtx,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowed) == 0 || allowed["*"] || allowed[origin]
			},
		},
	}
}

// GET /ws
func (h *RealtimeHandler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.log.Warn("ws upgrade failed", "error", err, "origin", c.GetHeader("Origin"))
		return
	}
	h.hub.Serve(h.appCtx, conn)
}
