package handlers

import (
	"log"
	"net/http"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub         *ws.Hub
	adminSecret string
}

func NewWSHandler(hub *ws.Hub, adminSecret string) *WSHandler {
	return &WSHandler{hub: hub, adminSecret: adminSecret}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleAdminFeed godoc
// @Summary      Admin live event feed
// @Description  WebSocket stream of registration and answer events
// @Tags         websocket
// @Param        token query string true "Admin token"
// @Router       /ws/admin [get]
func (h *WSHandler) HandleAdminFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("X-Admin-Token")
	}
	if token != h.adminSecret {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(conn)
	defer h.hub.RemoveConnection(conn)

	// Drain control frames until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
