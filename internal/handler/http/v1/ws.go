package v1

import (
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// @Summary Subscribe to incident events
// @Description Upgrade to WebSocket and receive newHelpRequest/requestUpdated events. Requires API key (header or api_key query parameter).
// @Tags Events
// @Security ApiKeyAuth
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	log := h.logger.WithField("method", "serveWS")

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.WithError(err).Warn("Failed to accept websocket connection")
		return
	}

	h.hub.HandleConnection(conn)
}
