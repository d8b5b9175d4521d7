package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/openrelief/disasterhub/internal/realtime"
	apperrors "github.com/openrelief/disasterhub/pkg/errors"
	"github.com/openrelief/disasterhub/pkg/response"
)

// RealtimeHandler upgrades HTTP connections into the broadcast hub.
type RealtimeHandler struct {
	hub *realtime.Hub
}

// NewRealtimeHandler constructs a realtime handler.
func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// Stream upgrades the request to a WebSocket. Every client receives every
// disaster_updated broadcast; there are no rooms and no authentication.
func (h *RealtimeHandler) Stream(c *gin.Context) {
	if h.hub == nil {
		response.Error(c, apperrors.ErrNotFound)
		return
	}

	h.hub.Serve(c.Writer, c.Request)
}
