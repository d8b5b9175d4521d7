package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openrelief/disasterhub/internal/services"
	"github.com/openrelief/disasterhub/pkg/response"
)

// OfficialUpdateHandler serves scraped relief-agency updates through the
// persistent read-through cache.
type OfficialUpdateHandler struct {
	svc *services.UpdateService
}

// NewOfficialUpdateHandler constructs the handler.
func NewOfficialUpdateHandler(svc *services.UpdateService) *OfficialUpdateHandler {
	return &OfficialUpdateHandler{svc: svc}
}

// Get returns the official updates for this request. The cache key is the
// full request URL including query string, so requests differing only in
// query parameters occupy distinct cache rows.
func (h *OfficialUpdateHandler) Get(c *gin.Context) {
	key := c.Request.URL.RequestURI()

	payload, err := h.svc.Get(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, payload)
}
