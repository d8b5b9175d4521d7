package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openrelief/disasterhub/internal/services"
	apperrors "github.com/openrelief/disasterhub/pkg/errors"
	"github.com/openrelief/disasterhub/pkg/response"
)

// ResourceHandler forwards proximity lookups to the resource service.
type ResourceHandler struct {
	svc *services.ResourceService
}

// NewResourceHandler constructs the handler.
func NewResourceHandler(svc *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// Nearby returns resources near the supplied lat/lon. The :id path segment
// is accepted but not consulted; the lookup is purely geographic.
func (h *ResourceHandler) Nearby(c *gin.Context) {
	lat, ok := parseFloatQuery(c, "lat")
	if !ok {
		return
	}
	lon, ok := parseFloatQuery(c, "lon")
	if !ok {
		return
	}

	rows, err := h.svc.Nearby(c.Request.Context(), lat, lon)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

func parseFloatQuery(c *gin.Context, key string) (float64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		response.Error(c, apperrors.NewBadRequest(key+" is required"))
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.Error(c, apperrors.NewBadRequest(key+" must be a number"))
		return 0, false
	}

	return value, true
}
