package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openrelief/disasterhub/internal/services"
	"github.com/openrelief/disasterhub/pkg/response"
)

// DisasterHandler exposes disaster report APIs.
type DisasterHandler struct {
	svc *services.DisasterService
}

// NewDisasterHandler constructs a handler using the provided service.
func NewDisasterHandler(svc *services.DisasterService) *DisasterHandler {
	return &DisasterHandler{svc: svc}
}

type createDisasterPayload struct {
	Title        string   `json:"title" validate:"required,max=256"`
	LocationName string   `json:"location_name" validate:"max=256"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	OwnerID      string   `json:"owner_id" validate:"required"`
}

// Create inserts a disaster report and broadcasts it to realtime clients.
func (h *DisasterHandler) Create(c *gin.Context) {
	var payload createDisasterPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	row, err := h.svc.Create(c.Request.Context(), services.CreateDisasterInput{
		Title:        payload.Title,
		LocationName: payload.LocationName,
		Description:  payload.Description,
		Tags:         payload.Tags,
		OwnerID:      payload.OwnerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, row)
}

// List returns all disasters, optionally filtered by ?tag=.
func (h *DisasterHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context(), c.Query("tag"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}
