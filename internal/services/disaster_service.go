package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/openrelief/disasterhub/internal/models"
	"github.com/openrelief/disasterhub/internal/realtime"
	"github.com/openrelief/disasterhub/pkg/metrics"
)

// CreateDisasterInput defines attributes required to persist a disaster report.
type CreateDisasterInput struct {
	Title        string
	LocationName string
	Description  string
	Tags         []string
	OwnerID      string
}

// DisasterService persists disaster reports and notifies realtime subscribers.
type DisasterService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

// NewDisasterService constructs a DisasterService. The hub may be nil, in
// which case created disasters are not broadcast.
func NewDisasterService(db *gorm.DB, hub *realtime.Hub) (*DisasterService, error) {
	if db == nil {
		return nil, errors.New("disaster service: db is required")
	}
	return &DisasterService{db: db, hub: hub}, nil
}

// Create inserts a disaster report, seeds its audit trail with a single
// create record for the owner, and broadcasts the inserted row.
func (s *DisasterService) Create(ctx context.Context, input CreateDisasterInput) (*models.Disaster, error) {
	ctx = ensureContext(ctx)

	now := time.Now().UTC()
	trail, err := json.Marshal([]models.AuditRecord{{
		Action:    "create",
		UserID:    input.OwnerID,
		Timestamp: now,
	}})
	if err != nil {
		return nil, fmt.Errorf("disaster service: encode audit trail: %w", err)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	encodedTags, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("disaster service: encode tags: %w", err)
	}

	row := models.Disaster{
		Title:        strings.TrimSpace(input.Title),
		LocationName: strings.TrimSpace(input.LocationName),
		Description:  input.Description,
		Tags:         datatypes.JSON(encodedTags),
		OwnerID:      strings.TrimSpace(input.OwnerID),
		AuditTrail:   datatypes.JSON(trail),
		CreatedAt:    now,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("disaster service: insert disaster: %w", err)
	}

	metrics.DisastersCreated.Inc()

	if s.hub != nil {
		s.hub.Broadcast(realtime.EventDisasterUpdated, row)
	}

	return &row, nil
}

// List returns all disasters, newest first. When tag is non-empty only rows
// whose tags array contains it are returned.
func (s *DisasterService) List(ctx context.Context, tag string) ([]models.Disaster, error) {
	ctx = ensureContext(ctx)

	query := s.db.WithContext(ctx).Model(&models.Disaster{}).Order("created_at DESC")

	if tag = strings.TrimSpace(tag); tag != "" {
		query = query.Where(datatypes.JSONArrayQuery("tags").Contains(tag))
	}

	rows := make([]models.Disaster, 0)
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("disaster service: list disasters: %w", err)
	}

	return rows, nil
}

func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
