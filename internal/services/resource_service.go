package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/openrelief/disasterhub/internal/models"
)

// defaultResourceRadiusKm is the fixed search radius forwarded to the
// geospatial stored procedure.
const defaultResourceRadiusKm = 10.0

// ResourceService forwards proximity lookups to the database's
// get_resources_within_distance stored procedure.
type ResourceService struct {
	db *gorm.DB
}

// NewResourceService constructs a ResourceService.
func NewResourceService(db *gorm.DB) (*ResourceService, error) {
	if db == nil {
		return nil, errors.New("resource service: db is required")
	}
	return &ResourceService{db: db}, nil
}

// Nearby returns resources within the fixed radius of the supplied point.
// The query is a straight passthrough; ordering and columns come from the
// stored procedure.
func (s *ResourceService) Nearby(ctx context.Context, lat, lon float64) ([]models.ResourceRow, error) {
	ctx = ensureContext(ctx)

	rows := make([]models.ResourceRow, 0)
	err := s.db.WithContext(ctx).
		Raw("SELECT * FROM get_resources_within_distance(?, ?, ?)", lat, lon, defaultResourceRadiusKm).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("resource service: nearby lookup: %w", err)
	}

	return rows, nil
}
