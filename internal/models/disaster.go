package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Disaster is a user-submitted incident report.
type Disaster struct {
	ID           string         `gorm:"primaryKey;type:uuid" json:"id"`
	Title        string         `gorm:"not null;index" json:"title"`
	LocationName string         `json:"location_name"`
	Description  string         `json:"description"`
	Tags         datatypes.JSON `gorm:"type:json" json:"tags"`
	OwnerID      string         `gorm:"index" json:"owner_id"`
	AuditTrail   datatypes.JSON `gorm:"type:json" json:"audit_trail"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// AuditRecord is one entry in a disaster's append-only audit trail.
type AuditRecord struct {
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// BeforeCreate ensures UUID identifiers are generated automatically.
func (d *Disaster) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
