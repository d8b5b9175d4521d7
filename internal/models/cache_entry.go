package models

import (
	"time"
)

// CacheEntry represents a cached payload persisted in the shared database.
// The key is the full request URL of the originating HTTP request.
type CacheEntry struct {
	Key       string    `gorm:"primaryKey;size:512"`
	Value     []byte    `gorm:"type:blob"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
