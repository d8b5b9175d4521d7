package cache

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openrelief/disasterhub/internal/models"
)

// DefaultTTL is applied to every write unless overridden.
const DefaultTTL = time.Hour

// DatabaseStore implements the cache Store interface using the primary SQL
// database. The adapter itself is stateless; all durability lives in the
// shared cache_entries table.
type DatabaseStore struct {
	db    *gorm.DB
	ttl   time.Duration
	clock clockwork.Clock
}

// Option customises a DatabaseStore.
type Option func(*DatabaseStore)

// WithTTL overrides the write TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *DatabaseStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock injects a clock, used by tests to control expiry.
func WithClock(clock clockwork.Clock) Option {
	return func(s *DatabaseStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewDatabaseStore constructs a database-backed Store.
func NewDatabaseStore(db *gorm.DB, opts ...Option) *DatabaseStore {
	if db == nil {
		return nil
	}

	store := &DatabaseStore{
		db:    db,
		ttl:   DefaultTTL,
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Get retrieves an entry by key. Expired entries are returned with their
// recorded expiry so callers can decide staleness; a missing row yields
// found == false with a nil error. Store failures are surfaced.
func (s *DatabaseStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	if s == nil {
		return Entry{}, false, errors.New("cache: database store not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var row models.CacheEntry
	err := s.db.WithContext(ctx).Take(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}

	return Entry{Value: row.Value, ExpiresAt: row.ExpiresAt}, true, nil
}

// Set upserts the value for a given key with expiry now + TTL. Repeated
// writes for the same key are last-writer-wins.
func (s *DatabaseStore) Set(ctx context.Context, key string, value []byte) error {
	if s == nil {
		return errors.New("cache: database store not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	now := s.clock.Now()
	row := models.CacheEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
		}).Create(&row).Error
}

// Delete removes keys from the store.
func (s *DatabaseStore) Delete(ctx context.Context, keys ...string) error {
	if s == nil {
		return errors.New("cache: database store not initialised")
	}
	if len(keys) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return s.db.WithContext(ctx).Where("key IN ?", keys).Delete(&models.CacheEntry{}).Error
}
