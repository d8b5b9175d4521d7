package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/openrelief/disasterhub/internal/cache"
	"github.com/openrelief/disasterhub/internal/scraper"
	apperrors "github.com/openrelief/disasterhub/pkg/errors"
	"github.com/openrelief/disasterhub/pkg/logger"
	"github.com/openrelief/disasterhub/pkg/metrics"
)

// Fetcher obtains official updates from the upstream page.
type Fetcher interface {
	Fetch(ctx context.Context) ([]scraper.UpdateRecord, error)
}

// UpdateService serves official updates through a persistent read-through
// cache. Cache keys are full request URLs; two requests differing only in
// query string are distinct entries, an accepted simplification.
type UpdateService struct {
	store   cache.Store
	fetcher Fetcher
	clock   clockwork.Clock
	log     *zap.Logger
}

// NewUpdateService constructs an UpdateService.
func NewUpdateService(store cache.Store, fetcher Fetcher) (*UpdateService, error) {
	if store == nil {
		return nil, errors.New("update service: cache store is required")
	}
	if fetcher == nil {
		return nil, errors.New("update service: fetcher is required")
	}
	return &UpdateService{
		store:   store,
		fetcher: fetcher,
		clock:   clockwork.NewRealClock(),
		log:     logger.WithModule("official-updates"),
	}, nil
}

// WithClock replaces the service clock; used by tests to control expiry.
func (s *UpdateService) WithClock(clock clockwork.Clock) *UpdateService {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// Get returns the official updates for the supplied cache key.
//
// A fresh cache entry is served as-is, so hit and miss responses for the
// same upstream content are byte-identical. On miss (or expiry) the upstream
// is fetched, the result stored under the key, and the stored payload
// returned. Fetch failures surface as ErrScrapeFailed and leave any stale
// entry in place for the next attempt.
func (s *UpdateService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	ctx = ensureContext(ctx)

	entry, found, err := s.store.Get(ctx, key)
	if err != nil {
		// Surface cache outages rather than masking them with fetches.
		metrics.ScrapeCacheResults.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("update service: cache lookup: %w", err)
	}

	if found && entry.Fresh(s.clock.Now()) {
		metrics.ScrapeCacheResults.WithLabelValues("hit").Inc()
		return json.RawMessage(entry.Value), nil
	}

	updates, err := s.fetcher.Fetch(ctx)
	if err != nil {
		metrics.ScrapeCacheResults.WithLabelValues("error").Inc()
		s.log.Warn("upstream fetch failed", zap.String("key", key), zap.Error(err))
		return nil, apperrors.ErrScrapeFailed.WithInternal(err)
	}

	payload, err := json.Marshal(updates)
	if err != nil {
		return nil, fmt.Errorf("update service: encode updates: %w", err)
	}

	if err := s.store.Set(ctx, key, payload); err != nil {
		return nil, fmt.Errorf("update service: cache write: %w", err)
	}

	metrics.ScrapeCacheResults.WithLabelValues("miss").Inc()
	s.log.Info("cache refreshed", zap.String("key", key), zap.Int("updates", len(updates)))

	return payload, nil
}
