package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"go-charts-api/logger"
	"go-charts-api/model"
	"go-charts-api/repository"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownChartKey means the requested key is not in the allow-list.
	// The store is never queried for such a key.
	ErrUnknownChartKey = errors.New("unknown chart key")

	// ErrChartNotFound means the key is allowed but no record exists for it,
	// e.g. seeding has not run yet.
	ErrChartNotFound = errors.New("chart not found")
)

// uniqueViolation is the Postgres error code raised when an insert hits the
// unique index on charts.key.
const uniqueViolation = pq.ErrorCode("23505")

// ChartService resolves chart dataset keys against the record store,
// enforcing the fixed allow-list of queryable keys. Fetched datasets are
// cached since they are immutable after seeding.
type ChartService struct {
	repo        repository.IChartRepository
	cache       ICacheClient
	allowedKeys map[string]struct{}
}

// NewChartService creates a ChartService. The allow-list is a deployment
// constant passed in from configuration, not derived from the store. A nil
// cache disables caching.
func NewChartService(repo repository.IChartRepository, cache ICacheClient, allowedKeys []string) *ChartService {
	allowed := make(map[string]struct{}, len(allowedKeys))
	for _, key := range allowedKeys {
		allowed[key] = struct{}{}
	}
	return &ChartService{
		repo:        repo,
		cache:       cache,
		allowedKeys: allowed,
	}
}

// Fetch resolves a dataset key to its stored record. Keys outside the
// allow-list are rejected before any store or cache access. Both rejection
// causes surface as not-found to the caller but are logged distinctly.
func (s *ChartService) Fetch(ctx context.Context, key string) (*model.Chart, error) {
	if _, ok := s.allowedKeys[key]; !ok {
		logger.Log.WithFields(logrus.Fields{
			"chart_key": key,
			"reason":    "unknown_key",
		}).Info("Chart fetch rejected")
		return nil, ErrUnknownChartKey
	}

	cacheKey := fmt.Sprintf("chart:%s", key)

	// 1. Try to get data from the cache.
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var chart model.Chart
			if err := json.Unmarshal([]byte(cached), &chart); err == nil {
				return &chart, nil
			}
		}
	}

	// 2. Cache miss. Fetch from the store.
	chart, err := s.repo.GetByKey(key)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Log.WithFields(logrus.Fields{
				"chart_key": key,
				"reason":    "not_seeded",
			}).Warn("Chart fetch found no record for allowed key")
			return nil, ErrChartNotFound
		}
		return nil, err
	}

	// 3. Store the result for future requests. Datasets are read-only after
	// seeding, so there is no invalidation path.
	if s.cache != nil {
		if data, err := json.Marshal(chart); err == nil {
			s.cache.Set(ctx, cacheKey, data, 10*time.Minute)
		}
	}

	return chart, nil
}

// Seed populates the store with the fixed initial datasets if it holds no
// chart records yet. It is an idempotent, one-time bootstrap: a non-empty
// store skips the insert entirely, and a concurrent startup that loses the
// race to the unique index on key is treated as already seeded.
func (s *ChartService) Seed(ctx context.Context) error {
	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count existing charts: %w", err)
	}
	if count > 0 {
		logger.Log.WithField("existing_records", count).Info("Chart store already seeded, skipping")
		return nil
	}

	if err := s.repo.InsertBatch(SeedCharts()); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			logger.Log.Info("Concurrent startup seeded the chart store first, skipping")
			return nil
		}
		return fmt.Errorf("failed to insert seed charts: %w", err)
	}

	logger.Log.Info("Chart store seeded with initial datasets")
	return nil
}
