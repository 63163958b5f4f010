package garment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"garment-geek/core/catalog"
	"garment-geek/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const snapshotKey = "inventory"

// snapshot is an immutable loaded inventory.
type snapshot struct {
	result *LoadResult
	built  time.Time
}

// PriceRange is the price span shoppers can search within.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Service serves catalog queries from a cached inventory.
//
// The inventory is loaded from the source on first use and reloaded once it
// is older than the TTL. A zero TTL keeps it until Reload is called.
// Concurrent loads are collapsed into one. When a reload fails the previous
// inventory keeps being served and the next call tries again.
type Service struct {
	source  Source
	ttl     time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics

	mu      sync.RWMutex
	current *snapshot
	sf      singleflight.Group
	now     func() time.Time
}

// NewService creates a new catalog service. m may be nil.
func NewService(source Source, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:  source,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

func (s *Service) expired(snap *snapshot) bool {
	if s.ttl == 0 {
		return false
	}
	return s.now().Sub(snap.built) > s.ttl
}

// Inventory returns the current inventory, loading it if needed.
func (s *Service) Inventory(ctx context.Context) (*catalog.Inventory, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.result.Inventory, nil
}

func (s *Service) snapshot(ctx context.Context) (*snapshot, error) {
	s.mu.RLock()
	snap := s.current
	s.mu.RUnlock()
	if snap != nil && !s.expired(snap) {
		return snap, nil
	}

	// The load is shared by every waiter and outlives any one caller's context.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(snapshotKey, func() (interface{}, error) {
		s.mu.RLock()
		snap := s.current
		s.mu.RUnlock()
		if snap != nil && !s.expired(snap) {
			return snap, nil
		}
		fresh, err := s.load(loadCtx)
		if err != nil && snap != nil {
			s.logger.Warn("Serving stale inventory",
				zap.String("source", s.source.Name()),
				zap.Time("built", snap.built),
				zap.Error(err),
			)
			return snap, nil
		}
		return fresh, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*snapshot), nil
}

func (s *Service) load(ctx context.Context) (*snapshot, error) {
	start := s.now()
	result, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("Failed to load inventory", zap.String("source", s.source.Name()), zap.Error(err))
		return nil, fmt.Errorf("failed to load inventory from %s: %w", s.source.Name(), err)
	}
	for _, skipped := range result.Skipped {
		s.logger.Warn("Skipped inventory record", zap.Error(skipped))
	}

	snap := &snapshot{result: result, built: s.now()}
	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	s.metrics.SetInventorySize(result.Inventory.Len())
	s.logger.Info("Inventory loaded",
		zap.String("source", s.source.Name()),
		zap.String("version", result.Version),
		zap.Int("items", result.Inventory.Len()),
		zap.Int("skipped", len(result.Skipped)),
		zap.Duration("duration", s.now().Sub(start)),
	)
	return snap, nil
}

// Reload loads the inventory again regardless of its age.
// On failure the previous inventory stays in service.
func (s *Service) Reload(ctx context.Context) (*LoadResult, error) {
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(snapshotKey, func() (interface{}, error) {
		return s.load(loadCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*snapshot).result, nil
}

// Brands returns every brand in the inventory, sorted.
func (s *Service) Brands(ctx context.Context) ([]string, error) {
	inv, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	return inv.Brands(), nil
}

// PriceRange returns 0 to the highest price in the inventory.
func (s *Service) PriceRange(ctx context.Context) (PriceRange, error) {
	inv, err := s.Inventory(ctx)
	if err != nil {
		return PriceRange{}, err
	}
	return PriceRange{Min: 0, Max: inv.MaxPrice()}, nil
}

// Options returns the selectable search values together with the inventory's brands and price ceiling.
func (s *Service) Options(ctx context.Context) (Options, error) {
	inv, err := s.Inventory(ctx)
	if err != nil {
		return Options{}, err
	}
	return newOptions(inv), nil
}

// Get returns the item with the given product code.
func (s *Service) Get(ctx context.Context, code catalog.ProductCode) (catalog.Item, error) {
	inv, err := s.Inventory(ctx)
	if err != nil {
		return catalog.Item{}, err
	}
	item, ok := inv.Get(code)
	if !ok {
		return catalog.Item{}, fmt.Errorf("product code %s: %w", code, ErrItemNotFound)
	}
	return item, nil
}

// Search validates req and returns the matching items in inventory order.
// Invalid requests yield a *ValidationError.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]catalog.Item, error) {
	inv, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	criteria, err := req.Criteria()
	if err != nil {
		s.metrics.ObserveSearch(metrics.SearchInvalid, 0)
		return nil, err
	}
	if minPrice, ok := criteria.MinPrice(); ok && minPrice > inv.MaxPrice() {
		s.metrics.ObserveSearch(metrics.SearchInvalid, 0)
		return nil, &ValidationError{
			Field:   "min_price",
			Message: fmt.Sprintf("min price must be below $%.2f", inv.MaxPrice()),
		}
	}

	matches := inv.FindMatch(criteria)
	if len(matches) == 0 {
		s.metrics.ObserveSearch(metrics.SearchEmpty, 0)
	} else {
		s.metrics.ObserveSearch(metrics.SearchMatch, len(matches))
	}
	s.logger.Debug("Catalog search",
		zap.String("criteria", criteria.Describe()),
		zap.Int("matches", len(matches)),
	)
	return matches, nil
}
