package garment

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"garment-geek/core/catalog"
	"garment-geek/core/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingSource parses the fixture and counts how often it was asked to.
type countingSource struct {
	loads atomic.Int32
	err   error
	delay time.Duration
}

func (s *countingSource) Name() string { return "test" }

func (s *countingSource) Load(ctx context.Context) (*LoadResult, error) {
	s.loads.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	f, err := os.Open("testdata/inventory.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseInventory(f, Strict)
}

func newTestService(src Source, ttl time.Duration) *Service {
	return NewService(src, ttl, zap.NewNop(), nil)
}

func TestService_Queries(t *testing.T) {
	svc := newTestService(&countingSource{}, time.Minute)
	ctx := context.Background()

	brands, err := svc.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Zeta"}, brands)

	pr, err := svc.PriceRange(ctx)
	require.NoError(t, err)
	assert.Equal(t, PriceRange{Min: 0, Max: 45.5}, pr)

	item, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Plain Shirt", item.Name)

	_, err = svc.Get(ctx, 404)
	assert.True(t, errors.Is(err, ErrItemNotFound))

	opts, err := svc.Options(ctx)
	require.NoError(t, err)
	assert.Len(t, opts.Types, 2)
	assert.Len(t, opts.Sizes, 8)
	assert.Equal(t, 45.5, opts.MaxPrice)
}

func TestService_Search(t *testing.T) {
	svc := newTestService(&countingSource{}, time.Minute)
	ctx := context.Background()

	tests := []struct {
		name  string
		req   SearchRequest
		codes []catalog.ProductCode
	}{
		{"Hoodie in L", SearchRequest{Type: "hoodie", Sizes: []string{"L", "XL"}, MaxPrice: price(30)}, []catalog.ProductCode{1}},
		{"Any t-shirt in S", SearchRequest{Type: "t-shirt", Sizes: []string{"S"}}, []catalog.ProductCode{2, 3}},
		{"T-shirt by brand", SearchRequest{Type: "t-shirt", Sizes: []string{"S"}, Brands: []string{"Acme"}}, []catalog.ProductCode{3}},
		{"T-shirt by neckline", SearchRequest{Type: "t-shirt", Sizes: []string{"S"}, Neckline: "crew"}, []catalog.ProductCode{2}},
		{"Material excludes NA material", SearchRequest{Type: "t-shirt", Sizes: []string{"S"}, Material: "polyester"}, []catalog.ProductCode{3}},
		{"Price window", SearchRequest{Type: "t-shirt", Sizes: []string{"S"}, MinPrice: price(13), MaxPrice: price(50)}, []catalog.ProductCode{2}},
		{"No match", SearchRequest{Type: "hoodie", Sizes: []string{"XS"}}, []catalog.ProductCode{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := svc.Search(ctx, tt.req)
			require.NoError(t, err)
			require.NotNil(t, matches)
			codes := make([]catalog.ProductCode, 0, len(matches))
			for _, m := range matches {
				codes = append(codes, m.Code)
			}
			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestService_SearchMinAboveCatalogMax(t *testing.T) {
	svc := newTestService(&countingSource{}, time.Minute)

	_, err := svc.Search(context.Background(), SearchRequest{Type: "hoodie", Sizes: []string{"M"}, MinPrice: price(100)})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "min_price", verr.Field)
}

func TestService_SearchMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(&countingSource{}, time.Minute, zap.NewNop(), metrics.New(reg))
	ctx := context.Background()

	_, err := svc.Search(ctx, SearchRequest{Type: "hoodie", Sizes: []string{"M"}})
	require.NoError(t, err)
	_, err = svc.Search(ctx, SearchRequest{Type: "hoodie", Sizes: []string{"XS"}})
	require.NoError(t, err)
	_, err = svc.Search(ctx, SearchRequest{Sizes: []string{"M"}})
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	results := map[string]float64{}
	var inventory float64
	for _, mf := range families {
		switch mf.GetName() {
		case "catalog_searches_total":
			for _, m := range mf.GetMetric() {
				results[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			}
		case "catalog_inventory_items":
			inventory = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		metrics.SearchMatch:   1,
		metrics.SearchEmpty:   1,
		metrics.SearchInvalid: 1,
	}, results)
	assert.Equal(t, 3.0, inventory)
}

func TestService_CachesUntilTTL(t *testing.T) {
	src := &countingSource{}
	svc := newTestService(src, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := svc.Inventory(ctx)
	require.NoError(t, err)
	_, err = svc.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.loads.Load())

	now = now.Add(2 * time.Minute)
	_, err = svc.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.loads.Load())
}

func TestService_ZeroTTLNeverExpires(t *testing.T) {
	src := &countingSource{}
	svc := newTestService(src, 0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := svc.Inventory(ctx)
	require.NoError(t, err)
	now = now.Add(24 * time.Hour)
	_, err = svc.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.loads.Load())

	_, err = svc.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.loads.Load())
}

func TestService_ConcurrentFirstLoad(t *testing.T) {
	src := &countingSource{delay: 50 * time.Millisecond}
	svc := newTestService(src, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Inventory(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.loads.Load())
}

func TestService_FailedReloadKeepsInventory(t *testing.T) {
	src := &countingSource{}
	svc := newTestService(src, 0)
	ctx := context.Background()

	_, err := svc.Inventory(ctx)
	require.NoError(t, err)

	src.err = errors.New("disk on fire")
	_, err = svc.Reload(ctx)
	assert.Error(t, err)

	brands, err := svc.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Zeta"}, brands)
}

func TestService_ExpiredInventoryServedWhenSourceFails(t *testing.T) {
	src := &countingSource{}
	svc := newTestService(src, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := svc.Inventory(ctx)
	require.NoError(t, err)

	src.err = errors.New("source down")
	now = now.Add(2 * time.Minute)

	brands, err := svc.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Zeta"}, brands)
	assert.Equal(t, int32(2), src.loads.Load())

	src.err = nil
	_, err = svc.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(3), src.loads.Load())
}

// cancelAwareSource fails like a real source when its context is done.
type cancelAwareSource struct {
	countingSource
}

func (s *cancelAwareSource) Load(ctx context.Context) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.countingSource.Load(ctx)
}

func TestService_LoadIgnoresCallerCancellation(t *testing.T) {
	svc := newTestService(&cancelAwareSource{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv, err := svc.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, inv.Len())
}

func TestService_LoadError(t *testing.T) {
	svc := newTestService(&countingSource{err: errors.New("unavailable")}, time.Minute)

	_, err := svc.Brands(context.Background())
	assert.Error(t, err)
}
