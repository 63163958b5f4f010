package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"garment-geek/core/catalog"
	"garment-geek/core/metrics"
	"garment-geek/core/storage"
	"garment-geek/feature/session"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Order submission statuses recorded on orders_total.
const (
	StatusSubmitted = "submitted"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
)

// Catalog looks up garments by product code.
type Catalog interface {
	Get(ctx context.Context, code catalog.ProductCode) (catalog.Item, error)
}

// Request is an order as submitted by a shopper. The garment is the session's
// choice when SessionID is set, otherwise the item with ProductCode.
type Request struct {
	SessionID   string               `json:"session_id,omitempty"`
	ProductCode *catalog.ProductCode `json:"product_code,omitempty"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Message     string               `json:"message"`
}

// Service places orders.
type Service struct {
	client   storage.Client
	bucket   string
	prefix   string
	repo     *Repository
	catalog  Catalog
	sessions *session.Store
	logger   *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewService creates a new order service. repo, sessions and m may be nil.
func NewService(client storage.Client, bucket string, cfg Config, repo *Repository, cat Catalog, sessions *session.Store, logger *zap.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   client,
		bucket:   bucket,
		prefix:   cfg.Prefix,
		repo:     repo,
		catalog:  cat,
		sessions: sessions,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// Select records the garment a shopper picked from their last search.
func (s *Service) Select(ctx context.Context, sessionID string, code catalog.ProductCode) (catalog.Item, error) {
	if s.sessions == nil {
		return catalog.Item{}, session.ErrSessionNotFound
	}
	return s.sessions.Choose(sessionID, code)
}

func (s *Service) resolve(ctx context.Context, req Request) (catalog.Item, error) {
	if req.SessionID != "" {
		if s.sessions == nil {
			return catalog.Item{}, session.ErrSessionNotFound
		}
		item, err := s.sessions.Choice(req.SessionID)
		if errors.Is(err, session.ErrNoChoice) {
			return catalog.Item{}, ErrNoSelection
		}
		return item, err
	}
	if req.ProductCode == nil {
		return catalog.Item{}, ErrNoSelection
	}
	return s.catalog.Get(ctx, *req.ProductCode)
}

// Submit validates the request, stores the confirmation and records the order.
// A session's choice is cleared once its order is placed.
func (s *Service) Submit(ctx context.Context, req Request) (*Order, error) {
	customer := Customer{Name: strings.TrimSpace(req.Name), Email: strings.TrimSpace(req.Email)}
	if err := customer.Validate(); err != nil {
		s.metrics.ObserveOrder(StatusRejected)
		return nil, err
	}

	item, err := s.resolve(ctx, req)
	if err != nil {
		s.metrics.ObserveOrder(StatusRejected)
		return nil, err
	}

	o := &Order{
		ID:          uuid.NewString(),
		Customer:    customer,
		ProductCode: item.Code,
		ItemName:    item.Name,
		Message:     req.Message,
		ObjectKey:   ConfirmationKey(s.prefix, customer, item.Code),
		CreatedAt:   s.now().UTC(),
	}

	body := o.Confirmation()
	_, err = s.client.PutObject(ctx, s.bucket, o.ObjectKey, strings.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
		UserMetadata: map[string]string{
			"order-id": o.ID,
		},
	})
	if err != nil {
		s.metrics.ObserveOrder(StatusFailed)
		s.logger.Error("Failed to store order confirmation", zap.String("object", o.ObjectKey), zap.Error(err))
		return nil, fmt.Errorf("order could not be placed: %w", err)
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, o); err != nil {
			s.metrics.ObserveOrder(StatusFailed)
			s.logger.Error("Failed to record order", zap.String("order", o.ID), zap.Error(err))
			return nil, err
		}
	}

	if req.SessionID != "" && s.sessions != nil {
		if err := s.sessions.Reset(req.SessionID); err != nil {
			s.logger.Warn("Failed to reset session", zap.String("session", req.SessionID), zap.Error(err))
		}
	}

	s.metrics.ObserveOrder(StatusSubmitted)
	s.logger.Info("Order placed",
		zap.String("order", o.ID),
		zap.String("product_code", o.ProductCode.String()),
		zap.String("object", o.ObjectKey),
	)
	return o, nil
}

// Recent returns the latest recorded orders. It needs a database.
func (s *Service) Recent(ctx context.Context, limit int) ([]Order, error) {
	if s.repo == nil {
		return nil, errors.New("order history requires a database")
	}
	return s.repo.List(ctx, limit)
}
