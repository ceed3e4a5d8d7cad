package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Juangrcode/sk-cleanup-orders/internal/entities"
	"github.com/Juangrcode/sk-cleanup-orders/pkg/trm"
	"github.com/Juangrcode/sk-cleanup-orders/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)

	// NextOrderNumber and InsertOrder must run inside one transaction,
	// otherwise two creates can claim the same number.
	NextOrderNumber(ctx context.Context) (int, error)
	InsertOrder(ctx context.Context, o entities.Order) error

	UpdateOrder(ctx context.Context, id string, d entities.OrderDraft) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

var retryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("id", id), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(retryConfig, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

// CreateOrder assigns the id, the next sequential order number and the
// creation time, then persists the record. status defaults to received when
// the draft leaves it empty. A number conflict with a concurrent create
// aborts the transaction and the whole sequence is retried.
func (s *orderService) CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	if draft.Status == "" {
		draft.Status = entities.StatusReceived
	}

	var order entities.Order
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			number, err := s.repo.NextOrderNumber(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute order number: %w", err)
			}

			order = entities.Order{
				ID:           uuid.NewString(),
				OrderNumber:  number,
				UserID:       draft.UserID,
				Name:         draft.Name,
				PhoneNumber:  draft.PhoneNumber,
				Description:  draft.Description,
				DeliveryDate: draft.DeliveryDate,
				Status:       draft.Status,
				CreatedAt:    time.Now().UTC(),
			}

			if err := s.repo.InsertOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to insert order: %w", err)
			}

			s.logger.Debug("order created", "id", order.ID, "order_number", order.OrderNumber)
			return nil
		})
	}

	if err := utils.Retry(retryConfig, fn); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id string, draft entities.OrderDraft) (entities.Order, error) {
	if draft.Status == "" {
		draft.Status = entities.StatusReceived
	}

	order, err := s.repo.UpdateOrder(ctx, id, draft)
	if err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(id)
	return nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}
