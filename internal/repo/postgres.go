package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Juangrcode/sk-cleanup-orders/internal/entities"
	"github.com/Juangrcode/sk-cleanup-orders/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("order_number ASC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order))
	}
	return result, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(order), nil
}

// NextOrderNumber reads max(order_number)+1. The read is not serialized
// against other creates; the UNIQUE constraint catches the race and the
// caller retries.
func (r *postgresRepo) NextOrderNumber(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COALESCE(MAX(order_number), 0) + 1").
		From("orders").
		MustSql()

	var next int
	if err := r.getContext(ctx, &next, query, args...); err != nil {
		return 0, fmt.Errorf("failed to get next order number: %w", err)
	}
	return next, nil
}

func (r *postgresRepo) InsertOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, o.UserID, o.Name, o.PhoneNumber,
			o.Description, o.DeliveryDate, string(o.Status), o.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrOrderNumberConflict
	}
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateOrder(ctx context.Context, id string, d entities.OrderDraft) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("user_id", d.UserID).
		Set("name", d.Name).
		Set("phone_number", d.PhoneNumber).
		Set("description", d.Description).
		Set("delivery_date", d.DeliveryDate).
		Set("status", string(d.Status)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	return OrderToEntity(order), nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, id string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
