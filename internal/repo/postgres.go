package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	sq "github.com/Masterminds/squirrel"
)

type postgresRepo struct {
	qb        sq.StatementBuilderType
	txManager trm.Manager
}

// NewPostgresRepo runs every query through txManager, so calls made inside
// txManager.Do share its transaction.
func NewPostgresRepo(txManager trm.Manager) *postgresRepo {
	return &postgresRepo{
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

// CreateIfAbsent inserts the order unless a row with the same id exists, in
// which case the stored order is returned untouched. The primary key makes
// concurrent inserts of the same id serialize: the loser sees the winner's row.
func (r *postgresRepo) CreateIfAbsent(ctx context.Context, o entities.Order) (entities.Order, bool, error) {
	row, err := OrderFromEntity(o)
	if err != nil {
		return entities.Order{}, false, fmt.Errorf("failed to encode order: %w", err)
	}

	created := false
	err = r.txManager.Do(ctx, func(ctx context.Context) error {
		query, args := r.qb.Insert("orders").
			Columns(orderColumns...).
			Values(row.values()...).
			Suffix("ON CONFLICT (id) DO NOTHING RETURNING id").
			MustSql()

		var id string
		err := r.getContext(ctx, &id, query, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		created = true
		return r.saveItems(ctx, o.ID, o.Products)
	})
	if err != nil {
		return entities.Order{}, false, err
	}

	if created {
		return o, true, nil
	}

	existing, err := r.getOrder(ctx, sq.Eq{"id": o.ID})
	if err != nil {
		return entities.Order{}, false, fmt.Errorf("failed to load existing order: %w", err)
	}
	return existing, false, nil
}

func (r *postgresRepo) saveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns(itemColumns...).
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i, it.ProductRef, it.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_number": orderNumber})
}

func (r *postgresRepo) GetOrderByPaymentLinkID(ctx context.Context, linkID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"gateway_payment_link_id": linkID})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Sqlizer) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("order_date DESC").
		Limit(1).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items)
}

func (r *postgresRepo) PatchOrder(ctx context.Context, id string, patch entities.OrderPatch) error {
	q := r.qb.Update("orders").Where(sq.Eq{"id": id})
	changed := false

	if patch.Status != nil {
		q = q.Set("status", string(*patch.Status))
		changed = true
	}
	if patch.GatewayPaymentID != nil {
		q = q.Set("gateway_payment_id", nullString(*patch.GatewayPaymentID))
		changed = true
	}
	if patch.GatewayPaymentLinkID != nil {
		q = q.Set("gateway_payment_link_id", nullString(*patch.GatewayPaymentLinkID))
		changed = true
	}
	if patch.GatewayCustomerID != nil {
		q = q.Set("gateway_customer_id", nullString(*patch.GatewayCustomerID))
		changed = true
	}
	if patch.PaymentDate != nil {
		q = q.Set("payment_date", nullTime(*patch.PaymentDate))
		changed = true
	}
	if patch.TrackingKey != "" {
		q = q.Set("tracking_dates", sq.Expr(
			"tracking_dates || jsonb_build_object(?::text, ?::text)",
			patch.TrackingKey, patch.TrackingDate.UTC().Format(time.RFC3339Nano),
		))
		changed = true
	}

	if !changed {
		return nil
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to patch order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to patch order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, limit int) ([]entities.OrderSummary, error) {
	q := r.qb.Select("id", "order_number").
		From("orders").
		OrderBy("order_number ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args := q.MustSql()

	var rows []struct {
		ID          string `db:"id"`
		OrderNumber string `db:"order_number"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]entities.OrderSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, entities.OrderSummary{ID: row.ID, OrderNumber: row.OrderNumber})
	}
	return result, nil
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	// Последние count заказов
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("order_date DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Товары этих заказов одним запросом
	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		o, err := OrderToEntity(order, itemsMap[order.ID])
		if err != nil {
			return nil, fmt.Errorf("failed to decode order %s: %w", order.ID, err)
		}
		result = append(result, o)
	}

	return result, nil
}

func (r *postgresRepo) CreateAddress(ctx context.Context, a entities.Address) error {
	return r.txManager.Do(ctx, func(ctx context.Context) error {
		if a.Default {
			query, args := r.qb.Update("addresses").
				Set("is_default", false).
				Where(sq.Eq{"email": a.Email, "is_default": true}).
				MustSql()
			if _, err := r.execContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to reset default address: %w", err)
			}
		}

		query, args := r.qb.Insert("addresses").
			Columns(addressColumns...).
			Values(a.ID, a.Name, a.Email, a.Street, a.City, a.State, a.Zip, a.Default, a.CreatedAt).
			MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert address: %w", err)
		}
		return nil
	})
}

func (r *postgresRepo) GetAddress(ctx context.Context, id string) (entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": id}).
		MustSql()

	var a Address
	err := r.getContext(ctx, &a, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(a), nil
}

func (r *postgresRepo) ListAddresses(ctx context.Context, email string) ([]entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"email": email}).
		OrderBy("is_default DESC", "created_at DESC").
		MustSql()

	var rows []Address
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	result := make([]entities.Address, 0, len(rows))
	for _, a := range rows {
		result = append(result, AddressToEntity(a))
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.txManager.Querier(ctx).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return r.txManager.Querier(ctx).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return r.txManager.Querier(ctx).SelectContext(ctx, dest, query, args...)
}
