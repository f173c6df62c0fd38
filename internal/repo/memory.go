package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

// MemoryRepo keeps orders and addresses in process memory. It backs
// STORE_DRIVER=memory and the end-to-end tests.
type MemoryRepo struct {
	mu        sync.RWMutex
	orders    map[string]*entities.Order
	byNumber  map[string]string
	addresses map[string]*entities.Address
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		orders:    make(map[string]*entities.Order),
		byNumber:  make(map[string]string),
		addresses: make(map[string]*entities.Address),
	}
}

func (r *MemoryRepo) CreateIfAbsent(ctx context.Context, o entities.Order) (entities.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.orders[o.ID]; ok {
		return copyOrder(existing), false, nil
	}

	stored := copyOrder(&o)
	r.orders[o.ID] = &stored
	r.byNumber[o.OrderNumber] = o.ID
	return copyOrder(&stored), true, nil
}

func (r *MemoryRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byNumber[orderNumber]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return copyOrder(r.orders[id]), nil
}

func (r *MemoryRepo) GetOrderByPaymentLinkID(ctx context.Context, linkID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if linkID != "" && o.GatewayPaymentLinkID == linkID {
			return copyOrder(o), nil
		}
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (r *MemoryRepo) PatchOrder(ctx context.Context, id string, patch entities.OrderPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	patch.Apply(o)
	return nil
}

func (r *MemoryRepo) ListOrders(ctx context.Context, limit int) ([]entities.OrderSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.OrderSummary, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, entities.OrderSummary{ID: o.ID, OrderNumber: o.OrderNumber})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderNumber < result[j].OrderNumber
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *MemoryRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, copyOrder(o))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderDate.After(result[j].OrderDate)
	})

	if count >= 0 && len(result) > count {
		result = result[:count]
	}
	return result, nil
}

func (r *MemoryRepo) CreateAddress(ctx context.Context, a entities.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.Default {
		for _, other := range r.addresses {
			if other.Email == a.Email {
				other.Default = false
			}
		}
	}

	stored := a
	r.addresses[a.ID] = &stored
	return nil
}

func (r *MemoryRepo) GetAddress(ctx context.Context, id string) (entities.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.addresses[id]
	if !ok {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	return *a, nil
}

func (r *MemoryRepo) ListAddresses(ctx context.Context, email string) ([]entities.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Address, 0)
	for _, a := range r.addresses {
		if a.Email == email {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Default != result[j].Default {
			return result[i].Default
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func copyOrder(o *entities.Order) entities.Order {
	c := *o
	if o.Products != nil {
		c.Products = append([]entities.LineItem(nil), o.Products...)
	}
	if o.TrackingDates != nil {
		c.TrackingDates = make(map[string]time.Time, len(o.TrackingDates))
		for k, v := range o.TrackingDates {
			c.TrackingDates[k] = v
		}
	}
	return c
}
