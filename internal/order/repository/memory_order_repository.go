package repository

import (
	"context"
	"fmt"
	"sync"

	"servicecenter/internal/domain"
	"servicecenter/internal/errors"
)

// MemoryOrderRepository keeps orders in insertion order for the life of the process.
// Orders are copied on the way in and out so callers never alias stored line items.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemoryOrderRepository(seed ...domain.Order) *MemoryOrderRepository {
	orders := make([]domain.Order, 0, len(seed))
	for _, o := range seed {
		orders = append(orders, o.Clone())
	}
	return &MemoryOrderRepository{orders: orders}
}

func (r *MemoryOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (r *MemoryOrderRepository) ListByMaster(ctx context.Context, masterID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Order{}
	for _, o := range r.orders {
		if o.MasterID == masterID {
			out = append(out, o.Clone())
		}
	}
	return out, nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			found := o.Clone()
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
}

// Create appends without checking for an existing id.
func (r *MemoryOrderRepository) Create(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order.Clone())
	return nil
}

// Update replaces every entry with the order's id. A missing id is a no-op.
func (r *MemoryOrderRepository) Update(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = order.Clone()
		}
	}
	return nil
}

// Delete removes every entry with the id. A missing id is a no-op.
func (r *MemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.orders[:0]
	for _, o := range r.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(r.orders); i++ {
		r.orders[i] = domain.Order{}
	}
	r.orders = kept
	return nil
}
