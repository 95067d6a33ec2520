package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Liziwinc/web-larek-frontend/internal/domain"
)

// MemoryStore in-memory хранилище каталога и принятых заказов.
// Каталог хранится упорядоченным срезом: порядок выдачи — порядок
// последней загрузки.
type MemoryStore struct {
	mu         sync.RWMutex
	products   []domain.Product
	productIdx map[string]int
	ordersByID map[string]domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		productIdx: make(map[string]int),
		ordersByID: make(map[string]domain.Order),
	}
}

// Ensure interfaces
var _ ProductRepository = (*MemoryStore)(nil)

// ProductRepository implementation

// ReplaceAll заменяет каталог целиком; товару без id выдаётся uuid
func (m *MemoryStore) ReplaceAll(ctx context.Context, items []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = make([]domain.Product, len(items))
	m.productIdx = make(map[string]int, len(items))
	for i, p := range items {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		m.products[i] = p
		m.productIdx[p.ID] = i
	}
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.productIdx[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := m.products[i]
	return &cp, nil
}

func (m *MemoryStore) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if !containsIgnoreCase(p.Title, f.TitleSubstring) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = time.Now().UTC()
	mo.store.ordersByID[o.ID] = *o
	return nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()
	o, ok := mo.store.ordersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}
