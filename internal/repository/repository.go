package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Liziwinc/web-larek-frontend/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ProductFilter параметры фильтрации списка товаров
type ProductFilter struct {
	TitleSubstring string
	Category       string
}

// ProductRepository интерфейс репозитория товаров магазина.
// Каталог заменяется целиком, по одному товары не редактируются.
type ProductRepository interface {
	ReplaceAll(ctx context.Context, items []domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

// OrderRepository интерфейс репозитория принятых заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
