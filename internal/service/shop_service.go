package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Liziwinc/web-larek-frontend/internal/domain"
	"github.com/Liziwinc/web-larek-frontend/internal/repository"
)

// ShopService бизнес-логика магазина: выдача каталога и приём заказов.
// Для фронтового ядра магазин — чёрный ящик, но вести себя он обязан как
// настоящий: проверяет позиции заказа и пересчитывает сумму на своей
// стороне.
type ShopService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewShopService(products repository.ProductRepository, orders repository.OrderRepository) *ShopService {
	return &ShopService{products: products, orders: orders}
}

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnknownItem   = errors.New("unknown item")
	ErrPricelessItem = errors.New("priceless item is not payable")
	ErrTotalMismatch = errors.New("total mismatch")
)

// Catalog возвращает каталог в порядке загрузки
func (s *ShopService) Catalog(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	return s.products.List(ctx, f)
}

// Product возвращает товар по id
func (s *ShopService) Product(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.products.GetByID(ctx, id)
}

// AcceptOrder проверяет заказ и сохраняет его. Каждая позиция обязана
// существовать в каталоге и иметь цену; заявленная сумма сверяется с
// пересчитанной. Дубликаты позиций не принимаются.
func (s *ShopService) AcceptOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 || req.Email == "" || req.Phone == "" || req.Address == "" {
		return nil, ErrInvalidInput
	}
	if req.Payment != domain.PaymentOnline && req.Payment != domain.PaymentCash {
		return nil, ErrInvalidInput
	}

	seen := make(map[string]bool, len(req.Items))
	var total float64
	for _, id := range req.Items {
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate item %s", ErrInvalidInput, id)
		}
		seen[id] = true

		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
			}
			return nil, err
		}
		if p.Price == nil {
			return nil, fmt.Errorf("%w: %s", ErrPricelessItem, id)
		}
		total += *p.Price
	}
	if math.Abs(total-req.Total) > 1e-9 {
		return nil, fmt.Errorf("%w: got %v, want %v", ErrTotalMismatch, req.Total, total)
	}

	o := domain.Order{
		Payment: req.Payment,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Total:   total,
		Items:   req.Items,
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}
	return &o, nil
}

// Order возвращает принятый заказ по id
func (s *ShopService) Order(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.GetByID(ctx, id)
}
