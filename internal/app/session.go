// Package app собирает ядро в одну сессию оформления заказа.
package app

import (
	"context"

	"github.com/Liziwinc/web-larek-frontend/internal/api"
	"github.com/Liziwinc/web-larek-frontend/internal/domain"
	"github.com/Liziwinc/web-larek-frontend/internal/events"
	"github.com/Liziwinc/web-larek-frontend/internal/state"
)

// Session явно сконструированный контекст: шина, состояние и клиент API
// создаются вместе и живут одну сессию — от загрузки каталога до
// успешного заказа. Никаких глобальных синглтонов.
type Session struct {
	Bus    *events.Bus
	State  *state.AppState
	client *api.Client
}

func NewSession(client *api.Client) *Session {
	bus := events.NewBus()
	st := state.New(bus)
	state.BindForms(bus, st)

	s := &Session{Bus: bus, State: st, client: client}

	// закрытие модального окна бросает оформление: черновик очищается
	bus.Subscribe(state.EventModalClose, func(any) {
		s.Abandon()
	})
	return s
}

// LoadCatalog загружает каталог и заменяет его в состоянии целиком.
// Повторный вызов во время незавершённого первого просто гонится с ним:
// побеждает тот SetCatalog, который лёг последним.
func (s *Session) LoadCatalog(ctx context.Context) error {
	items, err := s.client.FetchCatalog(ctx)
	if err != nil {
		return err
	}
	s.State.SetCatalog(items)
	return nil
}

// Checkout собирает запрос из черновика и отправляет его магазину.
// Сетевая ошибка оставляет корзину и черновик нетронутыми — повтор
// безопасен. Успех очищает и то и другое и анонсирует EventOrderCreated.
func (s *Session) Checkout(ctx context.Context) (*domain.OrderResult, error) {
	req, err := s.State.BuildOrderRequest()
	if err != nil {
		return nil, err
	}
	result, err := s.client.SubmitOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.State.ClearBasket()
	s.State.ResetOrder()
	s.Bus.Publish(state.EventOrderCreated, *result)
	return result, nil
}

// Abandon сбрасывает черновик заказа, корзина остаётся
func (s *Session) Abandon() {
	s.State.ResetOrder()
}
