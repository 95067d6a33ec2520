package state

import (
	"github.com/Liziwinc/web-larek-frontend/internal/domain"
	"github.com/Liziwinc/web-larek-frontend/internal/events"
)

// FormView контракт представления формы. Ядро рендеринга не касается:
// представление само публикует события `{форма}.{поле}:change` с
// нагрузкой FieldChange и получает результат валидации своей группы,
// чтобы включить/выключить кнопку отправки и показать текст ошибок.
type FormView interface {
	// FormID имя формы ("order" или "contacts")
	FormID() string
	// Render применяет свежий результат валидации группы
	Render(result domain.ValidationResult)
}

// BindFormView подписывает представление на событие валидации его формы
func BindFormView(bus *events.Bus, v FormView) {
	events.On(bus, v.FormID()+":validation", v.Render)
}

// BindForms маршрутизирует входящие события представлений в сеттеры
// состояния. Это вся связь «вид → состояние»: напрямую представления
// AppState не вызывают.
func BindForms(bus *events.Bus, s *AppState) {
	events.On(bus, EventOrderAddressChange, func(fc FieldChange) {
		s.SetAddress(fc.Value)
	})
	events.On(bus, EventPaymentChange, func(fc FieldChange) {
		s.SetPayment(domain.PaymentMethod(fc.Value))
	})
	events.On(bus, EventContactsEmailChange, func(fc FieldChange) {
		s.SetEmail(fc.Value)
	})
	events.On(bus, EventContactsPhoneChange, func(fc FieldChange) {
		s.SetPhone(fc.Value)
	})

	events.On(bus, EventCardSelect, func(p domain.Product) {
		s.SetPreview(p)
	})
	events.On(bus, EventCardAdd, func(p domain.Product) {
		s.AddToBasket(p)
	})
	events.On(bus, EventCardRemove, func(p domain.Product) {
		s.RemoveFromBasket(p)
	})
}
