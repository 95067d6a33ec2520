package state

import "github.com/Liziwinc/web-larek-frontend/internal/domain"

// Имена событий, пересекающих границу ядра. Контракт стабилен:
// представления подписываются на эти имена и публикуют события полей
// по схеме `{форма}.{поле}:change`.
const (
	EventCardsChanged       = "cards:changed"
	EventPreviewChanged     = "preview:changed"
	EventBasketChanged      = "basket:changed"
	EventOrderValidation    = "order:validation"
	EventContactsValidation = "contacts:validation"
	EventOrderCreated       = "order:created"
	EventModalClose         = "modal:close"

	EventCardSelect = "card:select"
	EventCardAdd    = "card:add"
	EventCardRemove = "card:remove"

	EventPaymentChange        = "payment:change"
	EventOrderAddressChange   = "order.address:change"
	EventContactsEmailChange  = "contacts.email:change"
	EventContactsPhoneChange  = "contacts.phone:change"
)

// CatalogChanged полезная нагрузка события EventCardsChanged
type CatalogChanged struct {
	Catalog []domain.Product
}

// BasketChanged полезная нагрузка события EventBasketChanged.
// Несёт и позиции, и сумму, чтобы счётчик в шапке рисовался без
// повторного опроса состояния.
type BasketChanged struct {
	Items []domain.Product
	Total float64
}

// FieldChange полезная нагрузка событий `{форма}.{поле}:change`
type FieldChange struct {
	Field string
	Value string
}
