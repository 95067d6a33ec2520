package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Liziwinc/web-larek-frontend/internal/domain"
	"github.com/Liziwinc/web-larek-frontend/internal/events"
)

func price(v float64) *float64 { return &v }

// recorder копит полезные нагрузки одного события
type recorder struct {
	payloads []any
}

func record(bus *events.Bus, event string) *recorder {
	r := &recorder{}
	bus.Subscribe(event, func(p any) { r.payloads = append(r.payloads, p) })
	return r
}

func newState(t *testing.T, catalog ...domain.Product) (*AppState, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	s := New(bus)
	if len(catalog) > 0 {
		s.SetCatalog(catalog)
	}
	return s, bus
}

func TestSetCatalog_ReplacesWholesale(t *testing.T) {
	s, bus := newState(t)
	changed := record(bus, EventCardsChanged)

	s.SetCatalog([]domain.Product{{ID: "a"}, {ID: "b"}})
	s.SetCatalog([]domain.Product{{ID: "c"}})

	got := s.Catalog()
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].ID)

	require.Len(t, changed.payloads, 2)
	last := changed.payloads[1].(CatalogChanged)
	require.Len(t, last.Catalog, 1)

	_, ok := s.FindProduct("a")
	require.False(t, ok, "no merge: old items must be gone")
}

func TestAddToBasket_Idempotent(t *testing.T) {
	p := domain.Product{ID: "x", Price: price(100)}
	s, bus := newState(t, p)
	changed := record(bus, EventBasketChanged)

	require.True(t, s.AddToBasket(p))
	require.False(t, s.AddToBasket(p))

	require.Len(t, s.Basket(), 1)
	// ровно одно событие на фактическую мутацию, ноль на no-op
	require.Len(t, changed.payloads, 1)
}

func TestAddToBasket_RequiresCatalogMembership(t *testing.T) {
	s, bus := newState(t, domain.Product{ID: "known"})
	changed := record(bus, EventBasketChanged)

	require.False(t, s.AddToBasket(domain.Product{ID: "stranger"}))
	require.True(t, s.IsBasketEmpty())
	require.Empty(t, changed.payloads)

	// каталог ещё не загружен — добавление молча не проходит
	empty, _ := newState(t)
	require.False(t, empty.AddToBasket(domain.Product{ID: "known"}))
}

func TestRemoveFromBasket(t *testing.T) {
	p := domain.Product{ID: "x", Price: price(100)}
	s, bus := newState(t, p)
	require.True(t, s.AddToBasket(p))

	changed := record(bus, EventBasketChanged)
	require.True(t, s.RemoveFromBasket(p))
	require.True(t, s.IsBasketEmpty())
	require.Len(t, changed.payloads, 1)

	// повторное удаление — no-op без события
	require.False(t, s.RemoveFromBasket(p))
	require.Len(t, changed.payloads, 1)
}

func TestBasketTotal_PricelessContributesZero(t *testing.T) {
	a := domain.Product{ID: "a", Price: price(100)}
	b := domain.Product{ID: "b", Price: nil}
	c := domain.Product{ID: "c", Price: price(50)}
	s, _ := newState(t, a, b, c)

	require.True(t, s.AddToBasket(a))
	require.True(t, s.AddToBasket(b))
	require.True(t, s.AddToBasket(c))

	require.Equal(t, 150.0, s.BasketTotal())
	require.Equal(t, []string{"a", "c"}, s.ValidOrderItemIDs())
}

func TestBasketChanged_PayloadCarriesItemsAndTotal(t *testing.T) {
	a := domain.Product{ID: "a", Price: price(100)}
	s, bus := newState(t, a)
	changed := record(bus, EventBasketChanged)

	s.AddToBasket(a)
	require.Len(t, changed.payloads, 1)
	payload := changed.payloads[0].(BasketChanged)
	require.Len(t, payload.Items, 1)
	require.Equal(t, 100.0, payload.Total)
}

func TestSetPreview_AnnouncesProduct(t *testing.T) {
	p := domain.Product{ID: "x", Title: "Бэт-сигнал"}
	s, bus := newState(t, p)
	preview := record(bus, EventPreviewChanged)

	s.SetPreview(p)
	require.Equal(t, "x", s.Preview())
	require.Len(t, preview.payloads, 1)
	require.Equal(t, p, preview.payloads[0].(domain.Product))
}

func TestSetters_TriggerOnlyTheirValidationGroup(t *testing.T) {
	s, bus := newState(t)
	orderEvents := record(bus, EventOrderValidation)
	contactEvents := record(bus, EventContactsValidation)

	s.SetAddress("Спб, ул. Пушкина")
	s.SetPayment(domain.PaymentOnline)
	require.Len(t, orderEvents.payloads, 2)
	require.Empty(t, contactEvents.payloads)

	s.SetEmail("a@b.co")
	s.SetPhone("+79998887766")
	require.Len(t, orderEvents.payloads, 2)
	require.Len(t, contactEvents.payloads, 2)

	last := contactEvents.payloads[1].(domain.ValidationResult)
	require.True(t, last.Valid)
	require.Empty(t, last.Errors)
}

func TestSetters_InvalidValuesAccumulateOrderedMessages(t *testing.T) {
	s, bus := newState(t)
	contactEvents := record(bus, EventContactsValidation)

	s.SetEmail("bad")
	result := contactEvents.payloads[0].(domain.ValidationResult)
	require.False(t, result.Valid)
	require.Equal(t, []string{
		"Пожалуйста, введите правильный адрес электронной почты.",
		"Номер телефона должен начинаться с +7 и содержать 11 цифр.",
	}, result.Errors)
}

func TestBuildOrderRequest_IncompleteDraft(t *testing.T) {
	s, _ := newState(t)
	s.SetAddress("Спб")
	s.SetPayment(domain.PaymentOnline)
	s.SetEmail("a@b.co")
	// телефон не заполнен

	_, err := s.BuildOrderRequest()
	require.ErrorIs(t, err, ErrIncompleteOrder)
}

func TestBuildOrderRequest_FiltersPricelessItems(t *testing.T) {
	a := domain.Product{ID: "a", Price: price(100)}
	b := domain.Product{ID: "b", Price: nil}
	s, _ := newState(t, a, b)
	s.AddToBasket(a)
	s.AddToBasket(b)

	s.SetAddress("Спб, ул. Пушкина")
	s.SetPayment(domain.PaymentCash)
	s.SetEmail("a@b.co")
	s.SetPhone("+79998887766")

	req, err := s.BuildOrderRequest()
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, req.Items)
	require.Equal(t, 100.0, req.Total)
	require.Equal(t, domain.PaymentCash, req.Payment)
	require.Equal(t, "a@b.co", req.Email)
}

func TestResetOrder(t *testing.T) {
	s, bus := newState(t)
	s.SetAddress("Спб")
	s.SetPayment(domain.PaymentOnline)
	s.SetEmail("a@b.co")
	s.SetPhone("+79998887766")

	orderEvents := record(bus, EventOrderValidation)
	s.ResetOrder()

	draft := s.Draft()
	require.Empty(t, draft.Address)
	require.Empty(t, draft.Payment)
	require.Empty(t, draft.Email)
	require.Empty(t, draft.Phone)

	// ровно одно событие: пустые ошибки, но черновик невалиден
	require.Len(t, orderEvents.payloads, 1)
	result := orderEvents.payloads[0].(domain.ValidationResult)
	require.False(t, result.Valid)
	require.Empty(t, result.Errors)
	require.NotNil(t, result.Errors)
}

func TestBindForms_RoutesFieldChangesToDraft(t *testing.T) {
	p := domain.Product{ID: "x", Price: price(200)}
	bus := events.NewBus()
	s := New(bus)
	BindForms(bus, s)
	s.SetCatalog([]domain.Product{p})

	bus.Publish(EventOrderAddressChange, FieldChange{Field: "address", Value: "Спб, ул. Пушкина"})
	bus.Publish(EventPaymentChange, FieldChange{Field: "payment", Value: "online"})
	bus.Publish(EventContactsEmailChange, FieldChange{Field: "email", Value: "a@b.co"})
	bus.Publish(EventContactsPhoneChange, FieldChange{Field: "phone", Value: "+79998887766"})

	draft := s.Draft()
	require.Equal(t, "Спб, ул. Пушкина", draft.Address)
	require.Equal(t, domain.PaymentOnline, draft.Payment)
	require.Equal(t, "a@b.co", draft.Email)
	require.Equal(t, "+79998887766", draft.Phone)

	bus.Publish(EventCardSelect, p)
	require.Equal(t, "x", s.Preview())

	bus.Publish(EventCardAdd, p)
	require.Len(t, s.Basket(), 1)

	bus.Publish(EventCardRemove, p)
	require.True(t, s.IsBasketEmpty())
}

type fakeForm struct {
	id      string
	last    domain.ValidationResult
	renders int
}

func (f *fakeForm) FormID() string                   { return f.id }
func (f *fakeForm) Render(r domain.ValidationResult) { f.last = r; f.renders++ }

func TestBindFormView_ReceivesOwnGroupOnly(t *testing.T) {
	bus := events.NewBus()
	s := New(bus)

	order := &fakeForm{id: "order"}
	contacts := &fakeForm{id: "contacts"}
	BindFormView(bus, order)
	BindFormView(bus, contacts)

	s.SetAddress("Спб")
	require.Equal(t, 1, order.renders)
	require.Equal(t, 0, contacts.renders)
	require.False(t, order.last.Valid)

	s.SetPayment(domain.PaymentOnline)
	require.Equal(t, 2, order.renders)
	require.True(t, order.last.Valid)

	s.SetEmail("a@b.co")
	require.Equal(t, 1, contacts.renders)
	require.Equal(t, 2, order.renders)
}
