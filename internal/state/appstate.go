package state

import (
	"errors"
	"sync"

	"github.com/Liziwinc/web-larek-frontend/internal/domain"
	"github.com/Liziwinc/web-larek-frontend/internal/events"
	"github.com/Liziwinc/web-larek-frontend/internal/validate"
)

// ErrIncompleteOrder возвращается, когда запрос заказа собирается из
// незаполненного черновика. Это ошибка программирования: интерфейс обязан
// не подпускать пользователя к отправке, пока валидация не прошла.
var ErrIncompleteOrder = errors.New("order draft is incomplete")

// AppState единственный владелец состояния: каталог, корзина и черновик
// заказа. Всё взаимодействие с представлениями идёт через именованные
// события шины, напрямую AppState ни один рендерер не вызывает.
//
// Мутации могут прилетать из разных горутин (завершение загрузки каталога
// и клики пользователя перемежаются в любом порядке), поэтому состояние
// закрыто мьютексом. События анонсируются после снятия блокировки:
// обработчик имеет право снова обратиться к состоянию.
type AppState struct {
	announcer events.Announcer

	mu      sync.Mutex
	catalog []domain.Product
	preview string
	basket  []domain.Product
	draft   domain.OrderDraft
}

// New создаёт пустое состояние, привязанное к шине. Один экземпляр на
// одну сессию оформления заказа.
func New(bus *events.Bus) *AppState {
	return &AppState{announcer: events.NewAnnouncer(bus)}
}

// SetCatalog целиком заменяет каталог (никакого слияния: последний
// завершившийся запрос побеждает) и анонсирует EventCardsChanged.
func (s *AppState) SetCatalog(items []domain.Product) {
	catalog := make([]domain.Product, len(items))
	copy(catalog, items)

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	s.announcer.Announce(EventCardsChanged, CatalogChanged{Catalog: catalog})
}

// Catalog возвращает копию текущего каталога
func (s *AppState) Catalog() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// FindProduct ищет товар каталога по id
func (s *AppState) FindProduct(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// SetPreview запоминает товар для детального просмотра и анонсирует
// EventPreviewChanged. Товар не обязан находиться в корзине.
func (s *AppState) SetPreview(p domain.Product) {
	s.mu.Lock()
	s.preview = p.ID
	s.mu.Unlock()

	s.announcer.Announce(EventPreviewChanged, p)
}

// Preview возвращает id товара на предпросмотре ("" — ничего не выбрано)
func (s *AppState) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// AddToBasket кладёт товар в корзину. Идемпотентно: повторное добавление
// того же id ничего не меняет. Принадлежность каталогу проверяется в
// момент вызова — мутация корзины не вправе считать, что каталог уже
// загружен. На каждую фактическую мутацию анонсируется ровно одно
// событие EventBasketChanged, на no-op — ни одного.
func (s *AppState) AddToBasket(p domain.Product) bool {
	s.mu.Lock()
	if !s.inCatalogLocked(p.ID) {
		s.mu.Unlock()
		return false
	}
	for _, cur := range s.basket {
		if cur.ID == p.ID {
			s.mu.Unlock()
			return false
		}
	}
	s.basket = append(s.basket, p)
	payload := s.basketChangedLocked()
	s.mu.Unlock()

	s.announcer.Announce(EventBasketChanged, payload)
	return true
}

// RemoveFromBasket убирает товар из корзины по id; отсутствующий id — no-op
func (s *AppState) RemoveFromBasket(p domain.Product) bool {
	s.mu.Lock()
	for i, cur := range s.basket {
		if cur.ID == p.ID {
			s.basket = append(s.basket[:i:i], s.basket[i+1:]...)
			payload := s.basketChangedLocked()
			s.mu.Unlock()

			s.announcer.Announce(EventBasketChanged, payload)
			return true
		}
	}
	s.mu.Unlock()
	return false
}

// ClearBasket опустошает корзину (после успешного заказа)
func (s *AppState) ClearBasket() {
	s.mu.Lock()
	if len(s.basket) == 0 {
		s.mu.Unlock()
		return
	}
	s.basket = nil
	payload := s.basketChangedLocked()
	s.mu.Unlock()

	s.announcer.Announce(EventBasketChanged, payload)
}

// Basket возвращает копию корзины в порядке добавления
func (s *AppState) Basket() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.basket))
	copy(out, s.basket)
	return out
}

// IsBasketEmpty истинно при пустой корзине
func (s *AppState) IsBasketEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.basket) == 0
}

// BasketTotal сумма цен корзины; бесценные товары дают нулевой вклад
func (s *AppState) BasketTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// ValidOrderItemIDs id товаров корзины с определённой ценой, в порядке
// добавления. Только они входят в сумму и в отправляемый список items.
func (s *AppState) ValidOrderItemIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.basket))
	for _, p := range s.basket {
		if p.Priced() {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// SetAddress мутирует адрес и перепроверяет группу доставки
func (s *AppState) SetAddress(value string) {
	s.mu.Lock()
	s.draft.Address = value
	result := validate.Order(s.draft)
	s.mu.Unlock()

	s.announcer.Announce(EventOrderValidation, result)
}

// SetPayment мутирует способ оплаты и перепроверяет группу доставки
func (s *AppState) SetPayment(method domain.PaymentMethod) {
	s.mu.Lock()
	s.draft.Payment = method
	result := validate.Order(s.draft)
	s.mu.Unlock()

	s.announcer.Announce(EventOrderValidation, result)
}

// SetEmail мутирует email и перепроверяет контактную группу
func (s *AppState) SetEmail(value string) {
	s.mu.Lock()
	s.draft.Email = value
	result := validate.Contacts(s.draft)
	s.mu.Unlock()

	s.announcer.Announce(EventContactsValidation, result)
}

// SetPhone мутирует телефон и перепроверяет контактную группу
func (s *AppState) SetPhone(value string) {
	s.mu.Lock()
	s.draft.Phone = value
	result := validate.Contacts(s.draft)
	s.mu.Unlock()

	s.announcer.Announce(EventContactsValidation, result)
}

// Draft возвращает текущий черновик заказа
func (s *AppState) Draft() domain.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// BuildOrderRequest собирает запрос заказа из черновика и корзины.
// Предусловие — полностью заполненный черновик — обязан обеспечить
// вызывающий через валидацию; при пустом поле возвращается
// ErrIncompleteOrder, значения по умолчанию не подставляются.
// Бесценные товары в items не включаются (их цена не входит в total,
// поэтому items и total остаются согласованными).
func (s *AppState) BuildOrderRequest() (domain.OrderRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Email == "" || s.draft.Phone == "" || s.draft.Address == "" || s.draft.Payment == "" {
		return domain.OrderRequest{}, ErrIncompleteOrder
	}

	items := make([]string, 0, len(s.basket))
	for _, p := range s.basket {
		if p.Priced() {
			items = append(items, p.ID)
		}
	}
	return domain.OrderRequest{
		Payment: s.draft.Payment,
		Email:   s.draft.Email,
		Phone:   s.draft.Phone,
		Address: s.draft.Address,
		Total:   s.totalLocked(),
		Items:   items,
	}, nil
}

// ResetOrder очищает все четыре поля черновика и анонсирует
// EventOrderValidation с пустым списком ошибок и Valid=false:
// до повторного заполнения черновик невалиден, а не «тривиально валиден».
func (s *AppState) ResetOrder() {
	s.mu.Lock()
	s.draft = domain.OrderDraft{}
	s.mu.Unlock()

	s.announcer.Announce(EventOrderValidation, domain.ValidationResult{Errors: []string{}, Valid: false})
}

func (s *AppState) inCatalogLocked(id string) bool {
	for _, p := range s.catalog {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *AppState) totalLocked() float64 {
	var total float64
	for _, p := range s.basket {
		if p.Price != nil {
			total += *p.Price
		}
	}
	return total
}

func (s *AppState) basketChangedLocked() BasketChanged {
	items := make([]domain.Product, len(s.basket))
	copy(items, s.basket)
	return BasketChanged{Items: items, Total: s.totalLocked()}
}
