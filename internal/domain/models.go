package domain

import "time"

// PaymentMethod способ оплаты заказа
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentCash   PaymentMethod = "cash"
)

// Product товар каталога. Price == nil означает «бесценный» товар:
// его можно положить в корзину, но в сумму заказа он не входит.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price"`
}

// Priced сообщает, участвует ли товар в сумме заказа
func (p Product) Priced() bool { return p.Price != nil }

// OrderDraft черновик заказа, заполняется по шагам оформления.
// Пустая строка / пустой PaymentMethod означают «поле не заполнено».
type OrderDraft struct {
	Address string
	Payment PaymentMethod
	Email   string
	Phone   string
}

// OrderRequest тело запроса на оформление заказа
type OrderRequest struct {
	Payment PaymentMethod `json:"payment" binding:"required,oneof=online cash"`
	Email   string        `json:"email" binding:"required"`
	Phone   string        `json:"phone" binding:"required"`
	Address string        `json:"address" binding:"required"`
	Total   float64       `json:"total"`
	Items   []string      `json:"items" binding:"required,min=1"`
}

// OrderResult ответ магазина на успешно принятый заказ
type OrderResult struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// Order принятый магазином заказ
type Order struct {
	ID        string        `json:"id"`
	Payment   PaymentMethod `json:"payment"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Address   string        `json:"address"`
	Total     float64       `json:"total"`
	Items     []string      `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
}

// ValidationResult результат проверки группы полей формы.
// Valid истинно тогда и только тогда, когда Errors пуст.
type ValidationResult struct {
	Errors []string `json:"errors"`
	Valid  bool     `json:"valid"`
}
