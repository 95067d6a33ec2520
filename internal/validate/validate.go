// Package validate превращает поля черновика заказа в ValidationResult.
// Правила декларативные и проверяются в порядке объявления; каждое
// провалившееся правило добавляет ровно одно сообщение.
package validate

import (
	"regexp"
	"strings"

	"github.com/Liziwinc/web-larek-frontend/internal/domain"
)

// Rule одно правило проверки поля черновика
type Rule struct {
	Field   string
	Check   func(domain.OrderDraft) bool
	Message string
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+7\d{10}$`)
)

// contactRules: email проверяется раньше телефона
var contactRules = []Rule{
	{
		Field:   "email",
		Check:   func(d domain.OrderDraft) bool { return emailPattern.MatchString(d.Email) },
		Message: "Пожалуйста, введите правильный адрес электронной почты.",
	},
	{
		Field:   "phone",
		Check:   func(d domain.OrderDraft) bool { return phonePattern.MatchString(d.Phone) },
		Message: "Номер телефона должен начинаться с +7 и содержать 11 цифр.",
	},
}

// orderRules: адрес проверяется раньше способа оплаты
var orderRules = []Rule{
	{
		Field:   "address",
		Check:   func(d domain.OrderDraft) bool { return strings.TrimSpace(d.Address) != "" },
		Message: "Необходимо указать адрес доставки.",
	},
	{
		Field:   "payment",
		Check:   func(d domain.OrderDraft) bool { return d.Payment != "" },
		Message: "Выберите способ оплаты.",
	},
}

func run(rules []Rule, d domain.OrderDraft) domain.ValidationResult {
	errs := make([]string, 0, len(rules))
	for _, r := range rules {
		if !r.Check(d) {
			errs = append(errs, r.Message)
		}
	}
	return domain.ValidationResult{Errors: errs, Valid: len(errs) == 0}
}

// Contacts проверяет контактную группу полей (email, телефон)
func Contacts(d domain.OrderDraft) domain.ValidationResult {
	return run(contactRules, d)
}

// Order проверяет группу доставки (адрес, способ оплаты)
func Order(d domain.OrderDraft) domain.ValidationResult {
	return run(orderRules, d)
}
