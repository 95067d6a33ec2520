package events

import "log"

// On подписывает типизированный обработчик: полезная нагрузка проверяется
// на границе подписки, событие с нагрузкой другого типа до обработчика не
// доходит. Возвращает фактически подписанный Handler для Unsubscribe.
func On[T any](b *Bus, event string, fn func(T)) Handler {
	h := func(payload any) {
		v, ok := payload.(T)
		if !ok {
			log.Printf("events: %q: payload %T, ожидался %T", event, payload, v)
			return
		}
		fn(v)
	}
	b.Subscribe(event, h)
	return h
}
