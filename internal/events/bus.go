package events

import (
	"log"
	"reflect"
	"sync"
)

// Wildcard подписывает обработчик на все события шины.
// Используется только для отладки и логирования, не для доменной логики.
const Wildcard = "*"

// Handler обработчик события с произвольной полезной нагрузкой
type Handler func(payload any)

// Event то, что получает wildcard-подписчик: имя события и его нагрузка
type Event struct {
	Name    string
	Payload any
}

// Bus именованная шина publish/subscribe. Доставка синхронная, в порядке
// подписки; вложенный Publish из обработчика доставляется до конца прежде,
// чем продолжится внешний обработчик.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler

	// PanicHandler вызывается, когда обработчик паникует. Паника одного
	// обработчика не мешает остальным подписчикам получить событие.
	PanicHandler func(event string, recovered any)
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		PanicHandler: func(event string, recovered any) {
			log.Printf("events: handler for %q panicked: %v", event, recovered)
		},
	}
}

// Subscribe регистрирует обработчик события. Один и тот же обработчик
// можно подписать несколько раз — он будет вызван столько же раз.
func (b *Bus) Subscribe(event string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], h)
}

// Unsubscribe снимает первую подписку обработчика на событие.
// Обработчик идентифицируется по указателю на функцию.
func (b *Bus) Unsubscribe(event string, h Handler) {
	target := reflect.ValueOf(h).Pointer()
	b.mu.Lock()
	defer b.mu.Unlock()
	hs := b.handlers[event]
	for i, cur := range hs {
		if reflect.ValueOf(cur).Pointer() == target {
			b.handlers[event] = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// Publish синхронно доставляет событие всем подписчикам точного имени,
// затем wildcard-подписчикам (те получают Event с именем и нагрузкой).
// Снимок списка обработчиков берётся под блокировкой, сама доставка идёт
// без неё, поэтому обработчик может публиковать события и управлять
// подписками без взаимоблокировки.
func (b *Bus) Publish(event string, payload any) {
	b.mu.RLock()
	exact := append([]Handler(nil), b.handlers[event]...)
	var all []Handler
	if event != Wildcard {
		all = append([]Handler(nil), b.handlers[Wildcard]...)
	}
	b.mu.RUnlock()

	for _, h := range exact {
		b.dispatch(event, payload, h)
	}
	for _, h := range all {
		b.dispatch(event, Event{Name: event, Payload: payload}, h)
	}
}

func (b *Bus) dispatch(event string, payload any, h Handler) {
	defer func() {
		if r := recover(); r != nil && b.PanicHandler != nil {
			b.PanicHandler(event, r)
		}
	}()
	h(payload)
}
