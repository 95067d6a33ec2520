package events

// Announcer даёт сущности право публиковать доменные события в одну
// конкретную шину. Это дисциплинированная обёртка, а не прокси: никакой
// автоматики отслеживания изменений нет, сущность анонсирует событие явно
// после каждой значимой мутации.
type Announcer struct {
	bus *Bus
}

func NewAnnouncer(bus *Bus) Announcer {
	return Announcer{bus: bus}
}

// Announce пересылает событие в шину. Нулевой Announcer молчит.
func (a Announcer) Announce(event string, payload any) {
	if a.bus != nil {
		a.bus.Publish(event, payload)
	}
}

// Bus возвращает шину, к которой привязан Announcer
func (a Announcer) Bus() *Bus { return a.bus }
