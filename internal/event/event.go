// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       uint64
	listener Listener
}

// Dispatcher — диспетчер событий. Не потокобезопасен: события публикуются
// из того же цикла, что и кадры.
type Dispatcher struct {
	nextID    uint64
	listeners map[EventType][]subscription
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие. The returned function unsubscribes; calling
// it more than once is a no-op.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (dispose func()) {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})

	done := false
	return func() {
		if done {
			return
		}
		done = true
		d.unsubscribe(eventType, id)
	}
}

func (d *Dispatcher) unsubscribe(eventType EventType, id uint64) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			// копия, чтобы не портить срез, по которому может идти Dispatch
			rest := make([]subscription, 0, len(subs)-1)
			rest = append(rest, subs[:i]...)
			rest = append(rest, subs[i+1:]...)
			d.listeners[eventType] = rest
			return
		}
	}
}

// Count returns the number of listeners subscribed to eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}
