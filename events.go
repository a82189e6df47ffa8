package hyper

import "sync"

type EventHandler func(data interface{})

type EventEmitter struct {
	events map[EventType][]EventHandler
	mutex  sync.RWMutex
}

func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		events: make(map[EventType][]EventHandler),
	}
}

func (e *EventEmitter) On(event EventType, handler EventHandler) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.events[event] = append(e.events[event], handler)
}

func (e *EventEmitter) Emit(event EventType, data interface{}) {
	e.mutex.RLock()
	handlers := e.events[event]
	e.mutex.RUnlock()

	for _, handler := range handlers {
		handler(data)
	}
}
