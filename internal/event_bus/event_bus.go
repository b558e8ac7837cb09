package event_bus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType identifies a category of domain events, e.g. "user.deleted".
type EventType string

// Event is a domain event carried across packages without coupling the
// publisher to its subscribers.
type Event struct {
	ctx       context.Context
	Type      EventType
	Timestamp time.Time
	Data      any
}

func NewEvent(ctx context.Context, eventType EventType, data any) Event {
	return Event{
		ctx:       ctx,
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// Context returns the context the event was published under.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

type handlerFunc func(Event) error

// EventBus dispatches events synchronously to subscribed handlers.
// Publish runs every handler even when earlier ones fail and returns the
// collected errors.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[EventType]map[uint64]handlerFunc
	nextID      uint64
}

func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[EventType]map[uint64]handlerFunc)}
}

// Subscribe registers a handler for an event type and returns a function
// that removes the subscription.
func (b *EventBus) Subscribe(eventType EventType, handler func(Event) error) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[eventType] == nil {
		b.subscribers[eventType] = make(map[uint64]handlerFunc)
	}
	id := b.nextID
	b.nextID++
	b.subscribers[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers[eventType], id)
	}
}

// SubscribeTyped registers a handler that receives the event payload already
// asserted to T. An event published with a different payload type is an error.
func SubscribeTyped[T any](b *EventBus, eventType EventType, handler func(ctx context.Context, data T) error) func() {
	return b.Subscribe(eventType, func(e Event) error {
		data, ok := e.Data.(T)
		if !ok {
			return fmt.Errorf("event %s carries %T, handler expects %T", e.Type, e.Data, data)
		}
		return handler(e.Context(), data)
	})
}

// Publish delivers the event to every handler subscribed to its type. A
// panicking handler is recovered and reported as an error so the remaining
// handlers still run.
func (b *EventBus) Publish(e Event) error {
	if err := e.Context().Err(); err != nil {
		return err
	}

	b.mu.RLock()
	handlers := make([]handlerFunc, 0, len(b.subscribers[e.Type]))
	for _, h := range b.subscribers[e.Type] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := b.dispatch(e, h); err != nil {
			log.Errorf("event %s handler failed: %v", e.Type, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *EventBus) dispatch(e Event, h handlerFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event %s handler panicked: %v", e.Type, r)
		}
	}()
	return h(e)
}
