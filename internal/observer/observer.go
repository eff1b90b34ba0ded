// Package observer provides the in-process listener dispatch used by the use
// cases: handlers subscribe to a canonical event name at wiring time and are
// notified sequentially when an event fires.
package observer

import (
	"context"
	"errors"
	"sync"

	"macrolib/internal/domain"
)

// Handler consumes a dispatched event. A non-nil error is reported back to
// the notifier but does not stop the fan-out.
type Handler func(ctx context.Context, e domain.Event) error

// Observer is a simple name-keyed dispatcher. Subscription normally happens
// during application wiring; the lock keeps late subscribers and concurrent
// notifies safe regardless.
type Observer struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// New creates an empty Observer.
func New() *Observer {
	return &Observer{handlers: make(map[string][]Handler)}
}

// On subscribes a handler to an event name. Nil handlers are ignored.
func (o *Observer) On(eventName string, h Handler) {
	if h == nil {
		return
	}
	o.mu.Lock()
	o.handlers[eventName] = append(o.handlers[eventName], h)
	o.mu.Unlock()
}

// Notify dispatches the event to every handler subscribed under eventName, in
// subscription order. All handlers run even when earlier ones fail; the
// joined error is returned. An event name nobody subscribed to is not an
// error.
func (o *Observer) Notify(ctx context.Context, eventName string, e domain.Event) error {
	o.mu.RLock()
	hs := append([]Handler(nil), o.handlers[eventName]...)
	o.mu.RUnlock()
	var errs []error
	for _, h := range hs {
		if err := h(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribers returns how many handlers are registered under eventName.
func (o *Observer) Subscribers(eventName string) int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.handlers[eventName])
}
