// Package standby is a broadcast fan-out bystander: every inbound
// gateway event is offered to any number of waiters, each filtered by
// event variant and predicate, so an application can "await the event
// matching P" without wiring its own channel bookkeeping around the
// gateway's single NextEvent loop.
package standby

import (
	"context"
	"sync"

	"github.com/catuhana/rive/event"
)

const subscriberBuffer = 64

// Standby broadcasts inbound events to concurrent waiters. The zero
// value is not usable; construct with New.
type Standby struct {
	mu   sync.Mutex
	subs map[int]chan event.Inbound
	next int
}

// New returns an empty Standby with no subscribers.
func New() *Standby {
	return &Standby{subs: make(map[int]chan event.Inbound)}
}

// Process offers ev to every subscriber currently registered.
// Subscribers attached after this call do not observe ev; a
// subscriber whose buffer is already full (it fell behind) silently
// skips ev rather than blocking the broadcaster, mirroring the
// original Rust implementation's "lagged receivers resume at the
// current tail" behaviour.
func (s *Standby) Process(ev event.Inbound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.subs) == 0 {
		return
	}
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Standby) subscribe() (int, chan event.Inbound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan event.Inbound, subscriberBuffer)
	s.subs[id] = ch
	return id, ch
}

func (s *Standby) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// WaitFor subscribes, then blocks until an event of type T satisfying
// predicate arrives or the context is cancelled. Events that are not
// of type T, and Ts that do not satisfy predicate, are silently
// skipped.
func WaitFor[T event.Inbound](ctx context.Context, s *Standby, predicate func(T) bool) (T, error) {
	id, ch := s.subscribe()
	defer s.unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case ev := <-ch:
			typed, ok := ev.(T)
			if !ok {
				continue
			}
			if predicate != nil && !predicate(typed) {
				continue
			}
			return typed, nil
		}
	}
}
