// README: Request-status state (Idle, Loading, Success, Error) and its observable holder.
package state

import (
	"context"
	"encoding/json"
	"sync"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// State is one snapshot of a request. Data is set only on Success, Message only on Error.
type State[T any] struct {
	Status  Status `json:"status"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

func Success[T any](data T) State[T] {
	return State[T]{Status: StatusSuccess, Data: data}
}

func Error[T any](message string) State[T] {
	return State[T]{Status: StatusError, Message: message}
}

// Flow holds the latest State and fans it out to subscribers. Slow subscribers
// only ever see the newest value.
type Flow[T any] struct {
	mu   sync.Mutex
	cur  State[T]
	subs map[int]chan State[T]
	next int
}

func NewFlow[T any]() *Flow[T] {
	return &Flow[T]{cur: Idle[T](), subs: make(map[int]chan State[T])}
}

func (f *Flow[T]) Value() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cur
}

func (f *Flow[T]) Set(s State[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cur = s
	for _, ch := range f.subs {
		offer(ch, s)
	}
}

// TryStart moves the flow to Loading unless a request is already in flight.
func (f *Flow[T]) TryStart() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cur.Status == StatusLoading {
		return false
	}
	f.cur = Loading[T]()
	for _, ch := range f.subs {
		offer(ch, f.cur)
	}
	return true
}

func (f *Flow[T]) Reset() {
	f.Set(Idle[T]())
}

// Subscribe delivers the current state immediately and every later one.
// The returned func stops delivery and closes the channel.
func (f *Flow[T]) Subscribe() (<-chan State[T], func()) {
	ch := make(chan State[T], 1)

	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = ch
	ch <- f.cur
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			close(ch)
			f.mu.Unlock()
		})
	}
}

// First blocks until a state matching pred is observed or ctx ends.
func (f *Flow[T]) First(ctx context.Context, pred func(State[T]) bool) (State[T], error) {
	ch, cancel := f.Subscribe()
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return State[T]{}, ctx.Err()
		case s := <-ch:
			if pred(s) {
				return s, nil
			}
		}
	}
}

// Is matches states with the given status, for use with First.
func Is[T any](status Status) func(State[T]) bool {
	return func(s State[T]) bool { return s.Status == status }
}

// Settled matches Success and Error.
func Settled[T any](s State[T]) bool {
	return s.Status == StatusSuccess || s.Status == StatusError
}

// offer replaces any undelivered value with s. Callers hold the flow lock.
func offer[T any](ch chan State[T], s State[T]) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- s:
	default:
	}
}
