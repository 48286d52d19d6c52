package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"eatgo/internal/actions"
)

// Dispatcher accepts plain actions.
type Dispatcher interface {
	Dispatch(a actions.Action)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(actions.Action)

// Dispatch calls f(a).
func (f DispatcherFunc) Dispatch(a actions.Action) { f(a) }

// GetState reads the current state.
type GetState func() State

// Thunk is an asynchronous command. It may read state, call out to remote
// services, and dispatch any number of plain actions in order.
type Thunk func(ctx context.Context, dispatch Dispatcher, getState GetState) error

// Listener is notified with the new state after every applied action.
// Listeners run on the dispatching goroutine and must not call Dispatch.
type Listener func(State)

// Store is the single owner of application state.
type Store struct {
	// dispatchMu orders apply+notify so listeners observe states in the
	// order actions were applied.
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     State
	reduce    Reducer
	listeners map[int]Listener
	nextID    int

	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs every dispatched action at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithReducer replaces Reduce, mainly for tests.
func WithReducer(r Reducer) Option {
	return func(s *Store) {
		if r != nil {
			s.reduce = r
		}
	}
}

// NewStore returns a store holding initial.
func NewStore(initial State, opts ...Option) *Store {
	s := &Store{
		state:     initial,
		reduce:    Reduce,
		listeners: make(map[int]Listener),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a to the state and notifies listeners.
func (s *Store) Dispatch(a actions.Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.log.Debug("dispatch", zap.String("type", string(a.Type)))

	s.mu.Lock()
	s.state = s.reduce(s.state, a)
	next := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
}

// Run executes t against this store and returns its error.
func (s *Store) Run(ctx context.Context, t Thunk) error {
	if t == nil {
		return nil
	}
	return t(ctx, s, s.State)
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Compile-time assertion that Store implements Dispatcher.
var _ Dispatcher = (*Store)(nil)
