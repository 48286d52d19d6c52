package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"eatgo/internal/actions"
	"eatgo/internal/state"
	"eatgo/internal/state/statetest"
)

// countingStore counts the calls a view makes on the store. Dispatches made
// by a thunk go straight to the recorder and are not counted here.
type countingStore struct {
	*statetest.Recorder

	mu         sync.Mutex
	dispatched []actions.Action
	runs       int
}

func newStore(acts ...actions.Action) *countingStore {
	st := state.Initial()
	for _, a := range acts {
		st = state.Reduce(st, a)
	}
	return &countingStore{Recorder: statetest.NewRecorder(st)}
}

func (s *countingStore) Dispatch(a actions.Action) {
	s.mu.Lock()
	s.dispatched = append(s.dispatched, a)
	s.mu.Unlock()
	s.Recorder.Dispatch(a)
}

func (s *countingStore) Run(ctx context.Context, t state.Thunk) error {
	s.mu.Lock()
	s.runs++
	s.mu.Unlock()
	return s.Recorder.Run(ctx, t)
}

func (s *countingStore) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dispatched) + s.runs
}

func (s *countingStore) viewDispatches() []actions.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]actions.Action(nil), s.dispatched...)
}

// execCmd runs cmd and any batched commands, returning the produced messages.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// doneMsgs filters the thunk results out of msgs.
func doneMsgs(msgs []tea.Msg) []thunkDoneMsg {
	var out []thunkDoneMsg
	for _, m := range msgs {
		if d, ok := m.(thunkDoneMsg); ok {
			out = append(out, d)
		}
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)
