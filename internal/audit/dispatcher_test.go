package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (m *memorySink) Log(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("db down")
	}
	m.events = append(m.events, ev)
	return nil
}

func TestDispatcher_DeliversAllOnClose(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zerolog.Nop())

	id := uint(3)
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{UsuarioID: &id, Action: "avaliacao_criada", Entity: "avaliacao"})
	}
	d.Close()

	assert.Len(t, sink.events, 10)
	assert.Equal(t, "avaliacao_criada", sink.events[0].Action)
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &memorySink{fail: true}
	d := NewDispatcher(sink, zerolog.Nop())

	d.Dispatch(Event{Action: "a"})
	d.Close()

	assert.Empty(t, sink.events)
	assert.NotPanics(t, d.Close)
}
