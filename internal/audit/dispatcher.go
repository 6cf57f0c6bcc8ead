package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	UsuarioID *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Publisher é o que os casos de uso enxergam.
type Publisher interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event
	done  chan struct{}
	once  sync.Once
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia: o evento é descartado, a requisição segue
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
