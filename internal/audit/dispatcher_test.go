package audit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu      sync.Mutex
	actions []string
	done    chan struct{}
}

func (s *captureSink) Log(action string, _ string, _ *uint, _ any) error {
	s.mu.Lock()
	s.actions = append(s.actions, action)
	s.mu.Unlock()
	select {
	case s.done <- struct{}{}:
	default:
	}
	return nil
}

func TestDispatcherDeliversEvent(t *testing.T) {
	sink := &captureSink{done: make(chan struct{}, 1)}
	d := NewDispatcher(sink)

	id := uint(7)
	d.Dispatch(Event{Action: "cita_created", Entity: "cita", EntityID: &id})

	select {
	case <-sink.done:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.actions, 1)
	assert.Equal(t, "cita_created", sink.actions[0])
}

func TestDispatchNeverBlocks(t *testing.T) {
	// sem worker consumindo, Dispatch tem que descartar ao encher a fila
	d := &Dispatcher{queue: make(chan Event, 1)}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Dispatch(Event{Action: "servicio_added"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}
