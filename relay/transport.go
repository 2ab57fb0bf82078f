package relay

import (
	"context"
	"errors"
	"sync"
)

// ErrTransportClosed indicates a send or receive on a closed transport.
var ErrTransportClosed = errors.New("transport closed")

// Transport carries sealed envelopes to the peer context.
type Transport interface {
	// Send delivers one envelope. It blocks until the envelope is
	// accepted, ctx is done, or the transport closes.
	Send(ctx context.Context, env Envelope) error
}

// MemoryTransport is a channel-backed Transport for in-process wiring and
// tests. Envelopes arrive at Receive in send order.
type MemoryTransport struct {
	ch        chan Envelope
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryTransport builds a MemoryTransport buffering up to size
// envelopes.
func NewMemoryTransport(size int) *MemoryTransport {
	return &MemoryTransport{
		ch:   make(chan Envelope, size),
		done: make(chan struct{}),
	}
}

// Send delivers env to the in-process queue.
func (t *MemoryTransport) Send(ctx context.Context, env Envelope) error {
	select {
	case <-t.done:
		return ErrTransportClosed
	default:
	}

	select {
	case t.ch <- env:
		return nil
	case <-t.done:
		return ErrTransportClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive blocks for the next envelope.
func (t *MemoryTransport) Receive(ctx context.Context) (Envelope, error) {
	select {
	case env := <-t.ch:
		return env, nil
	case <-t.done:
		return Envelope{}, ErrTransportClosed
	case <-ctx.Done():
		return Envelope{}, ctx.Err()
	}
}

// Close stops the transport. Envelopes still buffered may be dropped.
func (t *MemoryTransport) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}
