// Package sink adapts the fan-out contract to concrete connections.
package sink

import (
	"context"

	"transit-ops/domain/event"
)

// ConnSink buffers outbound events for one websocket connection. The
// connection's write loop drains Events and owns the actual socket
// writes; fan-out never touches the socket directly.
type ConnSink struct {
	Events chan event.OutboundEvent
}

func NewConnSink(bufferSize int) *ConnSink {
	return &ConnSink{Events: make(chan event.OutboundEvent, bufferSize)}
}

// Consume is called by the dispatcher. A full buffer blocks only until
// the delivery context expires, then the event is dropped for this
// connection; the client recovers state from the next snapshot.
func (s *ConnSink) Consume(ctx context.Context, e event.OutboundEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
