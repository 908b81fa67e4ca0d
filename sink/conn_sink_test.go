package sink

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"transit-ops/domain/event"
)

func TestConnSink_Buffers_Until_Drained(t *testing.T) {
	req := require.New(t)
	s := NewConnSink(2)

	// When delivering within capacity
	req.NoError(s.Consume(context.Background(), event.Pong{}))
	req.NoError(s.Consume(context.Background(), event.Heartbeat{ConnectedCount: 1}))

	// Then the write loop drains them in order
	req.Equal("pong", (<-s.Events).Name())
	req.Equal("heartbeat", (<-s.Events).Name())
}

func TestConnSink_Full_Buffer_Drops_On_Timeout(t *testing.T) {
	req := require.New(t)
	s := NewConnSink(1)
	req.NoError(s.Consume(context.Background(), event.Pong{}))

	// When the buffer is full and nobody drains it
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.Consume(ctx, event.Pong{})

	// Then the delivery gives up instead of blocking fan-out forever
	req.ErrorIs(err, context.DeadlineExceeded)
}
