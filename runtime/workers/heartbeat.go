package workers

import (
	"context"
	"log/slog"
	"time"

	"transit-ops/contract"
	"transit-ops/domain/event"
)

// HeartbeatWorker emits a periodic liveness signal carrying the current
// timestamp and live connection count to every connection. Clients use
// it to detect stalled channels; the worker itself performs no health
// inference and never drops connections.
type HeartbeatWorker struct {
	log             *slog.Logger
	registry        contract.IRegistry
	interval        time.Duration
	deliveryTimeout time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, registry contract.IRegistry,
	interval, deliveryTimeout time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:             log,
		registry:        registry,
		interval:        interval,
		deliveryTimeout: deliveryTimeout,
	}
}

// Run executes the main loop of the worker, broadcasting the liveness
// signal on each tick until the supervision context is canceled.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Beat(ctx)
		}
	}
}

// Beat sends one heartbeat to all live sinks, best effort.
func (w *HeartbeatWorker) Beat(ctx context.Context) {
	beat := event.Heartbeat{
		Timestamp:      time.Now().UTC(),
		ConnectedCount: w.registry.Count(),
	}
	for _, sink := range w.registry.AllSinks() {
		deliveryCtx, cancel := context.WithTimeout(ctx, w.deliveryTimeout)
		if err := sink.Consume(deliveryCtx, beat); err != nil {
			w.log.Debug("Heartbeat lost for one connection", "err", err)
		}
		cancel()
	}
}
