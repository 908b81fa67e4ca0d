package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"transit-ops/contract"
	"transit-ops/observability"
)

// HealthMonitoringWorker samples the server's own process metrics (CPU,
// RSS, status) on a fixed interval and logs them next to the delivery
// counters. It feeds operators, not clients.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	registry       contract.IRegistry
	stats          *observability.Stats
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(log *slog.Logger, registry contract.IRegistry,
	stats *observability.Stats, metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		registry:       registry,
		stats:          stats,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			snapshot := w.stats.Snapshot()
			w.log.Info("Service health",
				"status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"connections", w.registry.Count(),
				"alerts_dispatched", snapshot.AlertsDispatched,
				"events_dropped", snapshot.EventsDropped,
				"handshakes_rejected", snapshot.HandshakesRejected,
			)
		}
	}
}

// selfStats retrieves memory, CPU, and OS status for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
