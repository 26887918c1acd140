package workers

import (
	"context"
	"log/slog"
	"os"
	"team-chat/observability"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker refreshes the monitoring snapshot with the process stats
// and logs it at every tick.
type HeartbeatWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitoring *observability.MonitoringManager, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, monitoring: monitoring, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats := w.monitoring.Refresh(rss, cpu, status)
			w.log.Info("heartbeat",
				"rss_bytes", stats.RssBytes,
				"cpu_percent", stats.CpuPercent,
				"status", stats.PidStatus,
				"messages_created", stats.MessagesCreated,
				"events_published", stats.EventsPublished,
				"events_dropped", stats.EventsDropped,
				"subscriptions", stats.Subscriptions,
				"queue", stats.QueueSize,
			)
		}
	}
}

// getSelfStats retrieves memory, CPU and OS status of the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
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
