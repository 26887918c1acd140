package workers

import (
	"context"
	"log/slog"
	"team-chat/domain/event"
	"team-chat/observability"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTelemetry_Counts_Restarts(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	counter := event.NewCounter()
	telemetryChan := make(chan event.Event, 1)
	worker := NewTelemetryWorker(log, telemetryChan, []event.Handler{
		event.NewWorkerRestartedAfterPanicHandler(log, counter),
		event.NewChannelCapacityHandler(log, 1),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	telemetryChan <- event.Event{Type: event.RestartedAfterPanicType, Payload: event.WorkerRestartedAfterPanic{WorkerName: "X"}}

	req.Eventually(func() bool {
		return counter.Get(event.RestartedAfterPanicType) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestChannelCapacity_Sample(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	bus := make(chan event.DomainEvent, 4)
	bus <- event.MessageCreated{}
	telemetryChan := make(chan event.Event, 4)
	monitoring := observability.NewMonitoringManager(log)

	worker := NewChannelCapacityWorker(log, []NamedChannel{
		{Name: "domain_events", Channel: bus},
		{Name: "not_a_channel", Channel: 42},
	}, telemetryChan, monitoring, time.Hour)
	worker.sample()

	req.Len(telemetryChan, 1)
	evt := <-telemetryChan
	req.Equal(event.ChannelCapacity{ChannelName: "domain_events", Capacity: 4, Length: 1}, evt.Payload)
	stats := monitoring.GetLatest()
	req.Equal(1, stats.QueueSize)
	req.Equal(4, stats.QueueCapacity)
}
