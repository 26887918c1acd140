// Package runtime handles event propagation between services, sinks and subscriptions.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"team-chat/contract"
	"team-chat/domain"
	"team-chat/domain/event"
	"team-chat/observability"
	"team-chat/runtime/workers"
	"time"

	"github.com/samber/lo"
)

type Orchestrator struct {
	mu                sync.Mutex
	log               *slog.Logger
	permanentSinks    []contract.EventSink
	supervisor        contract.ISupervisor
	registry          contract.IRegistry
	monitoring        *observability.MonitoringManager
	counter           *event.Counter
	domainEvents      chan event.DomainEvent
	telemetryEvents   chan event.Event
	sinkTimeout       time.Duration
	metricInterval    time.Duration
	heartbeatInterval time.Duration
	lowCapacity       int
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, monitoring *observability.MonitoringManager,
	telemetryEvents chan event.Event, bufferSize int,
	sinkTimeout, metricInterval, heartbeatInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:               log,
		supervisor:        supervisor,
		registry:          registry,
		monitoring:        monitoring,
		counter:           event.NewCounter(),
		domainEvents:      make(chan event.DomainEvent, bufferSize),
		telemetryEvents:   telemetryEvents,
		sinkTimeout:       sinkTimeout,
		metricInterval:    metricInterval,
		heartbeatInterval: heartbeatInterval,
		lowCapacity:       max(bufferSize/10, 1),
	}
}

// RegisterSinks adds sinks receiving every domain event. Must be called before Start.
func (o *Orchestrator) RegisterSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Publish never blocks: when the bus is full the event is dropped and
// subscribers catch up on their next fetch.
func (o *Orchestrator) Publish(e event.DomainEvent) {
	select {
	case o.domainEvents <- e:
		o.monitoring.IncrEventsPublished()
	default:
		o.monitoring.IncrEventsDropped()
		feeds := lo.Map(e.Feeds(), func(f domain.FeedKey, _ int) string { return string(f) })
		o.log.Warn(fmt.Sprintf("Domain event channel full, dropping event for %v", feeds))
		o.Report(event.Event{
			Type:      event.EventDroppedType,
			CreatedAt: time.Now().UTC(),
			Payload:   event.EventDropped{Feeds: feeds},
		})
	}
}

func (o *Orchestrator) Report(e event.Event) {
	select {
	case o.telemetryEvents <- e:
	default:
		o.log.Debug("Observability telemetry event lost")
	}
}

func (o *Orchestrator) Subscribe(subscriptionID string, feed domain.FeedKey, sink contract.EventSink) {
	o.registry.Subscribe(subscriptionID, feed, sink)
	o.monitoring.AddSubscriptions(1)
}

func (o *Orchestrator) Unsubscribe(subscriptionID string) {
	o.registry.Unsubscribe(subscriptionID)
	o.monitoring.AddSubscriptions(-1)
}

// Counter exposes telemetry counts, mostly for the inspector and tests.
func (o *Orchestrator) Counter() *event.Counter {
	return o.counter
}

// Start registers every worker to the supervisor and blocks until it stops.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	sinks := append([]contract.EventSink(nil), o.permanentSinks...)
	o.mu.Unlock()

	fanout := workers.NewEventFanout(o.log, sinks, o.registry, o.domainEvents, o.monitoring, o.sinkTimeout)
	telemetry := workers.NewTelemetryWorker(o.log, o.telemetryEvents, []event.Handler{
		event.NewWorkerRestartedAfterPanicHandler(o.log, o.counter),
		event.NewChannelCapacityHandler(o.log, o.lowCapacity),
		event.NewDroppedEventHandler(o.log, o.counter),
		event.NewCensoredHandler(o.log, o.counter),
	})
	capacity := workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
		{Name: "domain_events", Channel: o.domainEvents},
		{Name: "telemetry_events", Channel: o.telemetryEvents},
	}, o.telemetryEvents, o.monitoring, o.metricInterval)
	heartbeat := workers.NewHeartbeatWorker(o.log, o.monitoring, o.heartbeatInterval)

	o.supervisor.Add(fanout, telemetry, capacity, heartbeat)

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// Stop cancels the supervised context; Start returns once workers are done.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
