package workers

import (
	"context"
	"log/slog"
	"sync"
	"team-chat/contract"
	"team-chat/domain/event"
	"team-chat/observability"
	"time"
)

// EventFanout broadcasts domain events to in-process consumers:
// permanent sinks (search index, projections) and the subscriptions
// registered for the feeds an event touches.
//
// Delivery is best-effort with no retry. Each sink gets its own goroutine
// and a deadline, so a slow subscriber never stalls the others.
type EventFanout struct {
	log            *slog.Logger
	permanentSinks []contract.EventSink
	registry       contract.IRegistry
	domainEvents   chan event.DomainEvent
	monitoring     *observability.MonitoringManager
	sinkTimeout    time.Duration
	wg             sync.WaitGroup
}

func NewEventFanout(log *slog.Logger,
	permanentSinks []contract.EventSink,
	registry contract.IRegistry,
	domainEvents chan event.DomainEvent,
	monitoring *observability.MonitoringManager,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:            log,
		permanentSinks: permanentSinks,
		registry:       registry,
		domainEvents:   domainEvents,
		monitoring:     monitoring,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	defer w.wg.Wait()
	for {
		select {
		case evt := <-w.domainEvents:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping domain event fanout")
			return nil
		}
	}
}

// Fanout hands the event to every permanent sink and every sink subscribed
// to one of its feeds.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	sinks := append([]contract.EventSink(nil), w.permanentSinks...)
	for _, feed := range evt.Feeds() {
		sinks = append(sinks, w.registry.GetSinksForFeed(feed)...)
		if w.monitoring != nil {
			w.monitoring.AddActivity(eventKind(evt), string(feed))
		}
	}

	for _, sink := range sinks {
		w.wg.Add(1)
		go func(sink contract.EventSink) {
			defer w.wg.Done()
			sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
			defer cancel()
			if err := sink.Consume(sinkCtx, evt); err != nil {
				w.log.Warn("Sink failed to consume event", "error", err)
				if w.monitoring != nil {
					w.monitoring.IncrSinkFailures()
				}
			}
		}(sink)
	}
}

func eventKind(evt event.DomainEvent) string {
	switch evt.(type) {
	case event.MessageCreated:
		return "created"
	case event.MessageUpdated:
		return "updated"
	case event.MessageRemoved:
		return "removed"
	case event.ReactionToggled:
		return "reaction"
	default:
		return "unknown"
	}
}
