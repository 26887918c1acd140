//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"team-chat/domain"
	"team-chat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// It's used for logging and supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry maps live subscriptions to the feeds they watch.
type IRegistry interface {
	GetSinksForFeed(feed domain.FeedKey) []EventSink
	Subscribe(subscriptionID string, feed domain.FeedKey, sink EventSink)
	Unsubscribe(subscriptionID string)
}

// Publisher is the write side of the event bus, used by services.
// Domain events reach feeds and sinks, technical events only reach telemetry.
type Publisher interface {
	Publish(e event.DomainEvent)
	Report(e event.Event)
}

type IOrchestrator interface {
	Publisher
	RegisterSinks(sink ...EventSink)
	Subscribe(subscriptionID string, feed domain.FeedKey, sink EventSink)
	Unsubscribe(subscriptionID string)
	Start(ctx context.Context) error
	Stop()
}
