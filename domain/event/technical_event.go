package event

import "time"

type Type string

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
	EventDroppedType        Type = "EVENT_DROPPED"
	CensorshipHitType       Type = "CENSORSHIP_HIT"
)

// Event is a technical event, never shown to users.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

type EventDropped struct {
	Feeds []string
}

type CensorshipHit struct {
	Words []string
}

// Handler Each kind of technical event has its own handler
type Handler interface {
	Handle(event Event)
}
