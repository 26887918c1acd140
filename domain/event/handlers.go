package event

import (
	"fmt"
	"log/slog"
	"team-chat/errors"
)

// WorkerRestartedAfterPanicHandler counts workers recovered by the supervisor.
type WorkerRestartedAfterPanicHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewWorkerRestartedAfterPanicHandler(log *slog.Logger, counter *Counter) *WorkerRestartedAfterPanicHandler {
	return &WorkerRestartedAfterPanicHandler{log: log, counter: counter}
}

func (h *WorkerRestartedAfterPanicHandler) Handle(event Event) {
	if event.Type != RestartedAfterPanicType {
		return
	}
	payload, ok := event.Payload.(WorkerRestartedAfterPanic)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	h.counter.Increment(RestartedAfterPanicType)
	h.log.Debug(fmt.Sprintf("Worker %s restarted after panic, total: %d",
		payload.WorkerName, h.counter.Get(RestartedAfterPanicType)))
}

// ChannelCapacityHandler warns when an internal channel is close to full.
type ChannelCapacityHandler struct {
	log                  *slog.Logger
	lowCapacityThreshold int
}

func NewChannelCapacityHandler(log *slog.Logger, lowCapacityThreshold int) *ChannelCapacityHandler {
	return &ChannelCapacityHandler{log: log, lowCapacityThreshold: lowCapacityThreshold}
}

func (h ChannelCapacityHandler) Handle(event Event) {
	if event.Type != ChannelCapacityType {
		return
	}
	payload, ok := event.Payload.(ChannelCapacity)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	if payload.Capacity <= 0 {
		// unbuffered
		return
	}
	capacityLeft := payload.Capacity - payload.Length
	if capacityLeft <= h.lowCapacityThreshold {
		h.log.Warn("channel close to saturation",
			"channel", payload.ChannelName, "length", payload.Length, "capacity", payload.Capacity)
	}
}

// DroppedEventHandler counts domain events lost because the bus was full.
type DroppedEventHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewDroppedEventHandler(log *slog.Logger, counter *Counter) *DroppedEventHandler {
	return &DroppedEventHandler{log: log, counter: counter}
}

func (h *DroppedEventHandler) Handle(event Event) {
	if event.Type != EventDroppedType {
		return
	}
	if _, ok := event.Payload.(EventDropped); !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	h.counter.Increment(EventDroppedType)
}

// CensoredHandler counts every censored word occurrence.
type CensoredHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewCensoredHandler(log *slog.Logger, counter *Counter) *CensoredHandler {
	return &CensoredHandler{log: log, counter: counter}
}

func (h *CensoredHandler) Handle(event Event) {
	if event.Type != CensorshipHitType {
		return
	}
	payload, ok := event.Payload.(CensorshipHit)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	for range payload.Words {
		h.counter.Increment(CensorshipHitType)
	}
	h.log.Debug("censored words", "words", payload.Words)
}
