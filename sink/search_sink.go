package sink

import (
	"context"
	"log/slog"
	"sync"
	"team-chat/domain"
	"team-chat/domain/event"
	"team-chat/repositories"
	"time"
)

type indexOp struct {
	message repositories.DiskMessage
	remove  bool
}

// SearchSink keeps the search index in sync with message events.
// Operations are buffered and applied in order, either when maxBatch is
// reached or bufferTimeout after the first buffered operation.
type SearchSink struct {
	mu            sync.Mutex
	timer         *time.Timer
	index         repositories.ISearchIndex
	log           *slog.Logger
	ops           []indexOp
	maxBatch      int
	bufferTimeout time.Duration
}

func NewSearchSink(index repositories.ISearchIndex, log *slog.Logger, maxBatch int, bufferTimeout time.Duration) *SearchSink {
	return &SearchSink{
		index:         index,
		log:           log,
		maxBatch:      max(maxBatch, 1),
		bufferTimeout: bufferTimeout,
	}
}

func (s *SearchSink) Consume(_ context.Context, e event.DomainEvent) error {
	var op indexOp
	switch evt := e.(type) {
	case event.MessageCreated:
		op = indexOp{message: toDiskMessage(evt.Message)}
	case event.MessageUpdated:
		op = indexOp{message: toDiskMessage(evt.Message)}
	case event.MessageRemoved:
		op = indexOp{message: toDiskMessage(evt.Message), remove: true}
	default:
		return nil
	}

	s.mu.Lock()
	s.ops = append(s.ops, op)
	if len(s.ops) == 1 && s.timer == nil {
		s.timer = time.AfterFunc(s.bufferTimeout, func() {
			if err := s.Flush(); err != nil {
				s.log.Error("Search index timeout flush failed", "error", err)
			}
		})
	}
	isFull := len(s.ops) >= s.maxBatch
	s.mu.Unlock()

	if isFull {
		return s.Flush()
	}
	return nil
}

// Flush applies every buffered operation. The buffer is swapped under the
// lock so new events keep flowing while the index is written.
func (s *SearchSink) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if len(s.ops) == 0 {
		s.mu.Unlock()
		return nil
	}
	batch := s.ops
	s.ops = make([]indexOp, 0, s.maxBatch)
	s.mu.Unlock()

	var firstErr error
	for _, op := range batch {
		var err error
		if op.remove {
			err = s.index.Remove(op.message.ID)
		} else {
			err = s.index.Index(op.message)
		}
		if err != nil {
			s.log.Warn("Search index operation failed", "id", op.message.ID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	s.log.Debug("Search index flushed", "count", len(batch))
	return firstErr
}

func toDiskMessage(m domain.Message) repositories.DiskMessage {
	return repositories.DiskMessage{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		Container:   m.Container,
		ParentID:    m.ParentID,
		MemberID:    m.MemberID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

