//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/servicemocks/mock_chat_service.go -package=servicemocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"team-chat/contract"
	"team-chat/domain"
	"team-chat/domain/event"
	"team-chat/errors"
	"team-chat/observability"
	"team-chat/repositories"
	"team-chat/sink"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const DefaultPageSize = 30

type IChatService interface {
	CreateMessage(ctx context.Context, cmd domain.CreateMessageCommand) (uuid.UUID, error)
	UpdateMessage(ctx context.Context, cmd domain.UpdateMessageCommand) error
	RemoveMessage(ctx context.Context, cmd domain.RemoveMessageCommand) error
	ToggleReaction(ctx context.Context, cmd domain.ToggleReactionCommand) error
	GetMessages(ctx context.Context, cmd domain.GetMessagesCommand) (domain.Page, error)
	GetMessage(ctx context.Context, userID string, id uuid.UUID) (domain.Message, error)
	SearchMessages(ctx context.Context, cmd domain.SearchMessagesCommand) ([]domain.Message, error)
	Subscribe(ctx context.Context, cmd domain.GetMessagesCommand) (*Subscription, error)
}

// ICensor masks forbidden words and reports which ones were hit.
type ICensor interface {
	Censor(s string) (string, []string)
}

// FileLocator resolves the uploaded files attached to messages.
type FileLocator interface {
	// CheckAttachment fails unless storageID is a file uploaded by userID.
	CheckAttachment(storageID, userID string) error
	URL(storageID string) string
}

type ChatConfig struct {
	MaxBodyLength int
	MaxPageSize   int
}

type ChatService struct {
	log        *slog.Logger
	validate   *validator.Validate
	messages   repositories.IMessageRepository
	reactions  repositories.IReactionRepository
	members    repositories.IMemberRepository
	access     access
	search     repositories.ISearchIndex
	censor     ICensor
	files      FileLocator
	bus        contract.IOrchestrator
	monitoring *observability.MonitoringManager
	config     ChatConfig
}

func NewChatService(
	log *slog.Logger,
	messages repositories.IMessageRepository,
	reactions repositories.IReactionRepository,
	members repositories.IMemberRepository,
	workspaces repositories.IWorkspaceRepository,
	search repositories.ISearchIndex,
	censor ICensor,
	files FileLocator,
	bus contract.IOrchestrator,
	monitoring *observability.MonitoringManager,
	config ChatConfig) *ChatService {
	if config.MaxPageSize <= 0 {
		config.MaxPageSize = 100
	}
	return &ChatService{
		log:        log,
		validate:   validator.New(),
		messages:   messages,
		reactions:  reactions,
		members:    members,
		access:     access{members: members, workspaces: workspaces},
		search:     search,
		censor:     censor,
		files:      files,
		bus:        bus,
		monitoring: monitoring,
		config:     config,
	}
}

// CreateMessage posts a root message or a reply.
// A reply must target a live root message of the same workspace and either
// name the same container or none, in which case it inherits the parent's.
func (s *ChatService) CreateMessage(_ context.Context, cmd domain.CreateMessageCommand) (uuid.UUID, error) {
	if err := validateCommand(s.validate, cmd); err != nil {
		return uuid.Nil, err
	}
	if err := s.checkBody(cmd.Body); err != nil {
		return uuid.Nil, err
	}
	member, err := s.access.member(cmd.WorkspaceID, cmd.UserID)
	if err != nil {
		return uuid.Nil, err
	}

	var container domain.Container
	if cmd.ParentID != nil {
		container, err = s.replyContainer(cmd, member)
	} else {
		container, err = s.access.container(cmd.WorkspaceID, cmd.ChannelID, cmd.ConversationID, member)
	}
	if err != nil {
		return uuid.Nil, err
	}
	if cmd.Image != "" {
		if err := s.files.CheckAttachment(cmd.Image, cmd.UserID); err != nil {
			return uuid.Nil, fmt.Errorf("attach image: %w", err)
		}
	}

	createdAt := cmd.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	message := repositories.DiskMessage{
		ID:          uuid.New(),
		WorkspaceID: cmd.WorkspaceID,
		Container:   container,
		ParentID:    cmd.ParentID,
		MemberID:    member.ID,
		Body:        s.moderate(cmd.Body),
		StorageID:   cmd.Image,
		CreatedAt:   createdAt,
	}
	if err := s.messages.StoreMessage(message); err != nil {
		return uuid.Nil, fmt.Errorf("store message: %w", err)
	}
	s.monitoring.IncrMessagesCreated()
	s.publish(message, func(m domain.Message) event.DomainEvent {
		return event.MessageCreated{Message: m, At: createdAt}
	})
	return message.ID, nil
}

func (s *ChatService) replyContainer(cmd domain.CreateMessageCommand, member domain.Member) (domain.Container, error) {
	parent, err := s.messages.GetMessage(*cmd.ParentID)
	if err != nil {
		return domain.Container{}, err
	}
	if parent.Removed {
		return domain.Container{}, errors.ErrMessageRemoved
	}
	if parent.WorkspaceID != cmd.WorkspaceID {
		return domain.Container{}, errors.ErrMessageNotFound
	}
	if parent.ParentID != nil {
		return domain.Container{}, errors.ErrNestedThread
	}
	if cmd.ChannelID != nil || cmd.ConversationID != nil {
		container, err := s.access.container(cmd.WorkspaceID, cmd.ChannelID, cmd.ConversationID, member)
		if err != nil {
			return domain.Container{}, err
		}
		if container != parent.Container {
			return domain.Container{}, errors.ErrInvalidContainer
		}
		return container, nil
	}
	if err := s.access.readable(parent.Container, member); err != nil {
		return domain.Container{}, err
	}
	return parent.Container, nil
}

// UpdateMessage lets the author change the body of a live message.
func (s *ChatService) UpdateMessage(_ context.Context, cmd domain.UpdateMessageCommand) error {
	if err := validateCommand(s.validate, cmd); err != nil {
		return err
	}
	if err := s.checkBody(cmd.Body); err != nil {
		return err
	}
	message, member, err := s.liveMessage(cmd.ID, cmd.UserID)
	if err != nil {
		return err
	}
	if member.ID != message.MemberID {
		return errors.ErrNotAuthor
	}

	updatedAt := cmd.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	message.Body = s.moderate(cmd.Body)
	message.UpdatedAt = &updatedAt
	if err := s.messages.UpdateMessage(message); err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	s.publish(message, func(m domain.Message) event.DomainEvent {
		return event.MessageUpdated{Message: m, At: updatedAt}
	})
	return nil
}

// RemoveMessage soft-removes a message. Only its author or a workspace admin can.
// Removal is terminal.
func (s *ChatService) RemoveMessage(_ context.Context, cmd domain.RemoveMessageCommand) error {
	if err := validateCommand(s.validate, cmd); err != nil {
		return err
	}
	message, member, err := s.liveMessage(cmd.ID, cmd.UserID)
	if err != nil {
		return err
	}
	if member.ID != message.MemberID && !member.IsAdmin() {
		return errors.ErrNotAuthor
	}

	message.Removed = true
	if err := s.messages.UpdateMessage(message); err != nil {
		return fmt.Errorf("remove message: %w", err)
	}
	s.bus.Publish(event.MessageRemoved{Message: toDomain(message), At: time.Now().UTC()})
	return nil
}

// ToggleReaction adds the member's reaction for the value, or removes it.
func (s *ChatService) ToggleReaction(_ context.Context, cmd domain.ToggleReactionCommand) error {
	if err := validateCommand(s.validate, cmd); err != nil {
		return err
	}
	message, member, err := s.liveMessage(cmd.MessageID, cmd.UserID)
	if err != nil {
		return err
	}

	at := cmd.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	added, err := s.reactions.Toggle(message.ID, member.ID, cmd.Value, at)
	if err != nil {
		return fmt.Errorf("toggle reaction: %w", err)
	}
	s.publish(message, func(m domain.Message) event.DomainEvent {
		return event.ReactionToggled{Message: m, MemberID: member.ID, Value: cmd.Value, Added: added, At: at}
	})
	return nil
}

// GetMessages returns one page of a root or thread feed, newest first.
func (s *ChatService) GetMessages(_ context.Context, cmd domain.GetMessagesCommand) (domain.Page, error) {
	if err := validateCommand(s.validate, cmd); err != nil {
		return domain.Page{}, err
	}
	feed, err := s.resolveFeed(cmd.UserID, cmd.Query)
	if err != nil {
		return domain.Page{}, err
	}
	return s.page(feed, cmd.Cursor, s.pageSize(cmd.NumItems))
}

func (s *ChatService) page(feed domain.FeedKey, cursor string, limit int) (domain.Page, error) {
	stored, next, isDone, err := s.messages.ListFeed(feed, cursor, limit)
	if err != nil {
		return domain.Page{}, err
	}
	messages, err := s.newHydrator().hydrateAll(stored)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Messages: messages, Cursor: next, IsDone: isDone}, nil
}

// GetMessage returns a live message, typically the root of an open thread.
func (s *ChatService) GetMessage(_ context.Context, userID string, id uuid.UUID) (domain.Message, error) {
	message, member, err := s.liveMessage(id, userID)
	if err != nil {
		if errors.Is(err, errors.ErrMessageRemoved) {
			return domain.Message{}, errors.ErrMessageNotFound
		}
		return domain.Message{}, err
	}
	if err := s.access.readable(message.Container, member); err != nil {
		return domain.Message{}, err
	}
	hydrated, err := s.newHydrator().hydrate(message)
	if errors.Is(err, errors.ErrMemberNotFound) {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	return hydrated, err
}

// SearchMessages runs a full-text query over the live messages of a workspace.
// Hits in conversations the user is not part of are dropped.
func (s *ChatService) SearchMessages(ctx context.Context, cmd domain.SearchMessagesCommand) ([]domain.Message, error) {
	if err := validateCommand(s.validate, cmd); err != nil {
		return nil, err
	}
	member, err := s.access.member(cmd.WorkspaceID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	ids, err := s.search.Search(ctx, repositories.SearchQuery{
		WorkspaceID: cmd.WorkspaceID,
		Terms:       cmd.Terms,
		Lang:        cmd.Lang,
		Limit:       cmd.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	stored := make([]repositories.DiskMessage, 0, len(ids))
	for _, id := range ids {
		message, err := s.messages.GetMessage(id)
		if errors.Is(err, errors.ErrMessageNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if message.Removed || message.WorkspaceID != cmd.WorkspaceID {
			continue
		}
		if s.access.readable(message.Container, member) != nil {
			continue
		}
		stored = append(stored, message)
	}
	return s.newHydrator().hydrateAll(stored)
}

// Subscribe opens a live view of the first page of a feed.
// The caller reads Snapshot once, then again after every signal on Changes,
// and must Close the subscription when done.
func (s *ChatService) Subscribe(_ context.Context, cmd domain.GetMessagesCommand) (*Subscription, error) {
	if err := validateCommand(s.validate, cmd); err != nil {
		return nil, err
	}
	feed, err := s.resolveFeed(cmd.UserID, cmd.Query)
	if err != nil {
		return nil, err
	}
	limit := s.pageSize(cmd.NumItems)
	subscription := NewSubscription(uuid.NewString(), feed, sink.NewSubscriptionSink(),
		func() (domain.Page, error) {
			return s.page(feed, "", limit)
		},
		s.bus.Unsubscribe)
	s.bus.Subscribe(subscription.ID, feed, subscription.sink)
	s.log.Debug("Subscription opened", "id", subscription.ID, "feed", feed)
	return subscription, nil
}

// resolveFeed checks that the user can read the queried feed and returns its key.
func (s *ChatService) resolveFeed(userID string, q domain.Query) (domain.FeedKey, error) {
	if q.ParentID != nil {
		parent, member, err := s.messageAndMember(*q.ParentID, userID)
		if err != nil {
			return "", err
		}
		if err := s.access.readable(parent.Container, member); err != nil {
			return "", err
		}
		return domain.ThreadFeed(parent.ID), nil
	}
	workspaceID, err := s.access.workspaceOf(q.ChannelID, q.ConversationID)
	if err != nil {
		return "", err
	}
	member, err := s.access.member(workspaceID, userID)
	if err != nil {
		return "", err
	}
	container, err := s.access.container(workspaceID, q.ChannelID, q.ConversationID, member)
	if err != nil {
		return "", err
	}
	return domain.RootFeed(container), nil
}

func (s *ChatService) messageAndMember(id uuid.UUID, userID string) (repositories.DiskMessage, domain.Member, error) {
	message, err := s.messages.GetMessage(id)
	if err != nil {
		return repositories.DiskMessage{}, domain.Member{}, err
	}
	member, err := s.access.member(message.WorkspaceID, userID)
	if err != nil {
		return repositories.DiskMessage{}, domain.Member{}, err
	}
	return message, member, nil
}

func (s *ChatService) liveMessage(id uuid.UUID, userID string) (repositories.DiskMessage, domain.Member, error) {
	message, member, err := s.messageAndMember(id, userID)
	if err != nil {
		return repositories.DiskMessage{}, domain.Member{}, err
	}
	if message.Removed {
		return repositories.DiskMessage{}, domain.Member{}, errors.ErrMessageRemoved
	}
	return message, member, nil
}

func (s *ChatService) checkBody(body string) error {
	if s.config.MaxBodyLength > 0 && utf8.RuneCountInString(body) > s.config.MaxBodyLength {
		return errors.ErrBodyTooLong
	}
	return nil
}

func (s *ChatService) pageSize(n int) int {
	if n <= 0 {
		return DefaultPageSize
	}
	return min(n, s.config.MaxPageSize)
}

func (s *ChatService) moderate(body string) string {
	if s.censor == nil {
		return body
	}
	censored, hits := s.censor.Censor(body)
	if len(hits) > 0 {
		s.bus.Report(event.Event{
			Type:      event.CensorshipHitType,
			CreatedAt: time.Now().UTC(),
			Payload:   event.CensorshipHit{Words: hits},
		})
	}
	return censored
}

// publish hydrates the message for the event. A failed hydration still
// publishes the bare message so subscribers refetch.
func (s *ChatService) publish(message repositories.DiskMessage, build func(domain.Message) event.DomainEvent) {
	hydrated, err := s.newHydrator().hydrate(message)
	if err != nil {
		s.log.Warn("Unable to hydrate message for event", "id", message.ID, "error", err)
		hydrated = toDomain(message)
	}
	s.bus.Publish(build(hydrated))
}

func toDomain(m repositories.DiskMessage) domain.Message {
	return domain.Message{
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

// Subscription is a live view on one feed.
type Subscription struct {
	ID          string
	Feed        domain.FeedKey
	sink        *sink.SubscriptionSink
	fetch       func() (domain.Page, error)
	unsubscribe func(subscriptionID string)
	closeOnce   sync.Once
}

func NewSubscription(id string, feed domain.FeedKey, sink *sink.SubscriptionSink,
	fetch func() (domain.Page, error), unsubscribe func(subscriptionID string)) *Subscription {
	return &Subscription{ID: id, Feed: feed, sink: sink, fetch: fetch, unsubscribe: unsubscribe}
}

// Snapshot fetches the current first page of the feed.
func (s *Subscription) Snapshot() (domain.Page, error) {
	return s.fetch()
}

// Changes signals that the feed changed since the last signal was read.
func (s *Subscription) Changes() <-chan struct{} {
	return s.sink.Changes()
}

func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.unsubscribe(s.ID)
	})
}
