package services

import (
	"sort"
	"team-chat/domain"
	"team-chat/errors"
	"team-chat/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// hydrator turns stored messages into what readers see: author, image url,
// reaction aggregates and the summary of the thread below a root message.
// One hydrator lives for one read, so members are only fetched once.
type hydrator struct {
	members   repositories.IMemberRepository
	reactions repositories.IReactionRepository
	messages  repositories.IMessageRepository
	files     FileLocator
	cache     map[uuid.UUID]domain.Member
}

func (s *ChatService) newHydrator() *hydrator {
	return &hydrator{
		members:   s.members,
		reactions: s.reactions,
		messages:  s.messages,
		files:     s.files,
		cache:     make(map[uuid.UUID]domain.Member),
	}
}

func (h *hydrator) member(id uuid.UUID) (domain.Member, error) {
	if m, ok := h.cache[id]; ok {
		return m, nil
	}
	m, err := h.members.GetMember(id)
	if err != nil {
		return domain.Member{}, err
	}
	h.cache[id] = m
	return m, nil
}

func (h *hydrator) hydrate(m repositories.DiskMessage) (domain.Message, error) {
	author, err := h.member(m.MemberID)
	if err != nil {
		return domain.Message{}, err
	}
	message := domain.Message{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		Container:   m.Container,
		ParentID:    m.ParentID,
		MemberID:    m.MemberID,
		AuthorName:  author.Name,
		AuthorImage: author.Image,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.StorageID != "" {
		message.Image = h.files.URL(m.StorageID)
	}

	reactions, err := h.reactions.ListByMessage(m.ID)
	if err != nil {
		return domain.Message{}, err
	}
	message.Reactions = aggregateReactions(reactions)

	if m.ParentID == nil {
		if message.Thread, err = h.thread(m.ID); err != nil {
			return domain.Message{}, err
		}
	}
	return message, nil
}

// hydrateAll skips messages whose author left the workspace.
func (h *hydrator) hydrateAll(stored []repositories.DiskMessage) ([]domain.Message, error) {
	messages := make([]domain.Message, 0, len(stored))
	for _, m := range stored {
		message, err := h.hydrate(m)
		if errors.Is(err, errors.ErrMemberNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (h *hydrator) thread(parentID uuid.UUID) (domain.ThreadSummary, error) {
	stats, err := h.messages.ThreadStats(parentID)
	if err != nil || stats.Count == 0 || stats.LastReply == nil {
		return domain.ThreadSummary{}, err
	}
	summary := domain.ThreadSummary{
		Count:       stats.Count,
		LastReplyAt: &stats.LastReply.CreatedAt,
	}
	if replier, err := h.member(stats.LastReply.MemberID); err == nil {
		summary.LastName = replier.Name
		summary.LastImage = replier.Image
	}
	return summary, nil
}

// aggregateReactions folds raw rows into one entry per value, ordered by
// the first time each value was used.
func aggregateReactions(rows []repositories.DiskReaction) []domain.ReactionAggregate {
	sorted := append([]repositories.DiskReaction(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	grouped := lo.GroupBy(sorted, func(r repositories.DiskReaction) string { return r.Value })
	values := lo.Uniq(lo.Map(sorted, func(r repositories.DiskReaction, _ int) string { return r.Value }))

	return lo.Map(values, func(value string, _ int) domain.ReactionAggregate {
		members := lo.Uniq(lo.Map(grouped[value], func(r repositories.DiskReaction, _ int) uuid.UUID { return r.MemberID }))
		return domain.ReactionAggregate{Value: value, Count: len(members), MemberIDs: members}
	})
}
