package services

import (
	"fmt"
	"team-chat/domain"
	"team-chat/errors"
	"team-chat/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// access resolves members and containers and enforces who may read or write them.
// It is shared by the services that need membership checks.
type access struct {
	members    repositories.IMemberRepository
	workspaces repositories.IWorkspaceRepository
}

func (a access) member(workspaceID uuid.UUID, userID string) (domain.Member, error) {
	return a.members.GetMemberByUser(workspaceID, userID)
}

func (a access) admin(workspaceID uuid.UUID, userID string) (domain.Member, error) {
	member, err := a.member(workspaceID, userID)
	if err != nil {
		return domain.Member{}, err
	}
	if !member.IsAdmin() {
		return domain.Member{}, errors.ErrNotAdmin
	}
	return member, nil
}

// container checks that exactly one of channelID and conversationID is set,
// that it lives in workspaceID and that member may post in it.
func (a access) container(workspaceID uuid.UUID, channelID, conversationID *uuid.UUID, member domain.Member) (domain.Container, error) {
	switch {
	case channelID != nil && conversationID == nil:
		channel, err := a.workspaces.GetChannel(*channelID)
		if err != nil {
			return domain.Container{}, err
		}
		if channel.WorkspaceID != workspaceID {
			return domain.Container{}, errors.ErrChannelNotFound
		}
		return domain.ChannelContainer(channel.ID), nil
	case conversationID != nil && channelID == nil:
		conversation, err := a.workspaces.GetConversation(*conversationID)
		if err != nil {
			return domain.Container{}, err
		}
		if conversation.WorkspaceID != workspaceID {
			return domain.Container{}, errors.ErrConversationNotFound
		}
		if !conversation.Includes(member.ID) {
			return domain.Container{}, errors.ErrNotMember
		}
		return domain.ConversationContainer(conversation.ID), nil
	default:
		return domain.Container{}, errors.ErrInvalidContainer
	}
}

// readable checks that member can read messages of c.
func (a access) readable(c domain.Container, member domain.Member) error {
	if c.Kind != domain.ConversationKind {
		return nil
	}
	conversation, err := a.workspaces.GetConversation(c.ID)
	if err != nil {
		return err
	}
	if !conversation.Includes(member.ID) {
		return errors.ErrNotMember
	}
	return nil
}

// workspaceOf returns the workspace owning the given channel or conversation.
func (a access) workspaceOf(channelID, conversationID *uuid.UUID) (uuid.UUID, error) {
	switch {
	case channelID != nil && conversationID == nil:
		channel, err := a.workspaces.GetChannel(*channelID)
		if err != nil {
			return uuid.Nil, err
		}
		return channel.WorkspaceID, nil
	case conversationID != nil && channelID == nil:
		conversation, err := a.workspaces.GetConversation(*conversationID)
		if err != nil {
			return uuid.Nil, err
		}
		return conversation.WorkspaceID, nil
	default:
		return uuid.Nil, errors.ErrInvalidContainer
	}
}

func validateCommand(validate *validator.Validate, cmd any) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	return nil
}
