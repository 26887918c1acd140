// Package client is the headless core of the chat client: feed paging,
// panel and navigation state, the submit flow and toast notifications.
// Rendering lives elsewhere and only reads from these types.
package client

import (
	"fmt"
	"net/url"
	"sync"
	"team-chat/errors"

	"github.com/google/uuid"
)

type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelThread
	PanelProfile
)

func (k PanelKind) String() string {
	switch k {
	case PanelThread:
		return "thread"
	case PanelProfile:
		return "profile"
	default:
		return "none"
	}
}

const (
	parentMessageParam = "parentMessageId"
	profileMemberParam = "profileMemberId"
)

// PanelState is the single detail panel slot. ID is a message id for a
// thread and a member id for a profile, uuid.Nil when nothing is open.
type PanelState struct {
	Kind PanelKind
	ID   uuid.UUID
}

// Panel holds at most one open detail panel. Opening one replaces the other.
type Panel struct {
	mu    sync.RWMutex
	state PanelState
}

func NewPanel() *Panel {
	return &Panel{}
}

func (p *Panel) OpenThread(messageID uuid.UUID) {
	p.set(PanelState{Kind: PanelThread, ID: messageID})
}

func (p *Panel) OpenProfile(memberID uuid.UUID) {
	p.set(PanelState{Kind: PanelProfile, ID: memberID})
}

func (p *Panel) Close() {
	p.set(PanelState{})
}

func (p *Panel) Current() PanelState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// ThreadID returns the open thread's root message, if any.
func (p *Panel) ThreadID() (uuid.UUID, bool) {
	state := p.Current()
	return state.ID, state.Kind == PanelThread
}

// ProfileID returns the member whose profile is open, if any.
func (p *Panel) ProfileID() (uuid.UUID, bool) {
	state := p.Current()
	return state.ID, state.Kind == PanelProfile
}

func (p *Panel) set(state PanelState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
}

// Encode writes the panel into query values so it survives a reload.
// An empty set is returned when no panel is open.
func (p *Panel) Encode() url.Values {
	values := url.Values{}
	switch state := p.Current(); state.Kind {
	case PanelThread:
		values.Set(parentMessageParam, state.ID.String())
	case PanelProfile:
		values.Set(profileMemberParam, state.ID.String())
	}
	return values
}

// PanelFromQuery restores a panel written by Encode. Both parameters at
// once are rejected since only one panel can be open.
func PanelFromQuery(values url.Values) (*Panel, error) {
	panel := NewPanel()
	thread, profile := values.Get(parentMessageParam), values.Get(profileMemberParam)
	switch {
	case thread != "" && profile != "":
		return nil, fmt.Errorf("%w: both %s and %s are set", errors.ErrInvalidPanelQuery, parentMessageParam, profileMemberParam)
	case thread != "":
		id, err := uuid.Parse(thread)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrInvalidPanelQuery, err)
		}
		panel.OpenThread(id)
	case profile != "":
		id, err := uuid.Parse(profile)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrInvalidPanelQuery, err)
		}
		panel.OpenProfile(id)
	}
	return panel, nil
}
