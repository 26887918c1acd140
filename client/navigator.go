package client

import (
	"sync"

	"github.com/google/uuid"
)

type NavState int

const (
	NavIdle NavState = iota
	NavTransitioning
)

// Navigator highlights a sidebar entry as soon as the user clicks it,
// before the navigation it starts has finished.
//
// Begin moves to Transitioning(target); Commit makes the target current
// and Rollback restores the previous one. Both end in Idle.
type Navigator struct {
	mu      sync.Mutex
	state   NavState
	current uuid.UUID
	target  uuid.UUID
}

func NewNavigator(current uuid.UUID) *Navigator {
	return &Navigator{current: current}
}

// Begin starts a transition. A second Begin before the first settles retargets it.
func (n *Navigator) Begin(target uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = NavTransitioning
	n.target = target
}

// Commit reports whether a transition was pending.
func (n *Navigator) Commit() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != NavTransitioning {
		return false
	}
	n.current = n.target
	n.target = uuid.Nil
	n.state = NavIdle
	return true
}

func (n *Navigator) Rollback() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != NavTransitioning {
		return false
	}
	n.target = uuid.Nil
	n.state = NavIdle
	return true
}

func (n *Navigator) State() NavState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Navigator) Current() uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Highlighted is the pending target while transitioning, the current entry otherwise.
func (n *Navigator) Highlighted() uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state == NavTransitioning {
		return n.target
	}
	return n.current
}
