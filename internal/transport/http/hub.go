package http

import (
	"context"
	"sync"

	"livequiz-service/internal/domain"
)

// Hub fans session events out to websocket subscribers, one topic per session.
// It implements app.Notifier: delivery is fire-and-forget and never blocks the
// lifecycle service.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*subscription]struct{}
}

type subscription struct {
	events chan domain.Event
	admin  bool
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[*subscription]struct{}),
	}
}

// Subscribe registers a listener on a session's topic. Admin subscribers also
// receive admins-only events. The caller must invoke the returned cancel
// function to avoid leaks.
func (h *Hub) Subscribe(sessionID string, admin bool) (<-chan domain.Event, func()) {
	sub := &subscription{
		events: make(chan domain.Event, 16),
		admin:  admin,
	}

	h.mu.Lock()
	subs, ok := h.topics[sessionID]
	if !ok {
		subs = make(map[*subscription]struct{})
		h.topics[sessionID] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.topics[sessionID]; ok {
			if _, live := subs[sub]; live {
				delete(subs, sub)
				close(sub.events)
			}
			if len(subs) == 0 {
				delete(h.topics, sessionID)
			}
		}
		h.mu.Unlock()
	}
	return sub.events, cancel
}

// Notify publishes an event to the session's subscribers. Slow subscribers
// have their oldest pending event dropped rather than stalling the publisher.
func (h *Hub) Notify(_ context.Context, event domain.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.topics[event.SessionID] {
		if event.Scope == domain.ScopeAdmins && !sub.admin {
			continue
		}
		select {
		case sub.events <- event:
		default:
			select {
			case <-sub.events:
			default:
			}
			select {
			case sub.events <- event:
			default:
			}
		}
	}
}
