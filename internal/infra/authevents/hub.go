// Package authevents fans auth state changes out to the session contexts of the affected browser and user.
package authevents

import (
	"log/slog"
	"sync"

	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const subscriberBuffer = 8

type subscriptionSet map[*subscription]struct{}

// Hub is an in-process auth event bus. An event reaches the subscriptions of the
// browser that raised it and the subscriptions following its user, once each.
// Publish never blocks; a subscriber whose buffer is full misses the event.
type Hub struct {
	mu       sync.RWMutex
	byClient map[string]subscriptionSet
	byUser   map[uuid.UUID]subscriptionSet
	logger   *slog.Logger
}

// HubParams holds dependencies for Hub, injected by Fx
type HubParams struct {
	fx.In

	Logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(params HubParams) *Hub {
	return &Hub{
		byClient: make(map[string]subscriptionSet),
		byUser:   make(map[uuid.UUID]subscriptionSet),
		logger:   params.Logger,
	}
}

// Subscribe follows the events of one browser, and of one user unless userID is uuid.Nil,
// until the subscription is cancelled.
func (h *Hub) Subscribe(clientID string, userID uuid.UUID) service.AuthEventSubscription {
	sub := &subscription{
		hub:      h,
		clientID: clientID,
		events:   make(chan entity.AuthEvent, subscriberBuffer),
		live:     true,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if clientID != "" {
		add(h.byClient, clientID, sub)
	}
	h.followLocked(sub, userID)

	return sub
}

// Publish delivers the event to its browser's and its user's subscriptions.
func (h *Hub) Publish(event entity.AuthEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	targets := make(subscriptionSet)
	if event.ClientID != "" {
		for sub := range h.byClient[event.ClientID] {
			targets[sub] = struct{}{}
		}
	}
	if event.UserID != uuid.Nil {
		for sub := range h.byUser[event.UserID] {
			targets[sub] = struct{}{}
		}
	}

	for sub := range targets {
		select {
		case sub.events <- event:
		default:
			h.logger.Warn("Dropping auth event for slow subscriber",
				slog.String("type", string(event.Type)),
				slog.Any("userID", event.UserID),
			)
		}
	}
}

// Subscribers returns the number of live subscriptions following a user.
func (h *Hub) Subscribers(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.byUser[userID])
}

// ClientSubscribers returns the number of live subscriptions of a browser.
func (h *Hub) ClientSubscribers(clientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.byClient[clientID])
}

func (h *Hub) follow(sub *subscription, userID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !sub.live || sub.userID == userID {
		return
	}
	drop(h.byUser, sub.userID, sub)
	h.followLocked(sub, userID)
}

func (h *Hub) followLocked(sub *subscription, userID uuid.UUID) {
	sub.userID = userID
	if userID != uuid.Nil {
		add(h.byUser, userID, sub)
	}
}

func (h *Hub) remove(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !sub.live {
		return
	}
	sub.live = false

	drop(h.byClient, sub.clientID, sub)
	drop(h.byUser, sub.userID, sub)
	close(sub.events)
}

func add[K comparable](index map[K]subscriptionSet, key K, sub *subscription) {
	if index[key] == nil {
		index[key] = make(subscriptionSet)
	}
	index[key][sub] = struct{}{}
}

func drop[K comparable](index map[K]subscriptionSet, key K, sub *subscription) {
	set, ok := index[key]
	if !ok {
		return
	}

	delete(set, sub)
	if len(set) == 0 {
		delete(index, key)
	}
}

// subscription fields other than events are guarded by the hub's lock.
type subscription struct {
	hub      *Hub
	clientID string
	userID   uuid.UUID
	live     bool
	events   chan entity.AuthEvent
	once     sync.Once
}

func (s *subscription) Events() <-chan entity.AuthEvent {
	return s.events
}

func (s *subscription) Follow(userID uuid.UUID) {
	s.hub.follow(s, userID)
}

// Cancel detaches the subscription and closes its channel. Safe to call more than once.
func (s *subscription) Cancel() {
	s.once.Do(func() {
		s.hub.remove(s)
	})
}
