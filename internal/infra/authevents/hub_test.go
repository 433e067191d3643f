package authevents

import (
	"io"
	"log/slog"
	"testing"

	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(HubParams{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func requireEvent(t *testing.T, sub service.AuthEventSubscription) entity.AuthEvent {
	t.Helper()

	select {
	case event := <-sub.Events():
		return event
	default:
		require.FailNow(t, "expected an event")

		return entity.AuthEvent{}
	}
}

func requireNoEvent(t *testing.T, sub service.AuthEventSubscription) {
	t.Helper()

	select {
	case event := <-sub.Events():
		assert.Failf(t, "unexpected event", "received %v", event)
	default:
	}
}

func TestHub_DeliversOnlyToTheUser(t *testing.T) {
	hub := newTestHub()
	alice, bob := uuid.New(), uuid.New()

	aliceSub := hub.Subscribe("browser-a", alice)
	bobSub := hub.Subscribe("browser-b", bob)
	defer aliceSub.Cancel()
	defer bobSub.Cancel()

	hub.Publish(entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: alice})

	event := requireEvent(t, aliceSub)
	assert.Equal(t, entity.AuthEventSignedOut, event.Type)
	assert.Nil(t, event.Session)
	requireNoEvent(t, bobSub)
}

func TestHub_DeliversToTheRaisingClient(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	anonymous := hub.Subscribe("browser-a", uuid.Nil)
	otherBrowser := hub.Subscribe("browser-b", uuid.Nil)
	defer anonymous.Cancel()
	defer otherBrowser.Cancel()

	hub.Publish(entity.AuthEvent{
		Type:     entity.AuthEventSignedIn,
		UserID:   userID,
		ClientID: "browser-a",
		Session:  &entity.Session{AccessToken: "a"},
	})

	event := requireEvent(t, anonymous)
	assert.True(t, event.FromClient("browser-a"))
	requireNoEvent(t, otherBrowser)
}

func TestHub_ClientAndUserMatchDeliverOnce(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	sub := hub.Subscribe("browser-a", userID)
	defer sub.Cancel()

	hub.Publish(entity.AuthEvent{Type: entity.AuthEventTokenRefreshed, UserID: userID, ClientID: "browser-a"})

	requireEvent(t, sub)
	requireNoEvent(t, sub)
}

func TestHub_Follow(t *testing.T) {
	hub := newTestHub()
	alice, bob := uuid.New(), uuid.New()

	sub := hub.Subscribe("browser-a", uuid.Nil)
	defer sub.Cancel()
	require.Equal(t, 0, hub.Subscribers(alice))

	sub.Follow(alice)
	assert.Equal(t, 1, hub.Subscribers(alice))
	hub.Publish(entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: alice, ClientID: "browser-z"})
	requireEvent(t, sub)

	sub.Follow(bob)
	assert.Equal(t, 0, hub.Subscribers(alice))
	assert.Equal(t, 1, hub.Subscribers(bob))
	hub.Publish(entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: alice, ClientID: "browser-z"})
	requireNoEvent(t, sub)

	sub.Follow(uuid.Nil)
	assert.Equal(t, 0, hub.Subscribers(bob))
	assert.Equal(t, 1, hub.ClientSubscribers("browser-a"))
}

func TestHub_FansOutToEverySubscription(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	first := hub.Subscribe("browser-a", userID)
	second := hub.Subscribe("browser-b", userID)
	defer first.Cancel()
	defer second.Cancel()

	hub.Publish(entity.AuthEvent{Type: entity.AuthEventTokenRefreshed, UserID: userID, Session: &entity.Session{AccessToken: "a"}})

	assert.Equal(t, entity.AuthEventTokenRefreshed, (<-first.Events()).Type)
	assert.Equal(t, entity.AuthEventTokenRefreshed, (<-second.Events()).Type)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	sub := hub.Subscribe("", userID)
	defer sub.Cancel()

	for range subscriberBuffer + 3 {
		hub.Publish(entity.AuthEvent{Type: entity.AuthEventUserUpdated, UserID: userID})
	}

	assert.Len(t, sub.Events(), subscriberBuffer)
}

func TestHub_Cancel(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	sub := hub.Subscribe("browser-a", userID)
	require.Equal(t, 1, hub.Subscribers(userID))
	require.Equal(t, 1, hub.ClientSubscribers("browser-a"))

	sub.Cancel()
	sub.Cancel()
	sub.Follow(uuid.New())

	assert.Equal(t, 0, hub.Subscribers(userID))
	assert.Equal(t, 0, hub.ClientSubscribers("browser-a"))
	_, ok := <-sub.Events()
	assert.False(t, ok)

	hub.Publish(entity.AuthEvent{Type: entity.AuthEventSignedIn, UserID: userID, ClientID: "browser-a"})
}
