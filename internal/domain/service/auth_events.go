package service

import (
	"zephyr/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthEventSubscription is a cancellable stream of auth state changes.
type AuthEventSubscription interface {
	Events() <-chan entity.AuthEvent

	// Follow switches the user whose events are delivered besides the client's own. uuid.Nil follows nobody.
	Follow(userID uuid.UUID)

	Cancel()
}

// AuthEventSource lets session contexts follow the auth state of one browser.
type AuthEventSource interface {
	// Subscribe delivers every event raised by the client and every event of the followed user.
	Subscribe(clientID string, userID uuid.UUID) AuthEventSubscription
}

// AuthEventSink receives auth state changes produced by auth operations.
type AuthEventSink interface {
	Publish(event entity.AuthEvent)
}
