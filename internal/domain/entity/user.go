// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is the account as the identity provider reports it.
type AuthUser struct {
	ID       uuid.UUID    // The identity provider's user id, shared with the profile row.
	Email    string       // The account email, the only identifier the provider signs in with.
	Metadata UserMetadata // Data attached to the account at signup.
}

// UserMetadata is the application data stored on the provider account.
type UserMetadata struct {
	Username string
}

// UserProfile is the application's row in the users table, one-to-one with an AuthUser.
type UserProfile struct {
	ID        uuid.UUID // Equal to AuthUser.ID.
	Username  string    // Unique, case-sensitive.
	Email     string
	CreatedAt time.Time
	Bio       *string
	AvatarURL *string
}
