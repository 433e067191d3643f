package entity

import "regexp"

// emailShape is the local@domain.tld test used to tell emails from usernames.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IdentifierKind classifies a login identifier.
type IdentifierKind string

const (
	IdentifierEmail    IdentifierKind = "email"
	IdentifierUsername IdentifierKind = "username"
)

// LoginIdentifier is the raw string a user types into the login form.
// It is never trimmed or case-folded.
type LoginIdentifier string

// Kind classifies the identifier as an email address or a username.
func (id LoginIdentifier) Kind() IdentifierKind {
	if IsEmailShape(string(id)) {
		return IdentifierEmail
	}

	return IdentifierUsername
}

func (id LoginIdentifier) String() string {
	return string(id)
}

// IsEmailShape reports whether s looks like local@domain.tld.
func IsEmailShape(s string) bool {
	return emailShape.MatchString(s)
}
