package service

import (
	"context"
)

// AccountCleanupEvent asks the worker to remove a provider account that has no profile row.
type AccountCleanupEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Reason    string `json:"reason"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountCleanupEvent publishes an account cleanup event for async processing
	PublishAccountCleanupEvent(ctx context.Context, event *AccountCleanupEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
