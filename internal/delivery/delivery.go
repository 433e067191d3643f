// Package delivery holds the servers that expose the application.
package delivery

import "context"

// Delivery is a server started by the fx app and stopped through its lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
