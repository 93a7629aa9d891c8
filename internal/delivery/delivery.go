// Package delivery defines the transports the application serves on.
package delivery

import "context"

// Delivery is a long-running transport endpoint, started once at boot.
type Delivery interface {
	Serve(ctx context.Context) error
}
