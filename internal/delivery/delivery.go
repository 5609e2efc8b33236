// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a serving transport, started by the application entrypoint and
// stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
