// Package delivery holds the inbound adapters started by the application.
package delivery

import "context"

// Delivery is a server run for the lifetime of the process.
type Delivery interface {
	Serve(ctx context.Context) error
}
