// Package delivery defines the contract for the application's entry points.
package delivery

import "context"

// Delivery is a long-running entry point such as an HTTP server or an event
// consumer. Each implementation is collected into the "deliveries" group and
// served on its own goroutine; shutdown happens through fx lifecycle hooks.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is canceled.
	Serve(ctx context.Context) error
}
