// Package delivery defines the contract every transport entry point
// (HTTP server, background worker) fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves until the context is
// cancelled or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
