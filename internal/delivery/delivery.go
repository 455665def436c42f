// Package delivery defines the contract every transport entry point
// (HTTP servers, future consumers) fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a server that accepts traffic until its context is cancelled
// or shutdown is requested through the lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
