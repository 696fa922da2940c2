// Package delivery defines the contract implemented by every inbound transport.
package delivery

import "context"

// Delivery is a server that accepts inbound requests until the context ends.
type Delivery interface {
	// Serve starts accepting requests and blocks until the server stops.
	Serve(ctx context.Context) error
}
