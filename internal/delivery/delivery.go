// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a runnable server collected into the fx "deliveries" group.
type Delivery interface {
	Serve(ctx context.Context) error
}
