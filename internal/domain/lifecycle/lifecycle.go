// Package lifecycle holds shared lifecycle constants for servers and clients.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations.
const DefaultTimeout = 10 * time.Second
