// Package lifecycle holds shared lifecycle constants for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful-shutdown waits.
const DefaultTimeout = 10 * time.Second
