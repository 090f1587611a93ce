// Package lifecycle holds shared start/stop constants for long-running
// components managed by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of a component.
const DefaultTimeout = 10 * time.Second
