// Package lifecycle holds shared constants for process start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks such as the initial
// database ping and the HTTP server drain.
const DefaultTimeout = 30 * time.Second
