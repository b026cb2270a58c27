package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A compare request makes two upstream calls per player; each may take up to
	// the configured stats timeout.
	writeTimeout = 90 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
