package coutil

import "github.com/rs/zerolog"

// logger traces computation lifecycle transitions (create, finish,
// destroy). Disabled by default; error propagation never logs.
var logger = zerolog.Nop()

// SetLogger installs a logger for lifecycle tracing. Events are emitted
// at trace level. Pass zerolog.Nop to disable tracing again.
func SetLogger(l zerolog.Logger) {
	logger = l
}
