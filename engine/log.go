// log.go wires the package's diagnostic logger: one Debug line per
// completed iterative-deepening ply. Warnings about unresolved move
// tokens come from the uci package's own logger.
package engine

import "github.com/op/go-logging"

var log = logging.MustGetLogger("engine")

// SetLogBackend installs b as go-logging's default backend, which the
// engine logger (and any other go-logging logger without its own backend)
// writes through. Callers that don't call this get go-logging's default
// stderr backend; cmd/picochess does not call it.
func SetLogBackend(b logging.Backend) {
	logging.SetBackend(b)
}
