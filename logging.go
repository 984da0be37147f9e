package tokengraph

import "github.com/rs/zerolog"

// log is the package logger. It discards everything until a caller installs
// a real logger via SetLogger; the library never writes to stderr on its own.
var log = zerolog.Nop()

// SetLogger installs the logger used for codec warnings and resolution
// tracing. Pass zerolog.Nop() to silence the package again.
func SetLogger(l zerolog.Logger) {
	log = l
}
