package telemetry

import (
	"os"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

// Logger is the module's logging handle: a generic logiface.Logger over the
// closed logiface.Event interface, so callers outside this package never
// need to name the zerolog-specific event type.
type Logger = logiface.Logger[logiface.Event]

// New builds a Logger writing NDJSON to w at the given minimum level. A nil
// w defaults to os.Stderr.
func New(w *os.File, level logiface.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	z := izerolog.L.WithZerolog(zerolog.New(w).With().Timestamp().Logger())
	return izerolog.L.New(z, izerolog.L.WithLevel(level)).Logger()
}

// Default is a package-level Logger at Informational level, used by
// components that aren't handed one explicitly (checker, when
// Options.Logger is nil).
var Default = New(os.Stderr, logiface.LevelInformational)
