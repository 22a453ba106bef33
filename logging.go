package notion2bases

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger receives the diagnostic warnings this package emits (unknown
// rollup aggregations and the like). Nothing here is fatal: callers that
// want the warnings elsewhere can swap the logger.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "notion2bases",
})

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "notion2bases",
		})
	}
	logger = l
}
