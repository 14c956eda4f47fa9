// Package logging configures the zerolog logger the commands share.
package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger on stderr. The configured level name is the
// baseline; each verbosity step lowers the threshold one level, so on the
// default warn baseline `-v` enables info and `-vv` debug.
func New(levelName string, verbosity int) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level %q: %w", levelName, err)
	}

	for i := 0; i < verbosity && level > zerolog.TraceLevel; i++ {
		level--
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
