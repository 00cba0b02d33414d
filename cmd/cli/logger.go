package cli

import (
	"io"
	"path/filepath"

	"github.com/arnavsurve/rexgen/pkg/config"
	"github.com/arnavsurve/rexgen/pkg/core"
	"github.com/arnavsurve/rexgen/pkg/log"
	"github.com/arnavsurve/rexgen/pkg/log/sinks"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// newRunLogger builds the logger of one run: console output on stderr plus
// an optional JSON file. The returned router must be closed by the caller.
func newRunLogger(stderr io.Writer, cfg *config.Config, debug bool, grammarFile string) (core.Logger, *log.Router, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	if debug {
		level = zerolog.DebugLevel
	}

	logRouter := log.NewRouter(sinks.NewConsoleSink(stderr))
	if cfg.LogFile != "" {
		fileSink, err := sinks.NewFileSink(cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		logRouter.AddSink(fileSink)
	}

	logger := log.New(logRouter, level).With().
		Str("run_id", uuid.New().String()).
		Str("grammar", filepath.Base(grammarFile)).
		Logger()

	return logger, logRouter, nil
}
