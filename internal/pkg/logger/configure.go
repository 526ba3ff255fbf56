package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"exusiai.dev/hystats/internal/app/appconfig"
)

// Configure replaces the global logger. Logs go to stderr so command output
// on stdout stays machine readable.
func Configure(conf *appconfig.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var level zerolog.Level
	if conf.DevMode {
		level = zerolog.TraceLevel
	} else {
		level = zerolog.InfoLevel
	}

	var stderr io.Writer
	if conf.LogJsonStdout {
		stderr = os.Stderr
	} else {
		stderr = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		}
	}

	writers := []io.Writer{stderr}
	if conf.LogDir != "" {
		_ = os.MkdirAll(conf.LogDir, os.ModePerm)

		logFile, err := os.OpenFile(filepath.Join(conf.LogDir, "hystats.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			log.Panic().Err(err).Msg("failed to open log file")
		}
		writers = append(writers, logFile)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(level)
}
