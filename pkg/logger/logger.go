package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Leveled JSON logger used across the dashboard service.
// Provides Debug/Info/Warn/Error/Fatal variants and Init(level).

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stdout).With().Timestamp().Str("service", "settleview-api").Logger()
)

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		log = log.Level(zerolog.DebugLevel)
	case "warn", "warning":
		log = log.Level(zerolog.WarnLevel)
	case "error":
		log = log.Level(zerolog.ErrorLevel)
	case "fatal":
		log = log.Level(zerolog.FatalLevel)
	default:
		log = log.Level(zerolog.InfoLevel)
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debugf(format string, v ...interface{}) { l := current(); l.Debug().Msgf(format, v...) }
func Infof(format string, v ...interface{})  { l := current(); l.Info().Msgf(format, v...) }
func Warnf(format string, v ...interface{})  { l := current(); l.Warn().Msgf(format, v...) }
func Errorf(format string, v ...interface{}) { l := current(); l.Error().Msgf(format, v...) }
func Fatalf(format string, v ...interface{}) { l := current(); l.Fatal().Msgf(format, v...) }

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	lvl := current().GetLevel()
	if lvl == zerolog.NoLevel || lvl == zerolog.TraceLevel {
		return "info"
	}
	return lvl.String()
}
