// Package logger configures the process-wide zerolog logger and hands out
// component loggers tagged with area/layer.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the structured logger.
type Options struct {
	ServiceName string
	Level       string
	Format      string
	Output      io.Writer
}

var base atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	base.Store(&l)
}

// Init replaces the process logger. Call once from main.
func Init(opts Options) {
	var output io.Writer = opts.Output
	if output == nil {
		output = os.Stdout
	}
	if strings.EqualFold(opts.Format, "console") {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	l := zerolog.New(output).
		With().
		Timestamp().
		Str("service", opts.ServiceName).
		Logger().
		Level(ParseLevel(opts.Level))
	base.Store(&l)
}

func ParseLevel(value string) zerolog.Level {
	levelString := strings.ToLower(strings.TrimSpace(value))
	if levelString == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(levelString); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}

// For returns a logger tagged like "[quote][usecase]".
func For(area, layer string) *zerolog.Logger {
	l := base.Load().With().Str("area", area).Str("layer", layer).Logger()
	return &l
}

// Disable silences logging; used by tests.
func Disable() {
	l := zerolog.Nop()
	base.Store(&l)
}
