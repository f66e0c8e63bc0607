// Package logging configures the process-wide logger (spec §6
// logging: log_lvl, log_dir, log_to_file). The file output is a
// lumberjack writer: it rotates by size (lumberjack's default limit),
// not by date, and keeps rotated files 30 days, compressed. The file
// name carries the date on which Init ran and does not change while
// the process runs. Adapted from the teacher's zerolog-based
// internal/utils/logging, generalized to a single package-level
// *zerolog.Logger rather than bespoke E/W/I/D wrapper functions.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

// Options configures Init.
type Options struct {
	Level    string // "debug", "info", "warn", "error"
	Dir      string
	ToFile   bool
	FileName string // defaults to "log_2006-01-02.log" with the date of Init
}

// Init sets up the package-level logger per Options. Safe to call
// once at startup; subsequent calls replace the logger.
func Init(opts Options) error {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writers []io.Writer
	writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if opts.ToFile {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return err
		}
		name := opts.FileName
		if name == "" {
			name = "log_" + time.Now().Format("2006-01-02") + ".log"
		}
		writers = append(writers, &lumberjack.Logger{
			Filename: filepath.Join(opts.Dir, name),
			MaxAge:   30, // days
			Compress: true,
		})
	}

	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

// L returns the process-wide logger.
func L() *zerolog.Logger {
	return &logger
}
