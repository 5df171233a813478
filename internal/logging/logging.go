// Package logging builds the application logger. Output goes to a rotating
// file because the terminal belongs to the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const appName = "wavelet"

// Rotation defaults.
const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Options configures the logger.
type Options struct {
	Level      string // debug, info, warn, error
	File       string // defaults to $XDG_STATE_HOME/wavelet/wavelet.log
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultFile returns the default log file path.
func DefaultFile() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// New creates a JSON file logger with rotation.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	path := opts.File
	if path == "" {
		path = DefaultFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    orDefault(opts.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, defaultMaxAgeDays),
	})

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), writer, level)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// ParseLevel parses a level name; empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
