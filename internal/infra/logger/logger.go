package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	// Out receives log records; defaults to os.Stderr.
	Out   io.Writer
	Debug bool
	// Format is "text" (default) or "json".
	Format string
}

var (
	mu        sync.RWMutex
	global    = slog.New(slog.NewTextHandler(io.Discard, nil))
	sessionID string
)

// Setup installs the process logger. Warnings and errors are always emitted;
// --debug lowers the level and adds source locations. Every record carries
// the session id of this invocation.
func Setup(cfg Config) (func() error, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	switch cfg.Format {
	case "", "text":
		h = slog.NewTextHandler(out, opts)
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		setDiscard()
		return nil, errors.New("unsupported log format " + cfg.Format + " (expected text|json)")
	}

	id := uuid.NewString()
	l := slog.New(h).With("session", id)

	mu.Lock()
	global = l
	sessionID = id
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	cleanup := func() error {
		setDiscard()
		return nil
	}
	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SessionID identifies the current invocation in log records.
func SessionID() string {
	mu.RLock()
	defer mu.RUnlock()
	return sessionID
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
	sessionID = ""
}
