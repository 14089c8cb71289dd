package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/thushan/recap/internal/util"
	"github.com/thushan/recap/theme"
)

type Config struct {
	// Writer receives terminal output, defaults to stderr so stdout only carries results
	Writer     io.Writer
	Level      string
	LogDir     string
	Theme      string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	FileOutput bool
}

const (
	DefaultLogOutputName = "recap.log"

	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// New builds the terminal logger, teeing into a rotating file when FileOutput is set.
// The returned func closes the file and is always safe to call.
func New(cfg *Config) (*slog.Logger, func(), error) {
	level := parseLevel(cfg.Level)

	out := cfg.Writer
	if out == nil {
		out = os.Stderr
	}

	terminal := createTerminalHandler(out, level, theme.GetTheme(cfg.Theme))
	if !cfg.FileOutput {
		return slog.New(terminal), func() {}, nil
	}

	file, closeFile, err := createFileHandler(cfg, level)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(&teeHandler{terminal: terminal, file: file}), closeFile, nil
}

// createTerminalHandler only styles output when out is a colour-capable terminal,
// stdout may be redirected while stderr is not and vice versa
func createTerminalHandler(out io.Writer, level slog.Level, appTheme *theme.Theme) slog.Handler {
	f, ok := out.(*os.File)
	if !ok || !util.ShouldUseColorsFor(f) {
		// pipes, redirects, CI and tests get JSON
		return slog.NewJSONHandler(out, jsonOptions(level))
	}

	plogger := pterm.DefaultLogger.
		WithLevel(convertToPTermLevel(level)).
		WithWriter(out).
		WithFormatter(pterm.LogFormatterColorful).
		WithKeyStyles(map[string]pterm.Style{
			"level": *appTheme.Info,
			"msg":   *appTheme.Info,
			"time":  *appTheme.Muted,
		})
	return pterm.NewSlogHandler(plogger)
}

func createFileHandler(cfg *Config, level slog.Level) (slog.Handler, func(), error) {
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory %s: %w", cfg.LogDir, err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, DefaultLogOutputName),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	}
	return slog.NewJSONHandler(rotator, jsonOptions(level)), func() { _ = rotator.Close() }, nil
}

func jsonOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: level, ReplaceAttr: plainAttr}
}

// plainAttr renames the timestamp and strips terminal styling, themed helpers
// colour parts of the message which must not reach JSON or the log file
func plainAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.String("timestamp", a.Value.Time().Format("2006-01-02 15:04:05"))
	}

	switch a.Value.Kind() {
	case slog.KindString:
		if str := a.Value.String(); strings.ContainsRune(str, '\x1b') {
			return slog.String(a.Key, stripAnsiCodes(str))
		}
	case slog.KindAny:
		return slog.String(a.Key, fmt.Sprintf("%v", a.Value.Any()))
	}
	return a
}

// teeHandler sends every record to the terminal and the rotating file
type teeHandler struct {
	terminal slog.Handler
	file     slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.terminal.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	if h.terminal.Enabled(ctx, record.Level) {
		errs = append(errs, h.terminal.Handle(ctx, record.Clone()))
	}
	if h.file.Enabled(ctx, record.Level) {
		errs = append(errs, h.file.Handle(ctx, record))
	}
	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{terminal: h.terminal.WithAttrs(attrs), file: h.file.WithAttrs(attrs)}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{terminal: h.terminal.WithGroup(name), file: h.file.WithGroup(name)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// IsValidLevel reports whether parseLevel understands the level without falling back
func IsValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelWarning, LogLevelError:
		return true
	}
	return false
}

func convertToPTermLevel(level slog.Level) pterm.LogLevel {
	switch level {
	case slog.LevelDebug:
		return pterm.LogLevelTrace
	case slog.LevelInfo:
		return pterm.LogLevelInfo
	case slog.LevelWarn:
		return pterm.LogLevelWarn
	case slog.LevelError:
		return pterm.LogLevelError
	default:
		return pterm.LogLevelWarn
	}
}
