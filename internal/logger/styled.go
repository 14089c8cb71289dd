package logger

import (
	"fmt"
	"log/slog"

	"github.com/thushan/recap/theme"
)

// StyledLogger wraps slog.Logger with Theme-aware formatting
type StyledLogger struct {
	logger *slog.Logger
	Theme  *theme.Theme
}

func NewStyledLogger(logger *slog.Logger, appTheme *theme.Theme) *StyledLogger {
	if appTheme == nil {
		appTheme = theme.Default()
	}
	return &StyledLogger{
		logger: logger,
		Theme:  appTheme,
	}
}

func (sl *StyledLogger) Debug(msg string, args ...any) {
	sl.logger.Debug(msg, args...)
}

func (sl *StyledLogger) Info(msg string, args ...any) {
	sl.logger.Info(msg, args...)
}

func (sl *StyledLogger) Warn(msg string, args ...any) {
	sl.logger.Warn(msg, args...)
}

func (sl *StyledLogger) Error(msg string, args ...any) {
	sl.logger.Error(msg, args...)
}

func (sl *StyledLogger) InfoWithCount(msg string, count int, args ...any) {
	styledMsg := fmt.Sprintf("%s %s", msg, sl.Theme.Counts.Sprint("(", count, ")"))
	sl.logger.Info(styledMsg, args...)
}

func (sl *StyledLogger) InfoWithModel(msg string, model string, args ...any) {
	styledMsg := fmt.Sprintf("%s %s", msg, sl.Theme.Model.Sprint(model))
	sl.logger.Info(styledMsg, args...)
}

func (sl *StyledLogger) DebugWithModel(msg string, model string, args ...any) {
	styledMsg := fmt.Sprintf("%s %s", msg, sl.Theme.Model.Sprint(model))
	sl.logger.Debug(styledMsg, args...)
}

// WarnWithStatus highlights an HTTP status, 503 gets the warming colour since it means the model is loading
func (sl *StyledLogger) WarnWithStatus(msg string, status int, args ...any) {
	style := sl.Theme.StatusFailed
	if status == 503 {
		style = sl.Theme.StatusWarming
	}
	styledMsg := fmt.Sprintf("%s %s", msg, style.Sprint(status))
	sl.logger.Warn(styledMsg, args...)
}

func (sl *StyledLogger) With(args ...any) *StyledLogger {
	return &StyledLogger{
		logger: sl.logger.With(args...),
		Theme:  sl.Theme,
	}
}

func NewWithTheme(cfg *Config) (*slog.Logger, *StyledLogger, func(), error) {
	logger, cleanup, err := New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	appTheme := theme.GetTheme(cfg.Theme)
	styledLogger := NewStyledLogger(logger, appTheme)

	return logger, styledLogger, cleanup, nil
}

// NewDiscard is for tests and for code paths that run before logging is configured
func NewDiscard() *StyledLogger {
	return NewStyledLogger(slog.New(slog.DiscardHandler), theme.Default())
}
