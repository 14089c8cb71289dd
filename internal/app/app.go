package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"

	"github.com/thushan/recap/internal/adapter/inference"
	"github.com/thushan/recap/internal/config"
	"github.com/thushan/recap/internal/core/ports"
	"github.com/thushan/recap/internal/logger"
	"github.com/thushan/recap/pkg/format"
)

// Application drives one interactive session: file in, three sections out.
type Application struct {
	config   *config.Config
	client   ports.InferenceClient
	logger   *logger.StyledLogger
	prompter *prompter
	render   *renderer
	status   io.Writer
	messages Messages
}

// New refuses to start without a credential so no prompt is shown for nothing
func New(cfg *config.Config, log *logger.StyledLogger, in io.Reader, out io.Writer) (*Application, error) {
	msgs := MessagesFor(cfg.Output.Locale)
	if err := cfg.RequireCredential(); err != nil {
		return nil, &userError{message: msgs.MissingCredential, err: err}
	}
	if log == nil {
		log = logger.NewDiscard()
	}

	client := inference.NewClient(inferenceConfig(cfg, msgs), log)
	return NewWithClient(cfg, client, log, in, out), nil
}

// NewWithClient skips the credential check, the caller owns the client
func NewWithClient(cfg *config.Config, client ports.InferenceClient, log *logger.StyledLogger, in io.Reader, out io.Writer) *Application {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Application{
		config:   cfg,
		client:   client,
		logger:   log,
		prompter: newPrompter(in, out, log.Theme.Prompt),
		render:   &renderer{out: out, theme: log.Theme},
		status:   io.Discard,
		messages: MessagesFor(cfg.Output.Locale),
	}
}

// WithStatus sends progress lines (input size, elapsed time) to w, kept off the
// results writer so redirected output only holds the three sections
func (a *Application) WithStatus(w io.Writer) *Application {
	a.status = w
	return a
}

// Run asks for the file, then summarises it, extracts keywords from the summary
// and builds a quiz from the summary. Remote failures show up in the sections.
func (a *Application) Run(ctx context.Context) error {
	start := time.Now()
	model := a.config.Inference.Model

	name, err := a.ask(a.messages.AskFilename)
	if err != nil {
		return err
	}

	path := ResolveInputPath(name)
	text, err := ReadInput(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &userError{message: fmt.Sprintf(a.messages.FileNotFound, path), err: err}
		}
		return err
	}
	size := units.HumanSize(float64(len(text)))
	words := humanize.Comma(int64(len(strings.Fields(text))))
	a.logger.Info("Loaded input", "path", path, "size", size, "words", words)
	a.render.status(a.status, fmt.Sprintf(a.messages.InputLoaded, path, size, words))

	summary, err := a.client.Query(ctx, model, SummaryPrompt(text))
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if err := a.render.section(a.messages.SummaryHeading, summary); err != nil {
		return err
	}

	answer, err := a.ask("\n" + a.messages.AskKeywordCount)
	if err != nil {
		return err
	}
	count, ok := ParseKeywordCount(answer)
	if !ok {
		return fmt.Errorf(a.messages.InvalidKeywordCount, answer)
	}
	a.logger.InfoWithCount("Keywords requested", count)

	keywords, err := a.client.Query(ctx, model, KeywordsPrompt(summary, count))
	if err != nil {
		return fmt.Errorf("keywords: %w", err)
	}
	if err := a.render.section(a.messages.KeywordsHeading, keywords); err != nil {
		return err
	}

	quiz, err := a.client.Query(ctx, model, QuizPrompt(summary))
	if err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := a.render.section(a.messages.QuizHeading, quiz); err != nil {
		return err
	}

	elapsed := format.Duration(time.Since(start))
	a.logger.Info("Recap complete", "model", model, "elapsed", elapsed)
	a.render.status(a.status, fmt.Sprintf(a.messages.Done, elapsed))
	return nil
}

// userError shows the localised message while keeping the cause for errors.Is/As
type userError struct {
	err     error
	message string
}

func (e *userError) Error() string { return e.message }
func (e *userError) Unwrap() error { return e.err }

func (a *Application) ask(question string) (string, error) {
	answer, err := a.prompter.ask(question)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errors.New(a.messages.NoInput)
		}
		return "", err
	}
	return answer, nil
}
