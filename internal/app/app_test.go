package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thushan/recap/internal/config"
	"github.com/thushan/recap/internal/core/constants"
	"github.com/thushan/recap/internal/core/domain"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type call struct {
	model  string
	prompt string
}

// fakeClient replays canned replies in order and records what it was asked
type fakeClient struct {
	mu      sync.Mutex
	replies []string
	calls   []call
	err     error
}

func (f *fakeClient) Query(_ context.Context, model, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{model: model, prompt: prompt})
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", errors.New("no reply scripted")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func writeNotes(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runApp(t *testing.T, cfg *config.Config, client *fakeClient, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := NewWithClient(cfg, client, nil, strings.NewReader(input), &out)
	err := a.Run(context.Background())
	return ansi.ReplaceAllString(out.String(), ""), err
}

const quizReply = `1. What is the sun? a) planet b) star c) moon d) comet (Answer: b)
2. What is the sun made of? a) rock b) ice c) plasma d) water (Answer: c)
3. Which is a star? a) sun b) earth c) mars d) venus (Answer: a)`

func TestRun_EndToEnd(t *testing.T) {
	path := writeNotes(t, "The sun is a star.\n")
	client := &fakeClient{replies: []string{
		"The sun is a star, a ball of plasma.",
		"sun, star, plasma",
		quizReply,
	}}

	cfg := config.DefaultConfig()
	out, err := runApp(t, cfg, client, path+"\n3\n")
	require.NoError(t, err)

	require.Len(t, client.calls, 3)
	for _, c := range client.calls {
		assert.Equal(t, constants.DefaultModel, c.model)
	}
	assert.Equal(t, "Summarize this text briefly:\nThe sun is a star.", client.calls[0].prompt)
	assert.Equal(t, "Extract 3 descriptive keywords from this text:\nThe sun is a star, a ball of plasma.\nKeywords:", client.calls[1].prompt)
	assert.Equal(t, "Generate 3 multiple-choice quiz questions with 4 options each based on this text:\n"+
		"The sun is a star, a ball of plasma.\nInclude the correct answer for each question.", client.calls[2].prompt)

	summaryAt := strings.Index(out, "\nSummary:\nThe sun is a star, a ball of plasma.\n")
	keywordsAt := strings.Index(out, "\nKeywords:\nsun, star, plasma\n")
	quizAt := strings.Index(out, "\nGenerated questions:\n"+quizReply+"\n")
	require.NotEqual(t, -1, summaryAt, out)
	require.NotEqual(t, -1, keywordsAt, out)
	require.NotEqual(t, -1, quizAt, out)
	assert.Less(t, summaryAt, keywordsAt)
	assert.Less(t, keywordsAt, quizAt)

	assert.True(t, strings.HasPrefix(out, "Enter the .txt file name: "))
	assert.Contains(t, out, "How many keywords should be generated?: ")
}

func TestRun_StatusLinesStayOffResults(t *testing.T) {
	path := writeNotes(t, "The sun is a star.")
	client := &fakeClient{replies: []string{"s", "k", "q"}}

	var out, status bytes.Buffer
	a := NewWithClient(config.DefaultConfig(), client, nil, strings.NewReader(path+"\n3\n"), &out).WithStatus(&status)
	require.NoError(t, a.Run(context.Background()))

	lines := ansi.ReplaceAllString(status.String(), "")
	assert.Contains(t, lines, "Read "+path+" (18B, 5 words)\n")
	assert.Contains(t, lines, "Done in ")
	assert.NotContains(t, out.String(), "Read ")
	assert.NotContains(t, out.String(), "Done in ")
}

func TestRun_AppendsTxtSuffix(t *testing.T) {
	path := writeNotes(t, "Short note.")
	client := &fakeClient{replies: []string{"s", "k", "q"}}

	_, err := runApp(t, config.DefaultConfig(), client, strings.TrimSuffix(path, ".txt")+"\n1\n")
	require.NoError(t, err)
	assert.Equal(t, "Summarize this text briefly:\nShort note.", client.calls[0].prompt)
}

func TestRun_EmbeddedRemoteErrorsAreShown(t *testing.T) {
	path := writeNotes(t, "The sun is a star.")
	client := &fakeClient{replies: []string{"Error: 503 - loading", "Error: 503 - loading", "Error: 503 - loading"}}

	out, err := runApp(t, config.DefaultConfig(), client, path+"\n2\n")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Error: 503 - loading"))
	// keywords and quiz are still derived from whatever the summary call returned
	assert.Contains(t, client.calls[1].prompt, "Error: 503 - loading")
}

func TestRun_MissingFile(t *testing.T) {
	client := &fakeClient{}
	missing := filepath.Join(t.TempDir(), "absent")

	_, err := runApp(t, config.DefaultConfig(), client, missing+"\n")
	require.Error(t, err)

	var ferr *domain.InputFileError
	assert.ErrorAs(t, err, &ferr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "File '"+missing+".txt' was not found!")
	assert.Empty(t, client.calls)
}

func TestRun_InvalidKeywordCount(t *testing.T) {
	path := writeNotes(t, "The sun is a star.")

	for _, answer := range []string{"three", "0", "-2", ""} {
		t.Run("answer "+answer, func(t *testing.T) {
			client := &fakeClient{replies: []string{"summary"}}
			_, err := runApp(t, config.DefaultConfig(), client, path+"\n"+answer+"\n")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "positive whole number")
			assert.Len(t, client.calls, 1)
		})
	}
}

func TestRun_NoInput(t *testing.T) {
	_, err := runApp(t, config.DefaultConfig(), &fakeClient{}, "")
	require.Error(t, err)
	assert.Equal(t, "no input received", err.Error())
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	path := writeNotes(t, "The sun is a star.")
	client := &fakeClient{replies: []string{"s", "k", "q"}}

	_, err := runApp(t, config.DefaultConfig(), client, path+"\n4")
	require.NoError(t, err)
	assert.Contains(t, client.calls[1].prompt, "Extract 4 descriptive")
}

func TestRun_ClientFailureStops(t *testing.T) {
	path := writeNotes(t, "The sun is a star.")
	client := &fakeClient{err: context.Canceled}

	_, err := runApp(t, config.DefaultConfig(), client, path+"\n3\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, client.calls, 1)
}

func TestRun_LatvianLocale(t *testing.T) {
	path := writeNotes(t, "Saule ir zvaigzne.")
	client := &fakeClient{replies: []string{"kopsavilkums", "saule", "jautājumi"}}

	cfg := config.DefaultConfig()
	cfg.Output.Locale = constants.LocaleLatvian

	out, err := runApp(t, cfg, client, path+"\n1\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Ievadi .txt faila nosaukumu: "))
	assert.Contains(t, out, "\nKopsavilkums:\nkopsavilkums\n")
	assert.Contains(t, out, "\nAtslēgvārdi:\nsaule\n")
	assert.Contains(t, out, "\nĢenerētie jautājumi:\njautājumi\n")
}

func TestNew_RequiresCredential(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := New(cfg, nil, strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
	assert.Contains(t, err.Error(), "HF_TOKEN or HUGGINGFACE_API_KEY")

	cfg.Output.Locale = constants.LocaleLatvian
	_, err = New(cfg, nil, strings.NewReader(""), io.Discard)
	assert.Contains(t, err.Error(), "nav atrasts .env failā")
}

func TestNew_FullStack(t *testing.T) {
	var (
		mu      sync.Mutex
		prompts []string
	)
	replies := []string{
		`[{"generated_text":"  The sun is a star, a ball of plasma. "}]`,
		`{"generated_text":"sun, star, plasma"}`,
		`{"error":"Rate limit reached"}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		assert.Equal(t, "/models/test/model", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		prompts = append(prompts, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(replies[len(prompts)-1]))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.Credential = domain.Credential("hf_test")
	cfg.Inference.BaseURL = srv.URL + "/models"
	cfg.Inference.Model = "test/model"
	cfg.Inference.Timeout = 5 * time.Second
	cfg.Output.ErrorPrefix = "Oops"

	path := writeNotes(t, "The sun is a star.")
	var out bytes.Buffer
	a, err := New(cfg, nil, strings.NewReader(path+"\n3\n"), &out)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	text := ansi.ReplaceAllString(out.String(), "")
	assert.Contains(t, text, "\nSummary:\nThe sun is a star, a ball of plasma.\n")
	assert.Contains(t, text, "\nKeywords:\nsun, star, plasma\n")
	assert.Contains(t, text, "\nGenerated questions:\nOops: Rate limit reached\n")

	require.Len(t, prompts, 3)
	assert.JSONEq(t, `{"inputs":"Summarize this text briefly:\nThe sun is a star."}`, prompts[0])
}

func TestInferenceConfig_ErrorPrefix(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, "Error", inferenceConfig(cfg, MessagesFor(cfg.Output.Locale)).ErrorPrefix)

	cfg.Output.Locale = constants.LocaleLatvian
	assert.Equal(t, "Kļūda", inferenceConfig(cfg, MessagesFor(cfg.Output.Locale)).ErrorPrefix)

	cfg.Output.ErrorPrefix = "Failure"
	ic := inferenceConfig(cfg, MessagesFor(cfg.Output.Locale))
	assert.Equal(t, "Failure", ic.ErrorPrefix)
	assert.Equal(t, cfg.Inference.MaxAttempts, ic.MaxAttempts)
	assert.Equal(t, cfg.Inference.ColdStartDelay, ic.ColdStartDelay)
}
