package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thushan/recap/internal/core/domain"
)

func TestResolveInputPath(t *testing.T) {
	tests := map[string]string{
		"notes":          "notes.txt",
		"notes.txt":      "notes.txt",
		"  notes  ":      "notes.txt",
		"dir/notes":      "dir/notes.txt",
		"notes.md":       "notes.md.txt",
		"archive.txt.gz": "archive.txt.gz.txt",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ResolveInputPath(in))
		})
	}
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()

	t.Run("trims and strips BOM", func(t *testing.T) {
		path := filepath.Join(dir, "bom.txt")
		require.NoError(t, os.WriteFile(path, []byte("\ufeff  Saule ir zvaigzne.\n\n"), 0o600))

		text, err := ReadInput(path)
		require.NoError(t, err)
		assert.Equal(t, "Saule ir zvaigzne.", text)
	})

	t.Run("rejects invalid utf-8", func(t *testing.T) {
		path := filepath.Join(dir, "binary.txt")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o600))

		_, err := ReadInput(path)
		var ferr *domain.InputFileError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, path, ferr.Path)
	})

	t.Run("rejects directories", func(t *testing.T) {
		_, err := ReadInput(dir)
		var ferr *domain.InputFileError
		assert.ErrorAs(t, err, &ferr)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ReadInput(filepath.Join(dir, "nope.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseKeywordCount(t *testing.T) {
	valid := map[string]int{"1": 1, " 5 ": 5, "12": 12}
	for in, want := range valid {
		n, ok := ParseKeywordCount(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, n)
	}

	for _, in := range []string{"", "0", "-1", "2.5", "five", "3 keywords"} {
		_, ok := ParseKeywordCount(in)
		assert.False(t, ok, in)
	}
}

func TestPrompter_StylesQuestionOnly(t *testing.T) {
	var out bytes.Buffer
	style := pterm.NewStyle(pterm.FgGreen)
	p := newPrompter(strings.NewReader("notes\r\n"), &out, style)

	answer, err := p.ask("\nEnter the .txt file name: ")
	require.NoError(t, err)
	assert.Equal(t, "notes", answer)
	assert.Equal(t, "\n"+style.Sprint("Enter the .txt file name: "), out.String())
	assert.True(t, strings.HasPrefix(out.String(), "\n"))
}

func TestPrompts(t *testing.T) {
	assert.Equal(t, "Summarize this text briefly:\nabc", SummaryPrompt("abc"))
	assert.Equal(t, "Extract 7 descriptive keywords from this text:\nabc\nKeywords:", KeywordsPrompt("abc", 7))
	assert.Equal(t, "Generate 3 multiple-choice quiz questions with 4 options each based on this text:\nabc\n"+
		"Include the correct answer for each question.", QuizPrompt("abc"))
}
