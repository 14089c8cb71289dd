package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"

	"github.com/thushan/recap/internal/core/domain"
)

const textFileSuffix = ".txt"

// ResolveInputPath appends .txt when the user left it off
func ResolveInputPath(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, textFileSuffix) {
		return name
	}
	return name + textFileSuffix
}

// ReadInput loads the document as UTF-8 text with surrounding whitespace removed
func ReadInput(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", domain.NewInputFileError(path, err)
	}
	if info.IsDir() {
		return "", domain.NewInputFileError(path, errors.New("is a directory"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewInputFileError(path, err)
	}
	if !utf8.Valid(data) {
		return "", domain.NewInputFileError(path, errors.New("not valid UTF-8 text"))
	}

	// editors on windows like to leave a BOM behind
	text := strings.TrimPrefix(string(data), "\ufeff")
	return strings.TrimSpace(text), nil
}

// ParseKeywordCount accepts a positive whole number
func ParseKeywordCount(answer string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// prompter writes a styled question and reads one line back
type prompter struct {
	in    *bufio.Reader
	out   io.Writer
	style *pterm.Style
}

func newPrompter(in io.Reader, out io.Writer, style *pterm.Style) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, style: style}
}

func (p *prompter) ask(question string) (string, error) {
	// leading newlines stay unstyled so the colour doesn't bleed across lines
	trimmed := strings.TrimLeft(question, "\n")
	lead := question[:len(question)-len(trimmed)]
	if _, err := fmt.Fprint(p.out, lead+p.style.Sprint(trimmed)); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
