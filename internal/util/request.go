package util

import (
	"fmt"
	"math/rand"
	"strings"
)

// GenerateRequestID builds a short, readable id so the log lines of one
// query (every attempt and the final outcome) can be grouped together.
func GenerateRequestID(step string) string {
	moods := []string{
		"curious", "diligent", "patient", "eager", "thoughtful",
		"careful", "studious", "bright", "steady", "keen",
	}
	subjects := []string{
		"reader", "scholar", "quizzer", "scribe", "tutor",
		"pupil", "critic", "editor", "archivist", "examiner",
	}

	mood := moods[rand.Intn(len(moods))]
	subject := subjects[rand.Intn(len(subjects))]
	suffix := fmt.Sprintf("%04x", rand.Intn(65536))

	if step = strings.TrimSpace(step); step == "" {
		return fmt.Sprintf("%s_%s_%s", mood, subject, suffix)
	}
	return fmt.Sprintf("%s_%s_%s_%s", step, mood, subject, suffix)
}

// TruncateForLog shortens large prompts and bodies for log attributes, the full
// document can be megabytes.
func TruncateForLog(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	// don't split a multi-byte rune
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + fmt.Sprintf("…(+%d bytes)", len(s)-cut)
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
