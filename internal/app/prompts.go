package app

import "fmt"

// The quiz shape is fixed: three questions, four options each, answers included.
const (
	summaryPrompt  = "Summarize this text briefly:\n%s"
	keywordsPrompt = "Extract %d descriptive keywords from this text:\n%s\nKeywords:"
	quizPrompt     = "Generate 3 multiple-choice quiz questions with 4 options each based on this text:\n%s\nInclude the correct answer for each question."
)

func SummaryPrompt(text string) string {
	return fmt.Sprintf(summaryPrompt, text)
}

func KeywordsPrompt(text string, n int) string {
	return fmt.Sprintf(keywordsPrompt, n, text)
}

func QuizPrompt(text string) string {
	return fmt.Sprintf(quizPrompt, text)
}
