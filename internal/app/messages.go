package app

import (
	"github.com/thushan/recap/internal/core/constants"
)

// Messages holds every user-facing string for one locale
type Messages struct {
	AskFilename     string
	AskKeywordCount string

	SummaryHeading  string
	KeywordsHeading string
	QuizHeading     string

	ErrorPrefix string

	FileNotFound        string // %s is the path
	MissingCredential   string
	InvalidKeywordCount string // %q is what the user typed
	NoInput             string

	InputLoaded string // path, size, word count
	Done        string // elapsed
}

var english = Messages{
	AskFilename:     "Enter the .txt file name: ",
	AskKeywordCount: "How many keywords should be generated?: ",

	SummaryHeading:  "Summary:",
	KeywordsHeading: "Keywords:",
	QuizHeading:     "Generated questions:",

	ErrorPrefix: constants.DefaultErrorPrefix,

	FileNotFound:        "File '%s' was not found!",
	MissingCredential:   "HF_TOKEN or HUGGINGFACE_API_KEY was not found in the environment or .env file",
	InvalidKeywordCount: "keyword count must be a positive whole number, got %q",
	NoInput:             "no input received",

	InputLoaded: "Read %s (%s, %s words)",
	Done:        "Done in %s",
}

// latvian is the tool's first locale, its prompts predate the English ones
var latvian = Messages{
	AskFilename:     "Ievadi .txt faila nosaukumu: ",
	AskKeywordCount: "Cik atslēgvārdus ģenerēt?: ",

	SummaryHeading:  "Kopsavilkums:",
	KeywordsHeading: "Atslēgvārdi:",
	QuizHeading:     "Ģenerētie jautājumi:",

	ErrorPrefix: "Kļūda",

	FileNotFound:        "Fails '%s' netika atrasts!",
	MissingCredential:   "HF_TOKEN vai HUGGINGFACE_API_KEY nav atrasts .env failā",
	InvalidKeywordCount: "atslēgvārdu skaitam jābūt pozitīvam veselam skaitlim, saņemts %q",
	NoInput:             "ievade netika saņemta",

	InputLoaded: "Nolasīts %s (%s, %s vārdi)",
	Done:        "Pabeigts %s laikā",
}

// MessagesFor falls back to English for unknown locales
func MessagesFor(locale string) Messages {
	switch locale {
	case constants.LocaleLatvian:
		return latvian
	default:
		return english
	}
}
