package version

import (
	"fmt"
	"log"
	"strings"

	"github.com/thushan/recap/theme"
)

var (
	Name        = "recap"
	Authors     = "Thushan Fernando"
	Description = "Summaries, keywords and quizzes from your notes"
	Version     = "v0.0.1"
	Commit      = "none"
	Date        = "nowish"
	User        = "local"
)

const (
	GithubHomeText  = "github.com/thushan/recap"
	GithubHomeUri   = "https://github.com/thushan/recap"
	GithubLatestUri = "https://github.com/thushan/recap/releases/latest"
)

func PrintVersionInfo(extendedInfo bool, vlog *log.Logger) {
	vlog.Println(Banner(extendedInfo))
}

// Banner renders the splash, extended adds build details below it
func Banner(extendedInfo bool) string {
	githubUri := theme.Hyperlink(GithubHomeUri, GithubHomeText)
	latestUri := theme.Hyperlink(GithubLatestUri, Version)

	var b strings.Builder

	b.WriteString(theme.ColourSplash(`
  ┏━┓┏━╸┏━╸┏━┓┏━┓
  ┣┳┛┣╸ ┃  ┣━┫┣━┛
  ╹┗╸┗━╸┗━╸╹ ╹╹  ` + "\n"))
	b.WriteString("  " + Description + "\n")
	b.WriteString("  ")
	b.WriteString(theme.StyleUrl(githubUri))
	b.WriteString(" ")
	b.WriteString(theme.ColourVersion(latestUri))

	if extendedInfo {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(" Commit: %s\n", Commit))
		b.WriteString(fmt.Sprintf("  Built: %s\n", Date))
		b.WriteString(fmt.Sprintf("  Using: %s\n", User))
	}

	return b.String()
}
