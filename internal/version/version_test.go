package version

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) {
	short := Banner(false)
	assert.Contains(t, short, Description)
	assert.Contains(t, short, GithubHomeText)
	assert.NotContains(t, short, "Commit:")

	extended := Banner(true)
	assert.Contains(t, extended, "Commit: "+Commit)
	assert.Contains(t, extended, "Built: "+Date)
}

func TestPrintVersionInfo(t *testing.T) {
	var buf bytes.Buffer
	PrintVersionInfo(true, log.New(&buf, "", 0))
	assert.Contains(t, buf.String(), Version)
}
