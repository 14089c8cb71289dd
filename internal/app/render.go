package app

import (
	"fmt"
	"io"

	"github.com/thushan/recap/theme"
)

// renderer prints labelled result sections, styling only the heading
type renderer struct {
	out   io.Writer
	theme *theme.Theme
}

func (r *renderer) section(heading, body string) error {
	_, err := fmt.Fprintf(r.out, "\n%s\n%s\n", r.theme.Heading.Sprint(heading), body)
	return err
}

// status is best effort, a closed stderr shouldn't fail the run
func (r *renderer) status(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, r.theme.Muted.Sprint(line))
}
