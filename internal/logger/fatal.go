package logger

import (
	"fmt"
	"os"
)

// exit is swapped in tests
var exit = os.Exit

// FatalForUser logs the error and also prints it plainly to stderr, the log level
// may hide errors from the user otherwise.
func FatalForUser(sl *StyledLogger, msg string, err error) {
	sl.Error(msg, "error", err)
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", sl.Theme.Error.Sprint("✖"), msg, err)
	exit(1)
}
