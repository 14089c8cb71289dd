package inference

import (
	"fmt"
	"strings"

	"github.com/thushan/recap/internal/logger"
)

// restyLogger routes resty's internal messages through our logger
type restyLogger struct {
	log *logger.StyledLogger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(l.format(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(l.format(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(l.format(format, v...))
}

func (l restyLogger) format(format string, v ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
