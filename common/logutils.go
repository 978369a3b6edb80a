package common

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const ServiceName = "facultydesk"

// ConfigureLogging points the standard logrus logger at stdout with the requested level and format.
// format is "json" or "text", anything else falls back to text.
func ConfigureLogging(level, format string) {
	logger := logrus.StandardLogger()
	logger.Out = os.Stdout

	if strings.EqualFold(format, "json") {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{}
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logrus.Warnf("unknown log level '%s', fallback to %s", level, lvl)
	}
	logger.SetLevel(lvl)

	logger.ReplaceHooks(logrus.LevelHooks{})
	logger.AddHook(&DefaultFieldsHook{})
}

type DefaultFieldsHook struct {
}

func (hook *DefaultFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *DefaultFieldsHook) Fire(e *logrus.Entry) error {
	e.Data["service"] = ServiceName
	return nil
}
