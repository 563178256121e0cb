package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Unknown levels fall back to info.
func New(levelStr, format string) *logrus.Logger {
	return NewWithOutput(levelStr, format, os.Stdout)
}

func NewWithOutput(levelStr, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
