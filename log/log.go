package log

import (
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SuppressOutput disables or restores log output. Used in tests.
func SuppressOutput(suppress bool) {
	if suppress {
		logger.SetOutput(ioutil.Discard)
		return
	}
	logger.SetOutput(os.Stderr)
}

// Infof prints info message according to a format
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Errorf prints warning message according to a format
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fatalf prints fatal message according to a format and exits program
func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
