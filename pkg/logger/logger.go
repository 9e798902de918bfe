package logger

import (
	"fmt"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

// FieldSkipCapture marks entries that must stay out of the in-memory log buffer.
const FieldSkipCapture = "skip_capture"

// Uncaptured returns an entry that is logged normally but not captured into the buffer.
func Uncaptured() *log.Entry {
	return log.WithField(FieldSkipCapture, true)
}

// SetupLogger configures the standard logrus logger and returns the level it ended up with.
func SetupLogger(level string) log.Level {
	loggerLevel, err := log.ParseLevel(level)
	log.SetReportCaller(true)

	log.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		loggerLevel = log.InfoLevel
	}
	log.SetLevel(loggerLevel)

	return loggerLevel
}
