package logginghelper

import (
	"github.com/Egor213/LogiBuffer/internal/domain"
	"github.com/Egor213/LogiBuffer/pkg/logger"
	log "github.com/sirupsen/logrus"
)

// Request logs about the buffer itself are never captured into it.

func LogRecorded(entry domain.LogEntry) {
	logger.Uncaptured().WithFields(log.Fields{
		"id":    entry.ID,
		"level": entry.Level,
	}).Debug("Log recorded via HTTP")
}

func LogCleared() {
	logger.Uncaptured().Info("Log buffer cleared via HTTP")
}

func LogError(action string, err error) {
	logger.Uncaptured().WithFields(log.Fields{
		"action": action,
		"error":  err,
	}).Error("Log request failed")
}
