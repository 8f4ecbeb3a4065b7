package controller

import (
	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// logRequest logs a controller action tagged with the action name and request id.
func logRequest(action string, requestID string, level string, message string, fields ...zap.Field) {
	logMsg := action + " - " + requestID
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("action", action),
		zap.String("request_id", requestID),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}
