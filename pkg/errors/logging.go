package errors

import (
	"go.uber.org/zap"
)

// LogError records err as a structured log entry, adding error_code for AppErrors.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil {
		return
	}

	allFields := make([]zap.Field, 0, len(fields)+2)
	allFields = append(allFields, zap.Error(err), zap.String("error_code", CodeOf(err)))
	allFields = append(allFields, fields...)

	logger.Error(msg, allFields...)
}
