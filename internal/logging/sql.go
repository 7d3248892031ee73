package logging

import (
	"strings"

	"go.uber.org/zap"
)

// LogSQLQuery logs sql on a single line at debug level.
func LogSQLQuery(logger *zap.Logger, sql string, args ...any) {
	fields := make([]zap.Field, 0, 1)
	if len(args) > 0 {
		fields = append(fields, zap.Any("args", args))
	}

	logger.Debug(strings.Join(strings.Fields(sql), " "), fields...)
}
