package utils

import (
	"strings"

	"alfatih-backend/pkg/logger"

	"go.uber.org/zap"
)

// LogEvent records one business event with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	logger.WithComponent(module).Info(message,
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
}
