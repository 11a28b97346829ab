package ui

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// actionLogger 为一次用户操作生成追踪 ID，便于在日志中串联同一操作
func actionLogger(logger *zap.Logger, action string) *zap.Logger {
	return logger.With(
		zap.String("action", action),
		zap.String("action_id", uuid.NewString()),
	)
}
