package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limbo/nestling/pkg/entity"
)

// LogSender only logs notifications. Used when FCM credentials aren't configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) SendBadges(_ context.Context, uid uuid.UUID, badges []entity.BadgeID) error {
	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, string(b))
	}
	s.logger.Info("badges unlocked", slog.String("uid", uid.String()), slog.Any("badges", ids))
	return nil
}
