package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/Happykiller/DraftDream-sub004/logging"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyEntityChange announces a CRUD mutation. In a real deployment this
// would feed a message queue consumed by the frontoffice.
func (n *NotificationService) NotifyEntityChange(ctx context.Context, changeType, entity, resourceID string) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: resource created",
			zap.String("entity", entity),
			zap.String("resourceID", resourceID))
	case "updated":
		logger.Info("NOTIFICATION: resource updated",
			zap.String("entity", entity),
			zap.String("resourceID", resourceID))
	case "deleted":
		logger.Info("NOTIFICATION: resource deleted",
			zap.String("entity", entity),
			zap.String("resourceID", resourceID))
	}
	return nil
}
