package notification

import (
	"context"

	"FoodShare-Backend/entities"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		GetNotificationsByRecipient(ctx context.Context, recipientID string) ([]*entities.Notification, error)
		MarkNotificationRead(ctx context.Context, id string) error
		MarkAllNotificationsRead(ctx context.Context, recipientID string) error
		CountUnreadNotifications(ctx context.Context, recipientID string) (int64, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("FoodItem").
		Where("id = ?", id).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) GetNotificationsByRecipient(ctx context.Context, recipientID string) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("FoodItem").
		Where("recipient_user_id = ?", recipientID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkNotificationRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true}).Error
}

func (r *notificationRepository) MarkAllNotificationsRead(ctx context.Context, recipientID string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("recipient_user_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]interface{}{"is_read": true}).Error
}

func (r *notificationRepository) CountUnreadNotifications(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("recipient_user_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
