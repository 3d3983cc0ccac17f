package notification

import (
	"context"
	"errors"

	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"

	"gorm.io/gorm"
)

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, userID string) ([]*domain.NotificationResponse, error)
		MarkAsRead(ctx context.Context, notificationID string, userID string) (*domain.NotificationResponse, error)
		MarkAllAsRead(ctx context.Context, userID string) error
		GetUnreadCount(ctx context.Context, userID string) (*domain.UnreadCountResponse, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func toNotificationResponse(notification *entities.Notification) *domain.NotificationResponse {
	res := &domain.NotificationResponse{
		ID:              notification.ID.String(),
		RequestedAmount: notification.RequestedAmount,
		Message:         notification.Message,
		IsRead:          notification.IsRead,
		CreatedAt:       notification.CreatedAt,
	}

	if notification.Sender != nil {
		res.Sender = &domain.NotificationSender{
			ID:          notification.Sender.ID.String(),
			FirstName:   notification.Sender.FirstName,
			LastName:    notification.Sender.LastName,
			PhoneNumber: notification.Sender.PhoneNumber,
		}
	}

	if notification.FoodItem != nil {
		res.FoodItem = &domain.NotificationFoodItem{
			ID:       notification.FoodItem.ID.String(),
			FoodType: notification.FoodItem.FoodType,
		}
	}

	return res
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]*domain.NotificationResponse, error) {
	notifications, err := s.notificationRepository.GetNotificationsByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, toNotificationResponse(notification))
	}

	return result, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, notificationID string, userID string) (*domain.NotificationResponse, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}

	if notification.RecipientUserID.String() != userID {
		return nil, domain.ErrNotNotificationRecipient
	}

	// Marking an already-read notification again is a no-op, not an error.
	if err := s.notificationRepository.MarkNotificationRead(ctx, notificationID); err != nil {
		return nil, err
	}
	notification.IsRead = true

	return toNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllNotificationsRead(ctx, userID)
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userID string) (*domain.UnreadCountResponse, error) {
	count, err := s.notificationRepository.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.UnreadCountResponse{UnreadCount: count}, nil
}
