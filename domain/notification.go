package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkRead         = "notification marked as read"
	MessageSuccessMarkAllRead      = "all notifications marked as read"
	MessageSuccessGetUnreadCount   = "unread count retrieved successfully"

	MessageFailedGetNotifications = "failed to get notifications"
	MessageFailedMarkRead         = "failed to mark notification as read"
	MessageFailedMarkAllRead      = "failed to mark all notifications as read"
	MessageFailedGetUnreadCount   = "failed to get unread count"

	ErrNotificationNotFound     = errors.New("notification not found")
	ErrNotNotificationRecipient = errors.New("not authorized to update this notification")
)

type (
	NotificationSender struct {
		ID          string `json:"id"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
	}

	NotificationFoodItem struct {
		ID       string `json:"id"`
		FoodType string `json:"food_type"`
	}

	NotificationResponse struct {
		ID              string                `json:"id"`
		RequestedAmount float64               `json:"requested_amount"`
		Message         string                `json:"message"`
		IsRead          bool                  `json:"is_read"`
		CreatedAt       time.Time             `json:"created_at"`
		Sender          *NotificationSender   `json:"sender,omitempty"`
		FoodItem        *NotificationFoodItem `json:"food_item,omitempty"`
	}

	UnreadCountResponse struct {
		UnreadCount int64 `json:"unread_count"`
	}
)
