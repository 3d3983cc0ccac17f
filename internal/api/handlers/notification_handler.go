package handlers

import (
	"errors"
	"log"

	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/notification"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		MarkAllAsRead(c *fiber.Ctx) error
		GetUnreadCount(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	notifications, err := h.notificationService.GetNotifications(c.Context(), userID)
	if err != nil {
		log.Printf("get notifications error: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNotifications, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, fiber.Map{"notifications": notifications}, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	res, err := h.notificationService.MarkAsRead(c.Context(), notificationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotificationNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkRead, err)
		case errors.Is(err, domain.ErrNotNotificationRecipient):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedMarkRead, err)
		default:
			log.Printf("mark notification read error: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedMarkRead, domain.ErrInternalServer)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"notification": res}, fiber.StatusOK, domain.MessageSuccessMarkRead)
}

func (h *notificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.MarkAllAsRead(c.Context(), userID); err != nil {
		log.Printf("mark all notifications read error: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedMarkAllRead, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAllRead)
}

func (h *notificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.notificationService.GetUnreadCount(c.Context(), userID)
	if err != nil {
		log.Printf("get unread count error: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUnreadCount, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnreadCount)
}
