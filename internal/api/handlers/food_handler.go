package handlers

import (
	"errors"
	"log"

	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		GetMyFoodItems(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
		RequestFood(c *fiber.Ctx) error
		UpdateRequestStatus(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.Context(), *req, userID)
	if err != nil {
		log.Printf("add food item error: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFoodItem, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food_item": res}, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	search := c.Query("search")
	town := c.Query("town")

	items, err := h.foodService.GetFoodItems(c.Context(), search, town)
	if err != nil {
		log.Printf("get food items error: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food_items": items}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.foodService.GetFoodItemByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodItem, err)
		}
		log.Printf("get food item error: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItem, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food_item": item}, fiber.StatusOK, domain.MessageSuccessGetFoodItem)
}

func (h *foodHandler) GetMyFoodItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.foodService.GetMyFoodItems(c.Context(), userID)
	if err != nil {
		log.Printf("get my foods error: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, domain.ErrInternalServer)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food_items": items}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	res, err := h.foodService.UpdateFoodItem(c.Context(), itemID, *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFoodItem, err)
		case errors.Is(err, domain.ErrNotFoodItemOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpdateFoodItem, err)
		default:
			log.Printf("update food item error: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateFoodItem, domain.ErrInternalServer)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"food_item": res}, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.foodService.DeleteFoodItem(c.Context(), itemID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFoodItem, err)
		case errors.Is(err, domain.ErrNotFoodItemOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteFoodItem, err)
		default:
			log.Printf("delete food item error: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFoodItem, domain.ErrInternalServer)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadFoodImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
	}

	imageURL, err := h.foodService.UploadFoodImage(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadFoodImage, err)
		case errors.Is(err, domain.ErrNotFoodItemOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUploadFoodImage, err)
		case errors.Is(err, domain.ErrInvalidImageFormat):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
		default:
			log.Printf("upload food image error: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadFoodImage, domain.ErrInternalServer)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": imageURL}, fiber.StatusOK, domain.MessageSuccessUploadFoodImage)
}

func (h *foodHandler) RequestFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.RequestFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestFood, err)
	}

	res, err := h.foodService.RequestFood(c.Context(), itemID, *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRequestFood, err)
		case errors.Is(err, domain.ErrSelfRequestNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedRequestFood, err)
		case errors.Is(err, domain.ErrInvalidRequestedAmount):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestFood, err)
		case errors.Is(err, domain.ErrInsufficientQuantity):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestFood, err)
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRequestFood, err)
		default:
			log.Printf("create food request error: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRequestFood, domain.ErrInternalServer)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRequestFood)
}

func (h *foodHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	requestID := c.Params("id")
	req := new(domain.UpdateRequestStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRequestStatus, err)
	}

	res, err := h.foodService.UpdateRequestStatus(c.Context(), requestID, *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodRequestNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRequestStatus, err)
		case errors.Is(err, domain.ErrNotFoodItemOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpdateRequestStatus, err)
		default:
			log.Printf("update request status error: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRequestStatus, domain.ErrInternalServer)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"food_request": res}, fiber.StatusOK, domain.MessageSuccessUpdateRequestStatus)
}
