package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem         = "food item created successfully"
	MessageSuccessUpdateFoodItem      = "food item updated successfully"
	MessageSuccessDeleteFoodItem      = "food item deleted successfully"
	MessageSuccessGetFoodItems        = "food items retrieved successfully"
	MessageSuccessGetFoodItem         = "food item retrieved successfully"
	MessageSuccessRequestFood         = "food request created successfully"
	MessageSuccessUploadFoodImage     = "food image uploaded successfully"
	MessageSuccessUpdateRequestStatus = "food request status updated successfully"

	MessageFailedAddFoodItem         = "failed to create food item"
	MessageFailedUpdateFoodItem      = "failed to update food item"
	MessageFailedDeleteFoodItem      = "failed to delete food item"
	MessageFailedGetFoodItems        = "failed to get food items"
	MessageFailedGetFoodItem         = "failed to get food item"
	MessageFailedRequestFood         = "failed to create food request"
	MessageFailedUploadFoodImage     = "failed to upload food image"
	MessageFailedUpdateRequestStatus = "failed to update food request status"

	ErrFoodItemNotFound       = errors.New("food item not found")
	ErrNotFoodItemOwner       = errors.New("not authorized to modify this food item")
	ErrSelfRequestNotAllowed  = errors.New("cannot request your own food item")
	ErrInsufficientQuantity   = errors.New("requested amount exceeds available quantity")
	ErrFoodRequestNotFound    = errors.New("food request not found")
	ErrInvalidRequestedAmount = errors.New("requested amount must be greater than 0")
	ErrInvalidImageFormat     = errors.New("invalid image format")
)

type (
	AddFoodItemRequest struct {
		FoodType          string  `json:"food_type" validate:"required"`
		QuantityAvailable float64 `json:"quantity_available" validate:"required,gt=0"`
		QuantityUnit      string  `json:"quantity_unit" validate:"required,oneof=count grams"`
		PreparedDate      string  `json:"prepared_date" validate:"required,datetime=2006-01-02"`
		PreparedTime      string  `json:"prepared_time" validate:"required,datetime=15:04"`
		Description       string  `json:"description" validate:"omitempty"`
		ImageURL          string  `json:"image_url" validate:"omitempty,url"`
	}

	UpdateFoodItemRequest struct {
		FoodType          string  `json:"food_type" validate:"required"`
		QuantityAvailable float64 `json:"quantity_available" validate:"required,gt=0"`
		QuantityUnit      string  `json:"quantity_unit" validate:"required,oneof=count grams"`
		PreparedDate      string  `json:"prepared_date" validate:"required,datetime=2006-01-02"`
		PreparedTime      string  `json:"prepared_time" validate:"required,datetime=15:04"`
		Description       string  `json:"description" validate:"omitempty"`
		ImageURL          string  `json:"image_url" validate:"omitempty,url"`
	}

	DonorSummary struct {
		ID          string `json:"id"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Address     string `json:"address"`
		PhoneNumber string `json:"phone_number,omitempty"`
	}

	FoodItemResponse struct {
		ID                string        `json:"id"`
		DonorID           string        `json:"donor_id"`
		FoodType          string        `json:"food_type"`
		QuantityAvailable float64       `json:"quantity_available"`
		QuantityUnit      string        `json:"quantity_unit"`
		PreparedDate      time.Time     `json:"prepared_date"`
		PreparedTime      string        `json:"prepared_time"`
		Description       string        `json:"description,omitempty"`
		ImageURL          string        `json:"image_url,omitempty"`
		CreatedAt         time.Time     `json:"created_at"`
		Donor             *DonorSummary `json:"donor,omitempty"`
	}

	RequestFoodRequest struct {
		RequestedAmount float64 `json:"requested_amount" validate:"required,gt=0"`
	}

	FoodRequestResponse struct {
		ID              string    `json:"id"`
		FoodItemID      string    `json:"food_item_id"`
		RequesterID     string    `json:"requester_id"`
		RequestedAmount float64   `json:"requested_amount"`
		Status          string    `json:"status"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RequestFoodResponse struct {
		FoodRequest     *FoodRequestResponse `json:"food_request"`
		UpdatedQuantity float64              `json:"updated_quantity"`
	}

	UpdateRequestStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending accepted completed cancelled"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
