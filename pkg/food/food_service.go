package food

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/internal/utils/mailing"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/notification"
	"FoodShare-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StatusPending = "pending"

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (*domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, search string, town string) ([]*domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (*domain.FoodItemResponse, error)
		GetMyFoodItems(ctx context.Context, userID string) ([]*domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (*domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) (string, error)

		RequestFood(ctx context.Context, foodItemID string, req domain.RequestFoodRequest, userID string) (*domain.RequestFoodResponse, error)
		UpdateRequestStatus(ctx context.Context, requestID string, req domain.UpdateRequestStatusRequest, userID string) (*domain.FoodRequestResponse, error)
	}

	foodService struct {
		foodRepository         FoodRepository
		userRepository         user.UserRepository
		notificationRepository notification.NotificationRepository
		s3                     storage.AwsS3
	}
)

func NewFoodService(
	foodRepository FoodRepository,
	userRepository user.UserRepository,
	notificationRepository notification.NotificationRepository,
	s3 storage.AwsS3,
) FoodService {
	return &foodService{
		foodRepository:         foodRepository,
		userRepository:         userRepository,
		notificationRepository: notificationRepository,
		s3:                     s3,
	}
}

func toFoodItemResponse(foodItem *entities.FoodItem, includePhone bool) *domain.FoodItemResponse {
	res := &domain.FoodItemResponse{
		ID:                foodItem.ID.String(),
		DonorID:           foodItem.DonorID.String(),
		FoodType:          foodItem.FoodType,
		QuantityAvailable: foodItem.QuantityAvailable,
		QuantityUnit:      foodItem.QuantityUnit,
		PreparedDate:      foodItem.PreparedDate,
		PreparedTime:      foodItem.PreparedTime,
		Description:       foodItem.Description,
		ImageURL:          foodItem.ImageURL,
		CreatedAt:         foodItem.CreatedAt,
	}

	if foodItem.Donor != nil {
		res.Donor = &domain.DonorSummary{
			ID:        foodItem.Donor.ID.String(),
			FirstName: foodItem.Donor.FirstName,
			LastName:  foodItem.Donor.LastName,
			Address:   foodItem.Donor.Address,
		}
		if includePhone {
			res.Donor.PhoneNumber = foodItem.Donor.PhoneNumber
		}
	}

	return res
}

func toFoodRequestResponse(foodRequest *entities.FoodRequest) *domain.FoodRequestResponse {
	return &domain.FoodRequestResponse{
		ID:              foodRequest.ID.String(),
		FoodItemID:      foodRequest.FoodItemID.String(),
		RequesterID:     foodRequest.RequesterID.String(),
		RequestedAmount: foodRequest.RequestedAmount,
		Status:          foodRequest.Status,
		CreatedAt:       foodRequest.CreatedAt,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (*domain.FoodItemResponse, error) {
	donorUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	preparedDate, err := time.Parse("2006-01-02", req.PreparedDate)
	if err != nil {
		return nil, err
	}

	foodItem := &entities.FoodItem{
		ID:                uuid.New(),
		DonorID:           donorUUID,
		FoodType:          req.FoodType,
		QuantityAvailable: req.QuantityAvailable,
		QuantityUnit:      req.QuantityUnit,
		PreparedDate:      preparedDate,
		PreparedTime:      req.PreparedTime,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return nil, err
	}

	return toFoodItemResponse(foodItem, false), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, search string, town string) ([]*domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.SearchFoodItems(ctx, search, town)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodItemResponse, 0, len(foodItems))
	for _, foodItem := range foodItems {
		result = append(result, toFoodItemResponse(foodItem, false))
	}

	return result, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (*domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	return toFoodItemResponse(foodItem, true), nil
}

func (s *foodService) GetMyFoodItems(ctx context.Context, userID string) ([]*domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItemsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodItemResponse, 0, len(foodItems))
	for _, foodItem := range foodItems {
		result = append(result, toFoodItemResponse(foodItem, false))
	}

	return result, nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (*domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.DonorID.String() != userID {
		return nil, domain.ErrNotFoodItemOwner
	}

	preparedDate, err := time.Parse("2006-01-02", req.PreparedDate)
	if err != nil {
		return nil, err
	}

	foodItem.FoodType = req.FoodType
	foodItem.QuantityAvailable = req.QuantityAvailable
	foodItem.QuantityUnit = req.QuantityUnit
	foodItem.PreparedDate = preparedDate
	foodItem.PreparedTime = req.PreparedTime
	foodItem.Description = req.Description
	foodItem.ImageURL = req.ImageURL

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return nil, err
	}

	return toFoodItemResponse(foodItem, false), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.DonorID.String() != userID {
		return domain.ErrNotFoodItemOwner
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) (string, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrFoodItemNotFound
		}
		return "", err
	}

	if foodItem.DonorID.String() != userID {
		return "", domain.ErrNotFoodItemOwner
	}

	fileName := fmt.Sprintf("food-%s", foodItem.ID.String())

	var objectKey string
	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return "", err
	}

	return foodItem.ImageURL, nil
}

// RequestFood validates a claim against a listing, records the request,
// decrements the available quantity and notifies the donor. The three writes
// are sequential, not transactional, matching the behavior this service
// inherits: concurrent requests against the same listing can over-allocate.
func (s *foodService) RequestFood(ctx context.Context, foodItemID string, req domain.RequestFoodRequest, userID string) (*domain.RequestFoodResponse, error) {
	if req.RequestedAmount <= 0 {
		return nil, domain.ErrInvalidRequestedAmount
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, foodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.DonorID.String() == userID {
		return nil, domain.ErrSelfRequestNotAllowed
	}

	if req.RequestedAmount > foodItem.QuantityAvailable {
		return nil, domain.ErrInsufficientQuantity
	}

	requester, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	foodRequest := &entities.FoodRequest{
		ID:              uuid.New(),
		FoodItemID:      foodItem.ID,
		RequesterID:     requester.ID,
		RequestedAmount: req.RequestedAmount,
		Status:          StatusPending,
	}

	if err := s.foodRepository.CreateFoodRequest(ctx, foodRequest); err != nil {
		return nil, err
	}

	foodItem.QuantityAvailable -= req.RequestedAmount
	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return nil, err
	}

	message := fmt.Sprintf(
		"%s %s is coming to collect %g %s of %s",
		requester.FirstName,
		requester.LastName,
		req.RequestedAmount,
		foodItem.QuantityUnit,
		foodItem.FoodType,
	)

	if err := s.notificationRepository.CreateNotification(ctx, &entities.Notification{
		ID:              uuid.New(),
		RecipientUserID: foodItem.DonorID,
		SenderUserID:    requester.ID,
		FoodItemID:      foodItem.ID,
		RequestedAmount: req.RequestedAmount,
		Message:         message,
	}); err != nil {
		return nil, err
	}

	// Best effort: the request already succeeded, a mail failure is only logged.
	if utils.GetConfig("SMTP_HOST") != "" && foodItem.Donor != nil && foodItem.Donor.Email != "" {
		if err := mailing.SendMail(foodItem.Donor.Email, "New food request", message); err != nil {
			log.Printf("failed to send request email: %v", err)
		}
	}

	return &domain.RequestFoodResponse{
		FoodRequest:     toFoodRequestResponse(foodRequest),
		UpdatedQuantity: foodItem.QuantityAvailable,
	}, nil
}

func (s *foodService) UpdateRequestStatus(ctx context.Context, requestID string, req domain.UpdateRequestStatusRequest, userID string) (*domain.FoodRequestResponse, error) {
	foodRequest, err := s.foodRepository.GetFoodRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodRequestNotFound
		}
		return nil, err
	}

	if foodRequest.FoodItem == nil || foodRequest.FoodItem.DonorID.String() != userID {
		return nil, domain.ErrNotFoodItemOwner
	}

	if err := s.foodRepository.UpdateFoodRequestStatus(ctx, requestID, req.Status); err != nil {
		return nil, err
	}
	foodRequest.Status = req.Status

	return toFoodRequestResponse(foodRequest), nil
}
