package food

import (
	"context"
	"strings"

	"FoodShare-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		SearchFoodItems(ctx context.Context, search string, town string) ([]*entities.FoodItem, error)
		GetFoodItemsByDonor(ctx context.Context, donorID string) ([]*entities.FoodItem, error)

		// Request ledger
		CreateFoodRequest(ctx context.Context, foodRequest *entities.FoodRequest) error
		GetFoodRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error)
		UpdateFoodRequestStatus(ctx context.Context, id string, status string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("id = ?", id).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) SearchFoodItems(ctx context.Context, search string, town string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	query := r.db.WithContext(ctx).
		Preload("Donor").
		Joins("JOIN users ON users.id = food_items.donor_id")

	if search != "" {
		query = query.Where("LOWER(food_items.food_type) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if town != "" {
		query = query.Where("LOWER(users.address) LIKE ?", "%"+strings.ToLower(town)+"%")
	}

	if err := query.Order("food_items.created_at desc").Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsByDonor(ctx context.Context, donorID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at desc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) CreateFoodRequest(ctx context.Context, foodRequest *entities.FoodRequest) error {
	return r.db.WithContext(ctx).Create(foodRequest).Error
}

func (r *foodRepository) GetFoodRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error) {
	var foodRequest entities.FoodRequest
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Where("id = ?", id).
		First(&foodRequest).Error; err != nil {
		return nil, err
	}
	return &foodRequest, nil
}

func (r *foodRepository) UpdateFoodRequestStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.FoodRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}
