package food

import (
	"context"
	"fmt"
	"testing"
	"time"

	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/notification"
	"FoodShare-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.FoodItem{},
		&entities.FoodRequest{},
		&entities.Notification{},
	)
	require.NoError(t, err)

	return db
}

func setupFoodService(db *gorm.DB) FoodService {
	return NewFoodService(
		NewFoodRepository(db),
		user.NewUserRepository(db),
		notification.NewNotificationRepository(db),
		nil,
	)
}

func createTestUser(t *testing.T, db *gorm.DB, email, firstName, lastName, address string) *entities.User {
	u := &entities.User{
		ID:          uuid.New(),
		Email:       email,
		Password:    "hashed",
		FirstName:   firstName,
		LastName:    lastName,
		Address:     address,
		PhoneNumber: "0712345678",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTestFoodItem(t *testing.T, db *gorm.DB, donor *entities.User, foodType string, quantity float64, unit string) *entities.FoodItem {
	item := &entities.FoodItem{
		ID:                uuid.New(),
		DonorID:           donor.ID,
		FoodType:          foodType,
		QuantityAvailable: quantity,
		QuantityUnit:      unit,
		PreparedDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PreparedTime:      "12:30",
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestRequestFood(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)
	ctx := context.Background()

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	requester := createTestUser(t, db, "requester@example.com", "Jane", "Doe", "Kandy")
	item := createTestFoodItem(t, db, donor, "rice", 10, "grams")

	res, err := service.RequestFood(ctx, item.ID.String(), domain.RequestFoodRequest{RequestedAmount: 4}, requester.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.UpdatedQuantity)
	assert.Equal(t, "pending", res.FoodRequest.Status)
	assert.Equal(t, 4.0, res.FoodRequest.RequestedAmount)
	assert.Equal(t, requester.ID.String(), res.FoodRequest.RequesterID)

	// exactly one ledger row and one notification
	var requestCount, notificationCount int64
	db.Model(&entities.FoodRequest{}).Count(&requestCount)
	db.Model(&entities.Notification{}).Count(&notificationCount)
	assert.Equal(t, int64(1), requestCount)
	assert.Equal(t, int64(1), notificationCount)

	var stored entities.FoodItem
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, 6.0, stored.QuantityAvailable)

	var note entities.Notification
	require.NoError(t, db.First(&note).Error)
	assert.Equal(t, donor.ID, note.RecipientUserID)
	assert.Equal(t, requester.ID, note.SenderUserID)
	assert.Equal(t, item.ID, note.FoodItemID)
	assert.Equal(t, "Jane Doe is coming to collect 4 grams of rice", note.Message)
	assert.False(t, note.IsRead)

	// second request exceeds the remaining quantity
	_, err = service.RequestFood(ctx, item.ID.String(), domain.RequestFoodRequest{RequestedAmount: 7}, requester.ID.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, 6.0, stored.QuantityAvailable)
	db.Model(&entities.FoodRequest{}).Count(&requestCount)
	db.Model(&entities.Notification{}).Count(&notificationCount)
	assert.Equal(t, int64(1), requestCount)
	assert.Equal(t, int64(1), notificationCount)
}

func TestRequestFoodSelfRequest(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)
	ctx := context.Background()

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	item := createTestFoodItem(t, db, donor, "bread", 5, "count")

	_, err := service.RequestFood(ctx, item.ID.String(), domain.RequestFoodRequest{RequestedAmount: 1}, donor.ID.String())
	assert.ErrorIs(t, err, domain.ErrSelfRequestNotAllowed)

	var requestCount int64
	db.Model(&entities.FoodRequest{}).Count(&requestCount)
	assert.Equal(t, int64(0), requestCount)
}

func TestRequestFoodNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)

	requester := createTestUser(t, db, "requester@example.com", "Jane", "Doe", "Kandy")

	_, err := service.RequestFood(context.Background(), uuid.NewString(), domain.RequestFoodRequest{RequestedAmount: 1}, requester.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestRequestFoodNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)
	ctx := context.Background()

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	requester := createTestUser(t, db, "requester@example.com", "Jane", "Doe", "Kandy")
	item := createTestFoodItem(t, db, donor, "rice", 10, "grams")

	for _, amount := range []float64{0, -1} {
		_, err := service.RequestFood(ctx, item.ID.String(), domain.RequestFoodRequest{RequestedAmount: amount}, requester.ID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidRequestedAmount)
	}

	var requestCount int64
	db.Model(&entities.FoodRequest{}).Count(&requestCount)
	assert.Equal(t, int64(0), requestCount)
}

func TestRequestFoodInsufficientQuantityNoWrites(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	requester := createTestUser(t, db, "requester@example.com", "Jane", "Doe", "Kandy")
	item := createTestFoodItem(t, db, donor, "soup", 2, "count")

	_, err := service.RequestFood(context.Background(), item.ID.String(), domain.RequestFoodRequest{RequestedAmount: 3}, requester.ID.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	var stored entities.FoodItem
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, 2.0, stored.QuantityAvailable)

	var requestCount, notificationCount int64
	db.Model(&entities.FoodRequest{}).Count(&requestCount)
	db.Model(&entities.Notification{}).Count(&notificationCount)
	assert.Equal(t, int64(0), requestCount)
	assert.Equal(t, int64(0), notificationCount)
}

func TestUpdateFoodItemOwnerGuard(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)
	ctx := context.Background()

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	other := createTestUser(t, db, "other@example.com", "Sam", "Silva", "Galle")
	item := createTestFoodItem(t, db, donor, "rice", 10, "grams")

	req := domain.UpdateFoodItemRequest{
		FoodType:          "fried rice",
		QuantityAvailable: 8,
		QuantityUnit:      "grams",
		PreparedDate:      "2025-06-02",
		PreparedTime:      "10:00",
	}

	_, err := service.UpdateFoodItem(ctx, item.ID.String(), req, other.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFoodItemOwner)

	res, err := service.UpdateFoodItem(ctx, item.ID.String(), req, donor.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "fried rice", res.FoodType)
	assert.Equal(t, 8.0, res.QuantityAvailable)
}

func TestDeleteFoodItemOwnerGuard(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)
	ctx := context.Background()

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	other := createTestUser(t, db, "other@example.com", "Sam", "Silva", "Galle")
	item := createTestFoodItem(t, db, donor, "rice", 10, "grams")

	err := service.DeleteFoodItem(ctx, item.ID.String(), other.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFoodItemOwner)

	require.NoError(t, service.DeleteFoodItem(ctx, item.ID.String(), donor.ID.String()))

	_, err = service.GetFoodItemByID(ctx, item.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestGetFoodItemsSearchAndTown(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)
	ctx := context.Background()

	colomboDonor := createTestUser(t, db, "colombo@example.com", "Dana", "Perera", "12 Main St, Colombo")
	kandyDonor := createTestUser(t, db, "kandy@example.com", "Sam", "Silva", "5 Hill Rd, Kandy")

	older := createTestFoodItem(t, db, colomboDonor, "Fried Rice", 10, "grams")
	newer := createTestFoodItem(t, db, kandyDonor, "Bread", 5, "count")
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, db.Model(newer).Update("created_at", time.Now()).Error)

	// substring match on food type, case-insensitive
	items, err := service.GetFoodItems(ctx, "rice", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Fried Rice", items[0].FoodType)
	require.NotNil(t, items[0].Donor)
	assert.Equal(t, "Dana", items[0].Donor.FirstName)
	assert.Empty(t, items[0].Donor.PhoneNumber)

	// substring match on donor address
	items, err = service.GetFoodItems(ctx, "", "kandy")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bread", items[0].FoodType)

	// no filters returns everything, newest first
	items, err = service.GetFoodItems(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bread", items[0].FoodType)
	assert.Equal(t, "Fried Rice", items[1].FoodType)

	// no matches is an empty result, not an error
	items, err = service.GetFoodItems(ctx, "pizza", "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetFoodItemByIDIncludesDonorPhone(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	item := createTestFoodItem(t, db, donor, "rice", 10, "grams")

	res, err := service.GetFoodItemByID(context.Background(), item.ID.String())
	require.NoError(t, err)
	require.NotNil(t, res.Donor)
	assert.Equal(t, "0712345678", res.Donor.PhoneNumber)
}

func TestAddAndGetMyFoodItems(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)
	ctx := context.Background()

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")

	res, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		FoodType:          "rice",
		QuantityAvailable: 10,
		QuantityUnit:      "grams",
		PreparedDate:      "2025-06-01",
		PreparedTime:      "12:30",
		Description:       "leftover lunch rice",
	}, donor.ID.String())
	require.NoError(t, err)
	assert.Equal(t, donor.ID.String(), res.DonorID)
	assert.Equal(t, 10.0, res.QuantityAvailable)

	items, err := service.GetMyFoodItems(ctx, donor.ID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "rice", items[0].FoodType)
}

func TestUpdateRequestStatus(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)
	ctx := context.Background()

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	requester := createTestUser(t, db, "requester@example.com", "Jane", "Doe", "Kandy")
	item := createTestFoodItem(t, db, donor, "rice", 10, "grams")

	res, err := service.RequestFood(ctx, item.ID.String(), domain.RequestFoodRequest{RequestedAmount: 4}, requester.ID.String())
	require.NoError(t, err)
	requestID := res.FoodRequest.ID

	// only the listing donor may drive the status
	_, err = service.UpdateRequestStatus(ctx, requestID, domain.UpdateRequestStatusRequest{Status: "accepted"}, requester.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFoodItemOwner)

	updated, err := service.UpdateRequestStatus(ctx, requestID, domain.UpdateRequestStatusRequest{Status: "accepted"}, donor.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Status)

	_, err = service.UpdateRequestStatus(ctx, uuid.NewString(), domain.UpdateRequestStatusRequest{Status: "accepted"}, donor.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodRequestNotFound)
}

func TestRequestFoodCountUnitMessage(t *testing.T) {
	db := setupTestDB(t)
	service := setupFoodService(db)

	donor := createTestUser(t, db, "donor@example.com", "Dana", "Perera", "Colombo")
	requester := createTestUser(t, db, "requester@example.com", "Jane", "Doe", "Kandy")
	item := createTestFoodItem(t, db, donor, "buns", 12, "count")

	_, err := service.RequestFood(context.Background(), item.ID.String(), domain.RequestFoodRequest{RequestedAmount: 2.5}, requester.ID.String())
	require.NoError(t, err)

	var note entities.Notification
	require.NoError(t, db.First(&note).Error)
	assert.Equal(t, fmt.Sprintf("Jane Doe is coming to collect %g %s of %s", 2.5, "count", "buns"), note.Message)
}
