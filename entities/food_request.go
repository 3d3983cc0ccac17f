package entities

import (
	"github.com/google/uuid"
)

type FoodRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FoodItemID      uuid.UUID `json:"food_item_id"`
	RequesterID     uuid.UUID `json:"requester_id"`
	RequestedAmount float64   `gorm:"type:decimal(10,2)" json:"requested_amount"`
	Status          string    `json:"status"` // "pending", "accepted", "completed", "cancelled"

	FoodItem  *FoodItem `gorm:"foreignKey:FoodItemID"`
	Requester *User     `gorm:"foreignKey:RequesterID"`
	Timestamp
}
