package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipientUserID uuid.UUID `json:"recipient_user_id"`
	SenderUserID    uuid.UUID `json:"sender_user_id"`
	FoodItemID      uuid.UUID `json:"food_item_id"`
	RequestedAmount float64   `gorm:"type:decimal(10,2)" json:"requested_amount"`
	Message         string    `json:"message"`
	IsRead          bool      `gorm:"default:false" json:"is_read"`

	Recipient *User     `gorm:"foreignKey:RecipientUserID"`
	Sender    *User     `gorm:"foreignKey:SenderUserID"`
	FoodItem  *FoodItem `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
