package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DonorID           uuid.UUID `json:"donor_id"`
	FoodType          string    `json:"food_type"`
	QuantityAvailable float64   `gorm:"type:decimal(10,2)" json:"quantity_available"`
	QuantityUnit      string    `json:"quantity_unit"` // "count" or "grams"
	PreparedDate      time.Time `json:"prepared_date"`
	PreparedTime      string    `json:"prepared_time"`
	Description       string    `json:"description,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`

	Donor    *User          `gorm:"foreignKey:DonorID"`
	Requests []*FoodRequest `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
