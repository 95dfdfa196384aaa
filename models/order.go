package models

import (
	"time"

	"gorm.io/datatypes"
)

// OrderItem is one line of an order's items payload. Product ids are not
// checked against the products table; the order keeps whatever the client
// submitted.
type OrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Order model corresponds to the 'orders' table in the database. Orders are
// immutable after creation except for deletion.
type Order struct {
	Id          uint           `gorm:"primaryKey" json:"id"`
	FirstName   string         `gorm:"size:255;not null" json:"firstName"`
	LastName    string         `gorm:"size:255;not null" json:"lastName"`
	Email       string         `gorm:"size:255;not null" json:"email"`
	PhoneNumber string         `gorm:"size:255;not null" json:"phoneNumber"`
	City        string         `gorm:"size:255;not null" json:"city"`
	Address     string         `gorm:"type:text;not null" json:"address"`
	Items       datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	TotalPrice  float64        `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
