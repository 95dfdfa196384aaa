package models

import (
	"time"
)

// Product model corresponds to the 'products' table in the database.
// Only name and price are required at the storage level; everything else
// is stored verbatim as supplied.
type Product struct {
	Id          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Category    string    `gorm:"size:255" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string    `gorm:"size:255" json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
