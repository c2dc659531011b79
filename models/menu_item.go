package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MenuCategories is the fixed set of menu sections. Every dish belongs to
// exactly one of them.
var MenuCategories = []string{
	"Starters",
	"Main Course",
	"Breads",
	"Desserts",
	"Beverages",
	"Rice & Biryani",
}

// MenuItem is a single dish on the menu. Price is kept as display text so the
// currency symbol survives the round trip to the client.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       string    `gorm:"type:varchar(20);not null" json:"price"`
	Image       string    `gorm:"type:varchar(512);not null" json:"image"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate enforces the schema-level rules: all fields required and the
// category restricted to the enumerated set.
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.Name == "" || m.Description == "" || m.Price == "" || m.Image == "" || m.Category == "" {
		return fmt.Errorf("all menu item fields are required")
	}
	for _, category := range MenuCategories {
		if m.Category == category {
			return nil
		}
	}
	return fmt.Errorf("invalid category: %s", m.Category)
}
