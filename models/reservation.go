package models

import "time"

// Reservation is a guest booking request. The client validates phone format
// and date; the server only requires the fields to be present.
type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone           string    `gorm:"type:varchar(20);not null" json:"phone"`
	Guests          string    `gorm:"type:varchar(50);not null" json:"guests"`
	Date            string    `gorm:"type:varchar(20);not null" json:"date"`
	Time            string    `gorm:"type:varchar(10);not null" json:"time"`
	SpecialRequests string    `gorm:"type:varchar(255)" json:"specialRequests"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"not null" json:"updatedAt"`
}
