package models

import "time"

const (
	HelperAvailable = "available"
	HelperBusy      = "busy"
)

type Helper struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Phone        string    `gorm:"type:varchar(20);not null" json:"phone"`
	Category     string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Skills       string    `gorm:"type:varchar(500)" json:"skills"`
	Experience   int       `gorm:"default:0" json:"experience"`
	Availability string    `gorm:"type:varchar(20);not null;default:'available'" json:"availability"`
	Area         string    `gorm:"type:varchar(255);not null" json:"area"`
	City         string    `gorm:"type:varchar(255);not null;index" json:"city"`
	Pincode      string    `gorm:"type:varchar(10);not null" json:"pincode"`
	ImageURL     string    `gorm:"type:varchar(500)" json:"image_url"`
	Rating       float64   `gorm:"type:decimal(2,1);default:0" json:"rating"`
	HourlyRate   float64   `gorm:"type:decimal(10,2);not null" json:"hourly_rate"`
	Description  string    `gorm:"type:varchar(500)" json:"description"`
	IsVerified   bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// DefaultHelperImage dipakai saat pendaftaran tanpa foto profil.
const DefaultHelperImage = "https://via.placeholder.com/200x200?text=No+Image"
