package models

import "time"

// Status booking. "pending" ada di skema tetapi tidak pernah di-set oleh
// lifecycle ini; "completed" hanya dicapai lewat proses eksternal.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingPending   = "pending"
	BookingCompleted = "completed"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// NotSpecified mengisi field alamat opsional yang dikosongkan user.
const NotSpecified = "Not specified"

type Booking struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Reference           string     `gorm:"type:varchar(36);unique;not null" json:"reference"`
	UserID              uint       `gorm:"not null;index" json:"user_id"`
	User                User       `gorm:"foreignKey:UserID" json:"user"`
	HelperID            uint       `gorm:"not null;index" json:"helper_id"`
	Helper              Helper     `gorm:"foreignKey:HelperID" json:"helper"`
	BookingDate         time.Time  `gorm:"not null" json:"booking_date"`
	StartTime           string     `gorm:"type:varchar(10);not null" json:"start_time"`
	StartTime24         string     `gorm:"type:varchar(5);not null" json:"start_time_24"`
	Duration            int        `gorm:"not null" json:"duration"`
	TotalAmount         float64    `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Street              string     `gorm:"type:varchar(255);not null" json:"street"`
	Area                string     `gorm:"type:varchar(255)" json:"area"`
	City                string     `gorm:"type:varchar(255);not null" json:"city"`
	Pincode             string     `gorm:"type:varchar(20)" json:"pincode"`
	SpecialInstructions string     `gorm:"type:varchar(1000)" json:"special_instructions"`
	Status              string     `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	PaymentStatus       string     `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updated_at"`
	CancelledAt         *time.Time `json:"cancelled_at,omitempty"`
}
