package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID        uint `gorm:"not null;uniqueIndex" json:"bookingId"`
	UserID           uint `gorm:"not null;index" json:"userId"`
	TrainerProfileID uint `gorm:"not null;index" json:"trainerId"`

	Rating  float64 `gorm:"type:numeric(2,1);not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string  `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}
