package models

import (
	"time"

	"gorm.io/gorm"
)

type TrainerProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_trainer_profiles_user_active,where:deleted_at IS NULL" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio            string  `gorm:"type:text" json:"bio"`
	Specialty      string  `gorm:"size:255;index" json:"specialty"`
	Experience     int     `gorm:"not null;default:0" json:"experience"`
	ExperienceText string  `gorm:"type:text" json:"experienceText"`
	Certifications string  `gorm:"type:text" json:"certifications"`
	Location       string  `gorm:"size:255" json:"location"`
	HourlyRate     float64 `gorm:"type:numeric(10,2);not null;default:0;check:hourly_rate >= 0" json:"hourlyRate"`
	Rating         float64 `gorm:"type:numeric(3,2);not null;default:0;index" json:"rating"`
	ReviewCount    int     `gorm:"not null;default:0" json:"reviewCount"`
	IsVerified     bool    `gorm:"not null;default:false" json:"isVerified"`
	IsOnline       bool    `gorm:"not null;default:false" json:"isOnline"`
	ProfileImage   string  `gorm:"size:512" json:"profileImage,omitempty"`
	BannerImage    string  `gorm:"size:512" json:"bannerImage,omitempty"`

	Availability []Availability `gorm:"foreignKey:TrainerProfileID" json:"availability,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
