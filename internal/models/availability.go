package models

import "time"

// Availability is a weekly recurring window. Day holds the canonical
// three-letter weekday ("Mon".."Sun"), times are "HH:MM".
type Availability struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	TrainerProfileID uint `gorm:"not null;index:idx_availability_trainer_day" json:"trainerId"`

	Day       string `gorm:"size:3;not null;index:idx_availability_trainer_day" json:"day"`
	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Availability) TableName() string {
	return "availabilities"
}
