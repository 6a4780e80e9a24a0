package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser    Role = "USER"
	RoleTrainer Role = "TRAINER"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;not null;uniqueIndex:idx_users_email_active,where:deleted_at IS NULL" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:100;not null" json:"firstName"`
	LastName     string `gorm:"size:100;not null" json:"lastName"`
	Phone        string `gorm:"size:20" json:"phone,omitempty"`
	Role         Role   `gorm:"size:20;not null;default:'USER'" json:"role"`
	ProfileImage string `gorm:"size:512" json:"profileImage,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
