package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	TrainerProfileID uint           `gorm:"not null;index" json:"trainerId"`
	TrainerProfile   TrainerProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"trainer"`

	SessionDate time.Time `gorm:"type:date;not null;index" json:"-"`
	StartTime   string    `gorm:"size:5;not null" json:"startTime"`
	EndTime     string    `gorm:"size:5;not null" json:"endTime"`

	// StartsAt/EndsAt are the absolute instants of the session, used for
	// overlap checks and the exclusion constraint.
	StartsAt time.Time `gorm:"not null" json:"startsAt"`
	EndsAt   time.Time `gorm:"not null" json:"endsAt"`

	Price  float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Status string  `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	Notes  string  `gorm:"size:500" json:"notes,omitempty"`

	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy *uint      `json:"cancelledBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) SessionDateString() string {
	return b.SessionDate.Format("2006-01-02")
}
