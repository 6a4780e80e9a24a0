package dto

import (
	"time"

	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type AuthResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type SlotResponse struct {
	ID        uint   `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

func NewSlotResponse(s models.Availability) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		Day:       s.Day,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IsActive:  s.IsActive,
	}
}

func NewSlotResponses(slots []models.Availability) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewSlotResponse(s))
	}
	return out
}

// TrainerResponse is the public view of a trainer; contact data of the
// owning user stays private.
type TrainerResponse struct {
	ID             uint           `json:"id"`
	UserID         uint           `json:"userId"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Bio            string         `json:"bio"`
	Specialty      string         `json:"specialty"`
	Experience     int            `json:"experience"`
	ExperienceText string         `json:"experienceText"`
	Certifications string         `json:"certifications"`
	Location       string         `json:"location"`
	HourlyRate     float64        `json:"hourlyRate"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"reviewCount"`
	IsVerified     bool           `json:"isVerified"`
	IsOnline       bool           `json:"isOnline"`
	ProfileImage   string         `json:"profileImage,omitempty"`
	BannerImage    string         `json:"bannerImage,omitempty"`
	Availability   []SlotResponse `json:"availability,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func NewTrainerResponse(p *models.TrainerProfile) TrainerResponse {
	image := p.ProfileImage
	if image == "" {
		image = p.User.ProfileImage
	}

	r := TrainerResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		FirstName:      p.User.FirstName,
		LastName:       p.User.LastName,
		Bio:            p.Bio,
		Specialty:      p.Specialty,
		Experience:     p.Experience,
		ExperienceText: p.ExperienceText,
		Certifications: p.Certifications,
		Location:       p.Location,
		HourlyRate:     p.HourlyRate,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		IsVerified:     p.IsVerified,
		IsOnline:       p.IsOnline,
		ProfileImage:   image,
		BannerImage:    p.BannerImage,
		CreatedAt:      p.CreatedAt,
	}
	if p.Availability != nil {
		r.Availability = NewSlotResponses(p.Availability)
	}
	return r
}

func NewTrainerPage(page Page[models.TrainerProfile]) Page[TrainerResponse] {
	items := make([]TrainerResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, NewTrainerResponse(&page.Items[i]))
	}
	return Page[TrainerResponse]{Items: items, Pagination: page.Pagination}
}

type BookingResponse struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	ClientName  string     `json:"clientName,omitempty"`
	TrainerID   uint       `json:"trainerId"`
	TrainerName string     `json:"trainerName,omitempty"`
	SessionDate string     `json:"sessionDate"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      time.Time  `json:"endsAt"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy *uint      `json:"cancelledBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ClientName:  b.User.FullName(),
		TrainerID:   b.TrainerProfileID,
		TrainerName: b.TrainerProfile.User.FullName(),
		SessionDate: b.SessionDateString(),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		StartsAt:    b.StartsAt,
		EndsAt:      b.EndsAt,
		Price:       b.Price,
		Status:      b.Status,
		Notes:       b.Notes,
		ConfirmedAt: b.ConfirmedAt,
		CompletedAt: b.CompletedAt,
		CancelledAt: b.CancelledAt,
		CancelledBy: b.CancelledBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func NewBookingPage(page Page[models.Booking]) Page[BookingResponse] {
	items := make([]BookingResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, NewBookingResponse(&page.Items[i]))
	}
	return Page[BookingResponse]{Items: items, Pagination: page.Pagination}
}
