package trainer

import (
	"strings"

	"github.com/BruksfildServices01/traineme-api/internal/models"
)

// SectionsOf derives completion input from stored records.
func SectionsOf(p *models.TrainerProfile, slots []models.Availability) Sections {
	photo := p.ProfileImage != "" || p.User.ProfileImage != ""
	s := Sections{
		Name:        strings.TrimSpace(p.User.FirstName) != "" && strings.TrimSpace(p.User.LastName) != "",
		Bio:         strings.TrimSpace(p.Bio) != "",
		Location:    strings.TrimSpace(p.Location) != "",
		Photo:       photo,
		Specialties: strings.TrimSpace(p.Specialty) != "",
		Experience:  p.Experience > 0,
		AnyDay:      len(slots) > 0,
		Price:       p.HourlyRate > 0,
	}
	for _, sl := range slots {
		if sl.IsActive {
			s.AnySlot = true
			break
		}
	}
	return s
}
