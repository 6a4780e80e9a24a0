package availability

import "github.com/BruksfildServices01/traineme-api/internal/models"

// ConflictsWith reports whether candidate overlaps any active slot in
// existing for the same day. The candidate itself (same ID) is ignored.
func ConflictsWith(candidate models.Availability, existing []models.Availability) bool {
	w, err := ParseWindow(candidate.StartTime, candidate.EndTime)
	if err != nil {
		return false
	}
	for _, s := range existing {
		if s.ID == candidate.ID && candidate.ID != 0 {
			continue
		}
		if !s.IsActive || s.Day != candidate.Day {
			continue
		}
		other, err := ParseWindow(s.StartTime, s.EndTime)
		if err != nil {
			continue
		}
		if w.Overlaps(other) {
			return true
		}
	}
	return false
}

// Covers reports whether one active slot on day fully contains w.
func Covers(slots []models.Availability, day Day, w Window) bool {
	for _, s := range slots {
		if !s.IsActive || s.Day != string(day) {
			continue
		}
		sw, err := ParseWindow(s.StartTime, s.EndTime)
		if err != nil {
			continue
		}
		if sw.Contains(w) {
			return true
		}
	}
	return false
}
