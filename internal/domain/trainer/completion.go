package trainer

import "math"

// AcceptThreshold is the minimum completion score to accept bookings.
const AcceptThreshold = 70

const (
	SectionBasicInfo    = "basic_info"
	SectionExpertise    = "expertise"
	SectionAvailability = "availability"
	SectionPricing      = "pricing"
)

// Sections is the raw input of the completion score.
type Sections struct {
	Name     bool
	Bio      bool
	Location bool
	Photo    bool

	Specialties bool
	Experience  bool

	AnyDay  bool
	AnySlot bool

	Price bool
}

type SectionScore struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Filled   float64 `json:"filled"`
	Complete bool    `json:"complete"`
}

type CompletionReport struct {
	Score      int            `json:"score"`
	CanAccept  bool           `json:"canAccept"`
	Sections   []SectionScore `json:"sections"`
	Incomplete []string       `json:"incompleteSections"`
}

func frac(parts ...bool) float64 {
	n := 0
	for _, p := range parts {
		if p {
			n++
		}
	}
	return float64(n) / float64(len(parts))
}

// Completion computes the weighted profile score: basic info 30, expertise
// 30, availability 20, pricing 20.
func Completion(s Sections) CompletionReport {
	sections := []SectionScore{
		{Name: SectionBasicInfo, Weight: 30, Filled: frac(s.Name, s.Bio, s.Location, s.Photo)},
		{Name: SectionExpertise, Weight: 30, Filled: frac(s.Specialties, s.Experience)},
		{Name: SectionAvailability, Weight: 20, Filled: frac(s.AnyDay, s.AnySlot)},
		{Name: SectionPricing, Weight: 20, Filled: frac(s.Price)},
	}

	total := 0.0
	incomplete := []string{}
	for i := range sections {
		total += sections[i].Weight * sections[i].Filled
		sections[i].Complete = sections[i].Filled == 1
		if !sections[i].Complete {
			incomplete = append(incomplete, sections[i].Name)
		}
	}

	score := int(math.Round(total))
	return CompletionReport{
		Score:      score,
		CanAccept:  score >= AcceptThreshold,
		Sections:   sections,
		Incomplete: incomplete,
	}
}
