package trainer

import (
	"context"

	"github.com/BruksfildServices01/traineme-api/internal/auth"
	store "github.com/BruksfildServices01/traineme-api/internal/domain"
	"github.com/BruksfildServices01/traineme-api/internal/domain/availability"
	"github.com/BruksfildServices01/traineme-api/internal/domain/review"
	domain "github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var errInvalidRatingFilter = httperr.Validation("invalid_rating_filter", "rating must be between 0 and 5.")

type GetTrainer struct {
	repo  domain.Repository
	slots availability.Repository
}

func NewGetTrainer(
	repo domain.Repository,
	slots availability.Repository,
) *GetTrainer {
	return &GetTrainer{
		repo:  repo,
		slots: slots,
	}
}

// Execute returns the profile with its owner and active weekly windows.
func (uc *GetTrainer) Execute(ctx context.Context, trainerID uint) (*models.TrainerProfile, error) {
	p, err := uc.repo.GetTrainerProfile(ctx, trainerID)
	if err != nil {
		return nil, store.OrNotFound(err, domain.ErrTrainerNotFound)
	}

	slots, err := uc.slots.ListSlots(ctx, p.ID, true)
	if err != nil {
		return nil, err
	}
	p.Availability = slots

	return p, nil
}

type SearchInput struct {
	Specialty string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Page      dto.PageRequest
}

type SearchTrainers struct {
	repo domain.Repository
}

func NewSearchTrainers(repo domain.Repository) *SearchTrainers {
	return &SearchTrainers{repo: repo}
}

func (uc *SearchTrainers) Execute(
	ctx context.Context,
	in SearchInput,
) (dto.Page[models.TrainerProfile], error) {

	if (in.MinPrice != nil && *in.MinPrice < 0) || (in.MaxPrice != nil && *in.MaxPrice < 0) {
		return dto.Page[models.TrainerProfile]{}, domain.ErrInvalidPrice
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return dto.Page[models.TrainerProfile]{}, domain.ErrInvalidPriceSpan
	}
	if in.MinRating != nil && (*in.MinRating < 0 || *in.MinRating > review.MaxRating) {
		return dto.Page[models.TrainerProfile]{}, errInvalidRatingFilter
	}

	profiles, total, err := uc.repo.SearchTrainerProfiles(ctx, domain.SearchFilter{
		Specialty: in.Specialty,
		MinPrice:  in.MinPrice,
		MaxPrice:  in.MaxPrice,
		MinRating: in.MinRating,
	}, in.Page)
	if err != nil {
		return dto.Page[models.TrainerProfile]{}, err
	}

	return dto.NewPage(profiles, in.Page, total), nil
}

type GetCompletion struct {
	repo  domain.Repository
	slots availability.Repository
}

func NewGetCompletion(
	repo domain.Repository,
	slots availability.Repository,
) *GetCompletion {
	return &GetCompletion{
		repo:  repo,
		slots: slots,
	}
}

func (uc *GetCompletion) Execute(
	ctx context.Context,
	actor auth.Identity,
) (domain.CompletionReport, error) {

	p, err := uc.repo.GetTrainerProfileByUserID(ctx, actor.UserID)
	if err != nil {
		return domain.CompletionReport{}, store.OrNotFound(err, domain.ErrProfileNotFound)
	}

	return Evaluate(ctx, uc.slots, p)
}

// Evaluate scores p against its full weekly schedule.
func Evaluate(
	ctx context.Context,
	slots availability.Repository,
	p *models.TrainerProfile,
) (domain.CompletionReport, error) {
	all, err := slots.ListSlots(ctx, p.ID, false)
	if err != nil {
		return domain.CompletionReport{}, err
	}
	return domain.Completion(domain.SectionsOf(p, all)), nil
}

type ListReviews struct {
	repo    domain.Repository
	reviews review.Repository
}

func NewListReviews(
	repo domain.Repository,
	reviews review.Repository,
) *ListReviews {
	return &ListReviews{
		repo:    repo,
		reviews: reviews,
	}
}

func (uc *ListReviews) Execute(
	ctx context.Context,
	trainerID uint,
	page dto.PageRequest,
) (dto.Page[models.Review], error) {

	if _, err := uc.repo.GetTrainerProfile(ctx, trainerID); err != nil {
		return dto.Page[models.Review]{}, store.OrNotFound(err, domain.ErrTrainerNotFound)
	}

	reviews, total, err := uc.reviews.ListReviewsForTrainer(ctx, trainerID, page)
	if err != nil {
		return dto.Page[models.Review]{}, err
	}
	return dto.NewPage(reviews, page, total), nil
}
