package trainer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/traineme-api/internal/auth"
	domain "github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/infra/memory"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

func ptr[T any](v T) *T { return &v }

func newUser(t *testing.T, store *memory.Store, email string, role models.Role) auth.Identity {
	t.Helper()
	u := &models.User{Email: email, FirstName: "Jo", LastName: "Doe", Role: role}
	require.NoError(t, store.CreateUser(context.Background(), u))
	return auth.Identity{UserID: u.ID, Role: role}
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	create := NewCreateProfile(store, nil)

	client := newUser(t, store, "client@example.com", models.RoleUser)
	_, err := create.Execute(ctx, client, ProfileInput{})
	assert.ErrorIs(t, err, domain.ErrTrainerRole)

	coach := newUser(t, store, "coach@example.com", models.RoleTrainer)
	_, err = create.Execute(ctx, coach, ProfileInput{HourlyRate: ptr(-1.0)})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	p, err := create.Execute(ctx, coach, ProfileInput{
		Bio:        ptr("  Yoga and mobility  "),
		Specialty:  ptr("Yoga"),
		HourlyRate: ptr(40.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Yoga and mobility", p.Bio)
	assert.Equal(t, "Jo", p.User.FirstName)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.ReviewCount)
	assert.False(t, p.IsVerified)

	_, err = create.Execute(ctx, coach, ProfileInput{})
	assert.ErrorIs(t, err, domain.ErrProfileExists)
}

func TestUpdateProfile_OwnerOnlyAndPartial(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	coach := newUser(t, store, "coach@example.com", models.RoleTrainer)
	other := newUser(t, store, "other@example.com", models.RoleTrainer)

	p, err := NewCreateProfile(store, nil).Execute(ctx, coach, ProfileInput{
		Specialty:  ptr("Boxing"),
		HourlyRate: ptr(60.0),
	})
	require.NoError(t, err)

	update := NewUpdateProfile(store, nil)
	_, err = update.Execute(ctx, other, p.ID, ProfileInput{Bio: ptr("hijack")})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = update.Execute(ctx, coach, 999, ProfileInput{})
	assert.ErrorIs(t, err, domain.ErrTrainerNotFound)

	updated, err := update.Execute(ctx, coach, p.ID, ProfileInput{
		Location: ptr("Porto"),
		IsOnline: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Boxing", updated.Specialty)
	assert.Equal(t, 60.0, updated.HourlyRate)
	assert.Equal(t, "Porto", updated.Location)
	assert.True(t, updated.IsOnline)
}

func TestSearchTrainers(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	create := NewCreateProfile(store, nil)

	seed := []struct {
		email     string
		specialty string
		rate      float64
	}{
		{"a@example.com", "Strength Training", 50},
		{"b@example.com", "Yoga", 30},
		{"c@example.com", "strength & conditioning", 80},
	}
	for _, s := range seed {
		actor := newUser(t, store, s.email, models.RoleTrainer)
		_, err := create.Execute(ctx, actor, ProfileInput{Specialty: ptr(s.specialty), HourlyRate: ptr(s.rate)})
		require.NoError(t, err)
	}

	search := NewSearchTrainers(store)

	page, err := search.Execute(ctx, SearchInput{
		Specialty: "STRENGTH",
		MaxPrice:  ptr(60.0),
		Page:      dto.NewPageRequest(1, 10),
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Strength Training", page.Items[0].Specialty)

	all, err := search.Execute(ctx, SearchInput{Page: dto.NewPageRequest(1, 2)})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
	assert.Equal(t, int64(3), all.Pagination.Total)
	assert.Equal(t, 2, all.Pagination.Pages)

	_, err = search.Execute(ctx, SearchInput{MinPrice: ptr(90.0), MaxPrice: ptr(10.0), Page: dto.NewPageRequest(1, 10)})
	assert.ErrorIs(t, err, domain.ErrInvalidPriceSpan)
}

func TestGetCompletion(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	coach := newUser(t, store, "coach@example.com", models.RoleTrainer)

	_, err := NewGetCompletion(store, store).Execute(ctx, coach)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	p, err := NewCreateProfile(store, nil).Execute(ctx, coach, ProfileInput{
		Bio:        ptr("Coach"),
		Location:   ptr("Lisbon"),
		Specialty:  ptr("Running"),
		Experience: ptr(3),
		HourlyRate: ptr(25.0),
	})
	require.NoError(t, err)

	// no photo, no availability: 22.5 + 30 + 0 + 20
	report, err := NewGetCompletion(store, store).Execute(ctx, coach)
	require.NoError(t, err)
	assert.Equal(t, 73, report.Score)
	assert.True(t, report.CanAccept)
	assert.ElementsMatch(t, []string{domain.SectionBasicInfo, domain.SectionAvailability}, report.Incomplete)

	require.NoError(t, store.CreateSlot(ctx, &models.Availability{
		TrainerProfileID: p.ID, Day: "Mon", StartTime: "08:00", EndTime: "12:00", IsActive: true,
	}))
	report, err = NewGetCompletion(store, store).Execute(ctx, coach)
	require.NoError(t, err)
	assert.Equal(t, 93, report.Score)
}

func TestGetTrainer_ActiveSlotsOnly(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	coach := newUser(t, store, "coach@example.com", models.RoleTrainer)
	p, err := NewCreateProfile(store, nil).Execute(ctx, coach, ProfileInput{})
	require.NoError(t, err)

	active := &models.Availability{TrainerProfileID: p.ID, Day: "Tue", StartTime: "08:00", EndTime: "10:00", IsActive: true}
	paused := &models.Availability{TrainerProfileID: p.ID, Day: "Wed", StartTime: "08:00", EndTime: "10:00", IsActive: true}
	require.NoError(t, store.CreateSlot(ctx, active))
	require.NoError(t, store.CreateSlot(ctx, paused))
	require.NoError(t, store.SetSlotActive(ctx, paused, false))

	got, err := NewGetTrainer(store, store).Execute(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Availability, 1)
	assert.Equal(t, "Tue", got.Availability[0].Day)

	_, err = NewGetTrainer(store, store).Execute(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrTrainerNotFound)
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	coach := newUser(t, store, "coach@example.com", models.RoleTrainer)
	p, err := NewCreateProfile(store, nil).Execute(ctx, coach, ProfileInput{})
	require.NoError(t, err)

	require.NoError(t, NewDeleteProfile(store, nil).Execute(ctx, coach, p.ID))

	_, err = NewGetTrainer(store, store).Execute(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrTrainerNotFound)

	// a new profile may be created afterwards
	_, err = NewCreateProfile(store, nil).Execute(ctx, coach, ProfileInput{})
	assert.NoError(t, err)
}
