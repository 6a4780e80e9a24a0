package media

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/traineme-api/internal/auth"
	"github.com/BruksfildServices01/traineme-api/internal/domain/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/infra/memory"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

type fakeStorage struct {
	keys []string
}

func (s *fakeStorage) Put(_ context.Context, key string, body []byte, contentType string) (string, error) {
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func tinyPNG(t *testing.T) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return bytes.NewReader(buf.Bytes())
}

func newUser(t *testing.T, store *memory.Store, role models.Role) auth.Identity {
	t.Helper()
	u := &models.User{Email: "u@example.com", FirstName: "U", LastName: "V", Role: role}
	require.NoError(t, store.CreateUser(context.Background(), u))
	return auth.Identity{UserID: u.ID, Role: role}
}

func TestUploadImage_Profile(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	storage := &fakeStorage{}
	actor := newUser(t, store, models.RoleUser)

	url, err := NewUploadImage(storage, store, store, nil).Execute(ctx, actor, KindProfile, tinyPNG(t))
	require.NoError(t, err)

	require.Len(t, storage.keys, 1)
	assert.True(t, strings.HasPrefix(storage.keys[0], "profile/"))
	assert.True(t, strings.HasSuffix(storage.keys[0], ".webp"))

	u, err := store.GetUserByID(ctx, actor.UserID)
	require.NoError(t, err)
	assert.Equal(t, url, u.ProfileImage)
}

func TestUploadImage_Banner(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	actor := newUser(t, store, models.RoleTrainer)
	uc := NewUploadImage(&fakeStorage{}, store, store, nil)

	_, err := uc.Execute(ctx, actor, KindBanner, tinyPNG(t))
	assert.ErrorIs(t, err, trainer.ErrProfileNotFound)

	p := &models.TrainerProfile{UserID: actor.UserID}
	require.NoError(t, store.CreateTrainerProfile(ctx, p))

	url, err := uc.Execute(ctx, actor, KindBanner, tinyPNG(t))
	require.NoError(t, err)

	got, err := store.GetTrainerProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, url, got.BannerImage)
}

func TestUploadImage_Rejections(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	actor := newUser(t, store, models.RoleUser)

	_, err := NewUploadImage(&fakeStorage{}, store, store, nil).Execute(ctx, actor, "avatar", tinyPNG(t))
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = NewUploadImage(nil, store, store, nil).Execute(ctx, actor, KindProfile, tinyPNG(t))
	assert.ErrorIs(t, err, ErrUnavailable)
}
