package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/config"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/infra/memory"
	"github.com/BruksfildServices01/traineme-api/internal/models"
	"github.com/BruksfildServices01/traineme-api/internal/routes"
	"github.com/BruksfildServices01/traineme-api/internal/timezone"
	"github.com/BruksfildServices01/traineme-api/internal/validators"
)

func init() {
	gin.SetMode(gin.TestMode)
	validators.Register()
}

type harness struct {
	t     *testing.T
	r     *gin.Engine
	store *memory.Store
	audit *audit.Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := memory.New()
	dispatcher := audit.NewDispatcher(audit.New(store))
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config: &config.Config{
			JWTSecret:  "test-secret",
			JWTTTL:     time.Hour,
			BcryptCost: bcrypt.MinCost,
			CacheTTL:   time.Second,
		},
		Repos: routes.MemoryRepositories(store),
		Audit: dispatcher,
		Clock: timezone.Fixed(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)),
	})

	return &harness{t: t, r: r, store: store, audit: dispatcher}
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (h *harness) register(email, role string) (string, uint) {
	h.t.Helper()

	w := h.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     email,
		"password":  "secret123",
		"firstName": "Ana",
		"lastName":  "Silva",
		"role":      role,
	})
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())

	res := decode[dto.AuthResponse](h.t, w)
	require.NotEmpty(h.t, res.Token)
	return res.Token, res.User.ID
}

// trainer registers a trainer with a complete profile and a Thursday
// 09:00-17:00 window.
func (h *harness) trainer(email string, complete bool) (string, uint) {
	h.t.Helper()

	token, _ := h.register(email, "trainer")

	profile := gin.H{"hourlyRate": 40}
	if complete {
		profile = gin.H{
			"bio":          "Strength and conditioning",
			"specialty":    "Strength",
			"experience":   5,
			"location":     "Lisbon",
			"hourlyRate":   45,
			"profileImage": "https://cdn.example.com/p.webp",
		}
	}

	w := h.do(http.MethodPost, "/api/trainers", token, profile)
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())
	p := decode[dto.TrainerResponse](h.t, w)

	w = h.do(http.MethodPost, "/api/me/availability", token, gin.H{
		"day": "thu", "startTime": "09:00", "endTime": "17:00",
	})
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())

	return token, p.ID
}

func (h *harness) book(token string, trainerID uint, date, start, end string) *httptest.ResponseRecorder {
	h.t.Helper()
	return h.do(http.MethodPost, "/api/bookings", token, gin.H{
		"trainerId":   trainerID,
		"sessionDate": date,
		"startTime":   start,
		"endTime":     end,
	})
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	h := newHarness(t)

	token, id := h.register("  Ana@Example.com ", "User")

	t.Run("duplicate email in another case", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "ana@example.COM", "password": "secret123",
			"firstName": "A", "lastName": "B", "role": "USER",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "x@example.com", "password": "secret123",
			"firstName": "A", "lastName": "B", "role": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "y@example.com", "password": "123",
			"firstName": "A", "lastName": "B", "role": "USER",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("password over the bcrypt limit", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "z@example.com", "password": strings.Repeat("p", 73),
			"firstName": "A", "lastName": "B", "role": "USER",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "password_too_long")
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		wrong := h.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ana@example.com", "password": "nope-nope"})
		unknown := h.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ghost@example.com", "password": "nope-nope"})

		assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.JSONEq(t, wrong.Body.String(), unknown.Body.String())
	})

	t.Run("login", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ANA@example.com", "password": "secret123"})
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[dto.AuthResponse](t, w)
		assert.Equal(t, id, res.User.ID)
		assert.Equal(t, "ana@example.com", res.User.Email)
		assert.Equal(t, models.RoleUser, res.User.Role)
		assert.NotContains(t, w.Body.String(), "secret123")
	})

	t.Run("profile requires a token", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/auth/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("update profile", func(t *testing.T) {
		w := h.do(http.MethodPut, "/api/auth/profile", token, gin.H{"phone": "+351 900 000 000"})
		require.Equal(t, http.StatusOK, w.Code)

		w = h.do(http.MethodGet, "/api/auth/profile", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		u := decode[models.User](t, w)
		assert.Equal(t, "+351 900 000 000", u.Phone)
		assert.Equal(t, "Ana", u.FirstName)
	})
}

func TestTrainerDirectory(t *testing.T) {
	h := newHarness(t)

	trainerToken, trainerID := h.trainer("coach@example.com", true)
	userToken, _ := h.register("client@example.com", "user")

	t.Run("users cannot create trainer profiles", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/trainers", userToken, gin.H{"hourlyRate": 10})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("one profile per trainer", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/trainers", trainerToken, gin.H{"hourlyRate": 10})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("public detail hides contact data", func(t *testing.T) {
		w := h.do(http.MethodGet, fmt.Sprintf("/api/trainers/%d", trainerID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		p := decode[dto.TrainerResponse](t, w)
		assert.Equal(t, "Ana", p.FirstName)
		assert.Len(t, p.Availability, 1)
		assert.Equal(t, "Thu", p.Availability[0].Day)
		assert.NotContains(t, w.Body.String(), "coach@example.com")
	})

	t.Run("missing trainer", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/trainers/999", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("search", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/trainers?specialty=stren&maxPrice=50", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		page := decode[dto.Page[dto.TrainerResponse]](t, w)
		assert.Equal(t, int64(1), page.Pagination.Total)

		w = h.do(http.MethodGet, "/api/trainers?minPrice=60&maxPrice=50", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		for _, q := range []string{"minPrice=NaN", "maxPrice=Inf", "rating=-Infinity", "minPrice=nan&maxPrice=50"} {
			w = h.do(http.MethodGet, "/api/trainers?"+q, "", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
			assert.Contains(t, w.Body.String(), "invalid_query", q)
		}
	})

	t.Run("only the owner updates", func(t *testing.T) {
		other, _ := h.register("other-coach@example.com", "trainer")
		w := h.do(http.MethodPut, fmt.Sprintf("/api/trainers/%d", trainerID), other, gin.H{"bio": "hijack"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = h.do(http.MethodPut, fmt.Sprintf("/api/trainers/%d", trainerID), trainerToken, gin.H{"isOnline": true, "rating": 5})
		require.Equal(t, http.StatusOK, w.Code)
		p := decode[dto.TrainerResponse](t, w)
		assert.True(t, p.IsOnline)
		assert.Zero(t, p.Rating)
	})

	t.Run("completion", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/me/trainer/completion", trainerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		report := decode[map[string]any](t, w)
		assert.EqualValues(t, 100, report["score"])
		assert.Equal(t, true, report["canAccept"])

		w = h.do(http.MethodGet, "/api/me/trainer/completion", userToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAvailabilityEndpoints(t *testing.T) {
	h := newHarness(t)
	token, trainerID := h.trainer("coach@example.com", true)

	w := h.do(http.MethodPost, "/api/me/availability", token, gin.H{"day": "Thu", "startTime": "16:00", "endTime": "18:00"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodPost, "/api/me/availability", token, gin.H{"day": "Fri", "startTime": "12:00", "endTime": "10:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPost, "/api/me/availability", token, gin.H{"day": "Fri", "startTime": "25:00", "endTime": "26:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPost, "/api/me/availability", token, gin.H{"day": "fri", "startTime": "10:00", "endTime": "12:00"})
	require.Equal(t, http.StatusCreated, w.Code)
	slot := decode[dto.SlotResponse](t, w)
	assert.Equal(t, "Fri", slot.Day)

	w = h.do(http.MethodPatch, fmt.Sprintf("/api/availability/%d/toggle", slot.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[dto.SlotResponse](t, w).IsActive)

	w = h.do(http.MethodGet, fmt.Sprintf("/api/trainers/%d/availability", trainerID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.SlotResponse](t, w), 1)

	w = h.do(http.MethodGet, "/api/me/availability", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.SlotResponse](t, w), 2)

	other, _ := h.trainer("other@example.com", false)
	w = h.do(http.MethodDelete, fmt.Sprintf("/api/availability/%d", slot.ID), other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(http.MethodDelete, fmt.Sprintf("/api/availability/%d", slot.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAvailability_UntilMidnight(t *testing.T) {
	h := newHarness(t)
	token, trainerID := h.trainer("coach@example.com", true)
	userToken, _ := h.register("client@example.com", "user")

	w := h.do(http.MethodPost, "/api/me/availability", token, gin.H{"day": "Sat", "startTime": "20:00", "endTime": "24:00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "24:00", decode[dto.SlotResponse](t, w).EndTime)

	w = h.do(http.MethodPost, "/api/me/availability", token, gin.H{"day": "Sun", "startTime": "24:00", "endTime": "24:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 2026-02-07 is a Saturday.
	w = h.book(userToken, trainerID, "2026-02-07", "22:00", "24:00")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := decode[dto.BookingResponse](t, w)
	assert.Equal(t, "24:00", b.EndTime)
	assert.Equal(t, "2026-02-07", b.SessionDate)
	assert.Equal(t, 2*time.Hour, b.EndsAt.Sub(b.StartsAt))

	w = h.book(userToken, trainerID, "2026-02-07", "23:00", "24:00")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingLifecycle(t *testing.T) {
	h := newHarness(t)

	trainerToken, trainerID := h.trainer("coach@example.com", true)
	userToken, userID := h.register("client@example.com", "user")
	strangerToken, _ := h.register("stranger@example.com", "user")

	w := h.book(userToken, trainerID, "2026-02-05", "10:00", "11:00")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := decode[dto.BookingResponse](t, w)
	assert.Equal(t, "Pending", b.Status)
	assert.Equal(t, 45.0, b.Price)
	assert.Equal(t, "2026-02-05", b.SessionDate)
	assert.Equal(t, userID, b.UserID)

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name   string
			token  string
			body   gin.H
			status int
		}{
			{"trainer role", trainerToken, gin.H{"trainerId": trainerID, "sessionDate": "2026-02-05", "startTime": "12:00", "endTime": "13:00"}, http.StatusForbidden},
			{"bad date", userToken, gin.H{"trainerId": trainerID, "sessionDate": "05/02/2026", "startTime": "12:00", "endTime": "13:00"}, http.StatusBadRequest},
			{"reversed window", userToken, gin.H{"trainerId": trainerID, "sessionDate": "2026-02-05", "startTime": "13:00", "endTime": "12:00"}, http.StatusBadRequest},
			{"unknown trainer", userToken, gin.H{"trainerId": 999, "sessionDate": "2026-02-05", "startTime": "12:00", "endTime": "13:00"}, http.StatusNotFound},
			{"in the past", userToken, gin.H{"trainerId": trainerID, "sessionDate": "2025-12-25", "startTime": "12:00", "endTime": "13:00"}, http.StatusBadRequest},
			{"outside availability", userToken, gin.H{"trainerId": trainerID, "sessionDate": "2026-02-06", "startTime": "12:00", "endTime": "13:00"}, http.StatusConflict},
			{"overlap", userToken, gin.H{"trainerId": trainerID, "sessionDate": "2026-02-05", "startTime": "10:30", "endTime": "11:30"}, http.StatusConflict},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := h.do(http.MethodPost, "/api/bookings", tc.token, tc.body)
				assert.Equal(t, tc.status, w.Code, w.Body.String())
			})
		}
	})

	t.Run("trainer role is checked before the payload", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/bookings", trainerToken, "not an object")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	path := fmt.Sprintf("/api/bookings/%d", b.ID)

	t.Run("participants only", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, h.do(http.MethodGet, path, userToken, nil).Code)
		assert.Equal(t, http.StatusOK, h.do(http.MethodGet, path, trainerToken, nil).Code)
		assert.Equal(t, http.StatusForbidden, h.do(http.MethodGet, path, strangerToken, nil).Code)
		assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/api/bookings/999", userToken, nil).Code)
	})

	t.Run("only the trainer drives the status", func(t *testing.T) {
		w := h.do(http.MethodPatch, path+"/status", userToken, gin.H{"status": "Confirmed"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = h.do(http.MethodPatch, path+"/status", trainerToken, gin.H{"status": "completed"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	w = h.do(http.MethodPatch, path+"/status", trainerToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Confirmed", decode[dto.BookingResponse](t, w).Status)

	t.Run("review needs a completed session", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/reviews", userToken, gin.H{"bookingId": b.ID, "rating": 5})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	w = h.do(http.MethodPatch, path+"/status", trainerToken, gin.H{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		w := h.do(http.MethodPost, path+"/cancel", userToken, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("review", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/reviews", strangerToken, gin.H{"bookingId": b.ID, "rating": 5})
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = h.do(http.MethodPost, "/api/reviews", userToken, gin.H{"bookingId": b.ID, "rating": 4.7})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = h.do(http.MethodPost, "/api/reviews", userToken, gin.H{"bookingId": b.ID, "rating": 4.5, "comment": "Great"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = h.do(http.MethodPost, "/api/reviews", userToken, gin.H{"bookingId": b.ID, "rating": 5})
		assert.Equal(t, http.StatusConflict, w.Code)

		w = h.do(http.MethodGet, fmt.Sprintf("/api/trainers/%d", trainerID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		p := decode[dto.TrainerResponse](t, w)
		assert.Equal(t, 4.5, p.Rating)
		assert.Equal(t, 1, p.ReviewCount)

		w = h.do(http.MethodGet, fmt.Sprintf("/api/trainers/%d/reviews", trainerID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		reviews := decode[dto.Page[models.Review]](t, w)
		require.Len(t, reviews.Items, 1)
		assert.Equal(t, "Great", reviews.Items[0].Comment)
	})
}

func TestCancelFreesTheWindow(t *testing.T) {
	h := newHarness(t)

	trainerToken, trainerID := h.trainer("coach@example.com", true)
	userToken, _ := h.register("client@example.com", "user")

	w := h.book(userToken, trainerID, "2026-02-05", "10:00", "11:00")
	require.Equal(t, http.StatusCreated, w.Code)
	b := decode[dto.BookingResponse](t, w)

	w = h.do(http.MethodPost, fmt.Sprintf("/api/bookings/%d/cancel", b.ID), trainerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cancelled", decode[dto.BookingResponse](t, w).Status)

	w = h.book(userToken, trainerID, "2026-02-05", "10:00", "11:00")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestConfirm_ProfileIncomplete(t *testing.T) {
	h := newHarness(t)

	trainerToken, trainerID := h.trainer("coach@example.com", false)
	userToken, _ := h.register("client@example.com", "user")

	w := h.book(userToken, trainerID, "2026-02-05", "10:00", "11:00")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := decode[dto.BookingResponse](t, w)

	w = h.do(http.MethodPatch, fmt.Sprintf("/api/bookings/%d/status", b.ID), trainerToken, gin.H{"status": "Confirmed"})
	require.Equal(t, http.StatusConflict, w.Code)

	body := decode[map[string]any](t, w)
	assert.NotEmpty(t, body["error"])
	assert.Contains(t, body["incomplete_sections"], "expertise")
	assert.Less(t, body["score"], float64(70))
}

func TestListBookings_Pagination(t *testing.T) {
	h := newHarness(t)

	trainerToken, trainerID := h.trainer("coach@example.com", true)
	userToken, _ := h.register("client@example.com", "user")

	// eight one-hour sessions per Thursday
	for _, day := range []string{"2026-02-05", "2026-02-12"} {
		for hour := 9; hour < 17; hour++ {
			w := h.book(userToken, trainerID, day, fmt.Sprintf("%02d:00", hour), fmt.Sprintf("%02d:00", hour+1))
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
	}

	w := h.do(http.MethodGet, "/api/bookings/mine?page=2&limit=5", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[dto.Page[dto.BookingResponse]](t, w)
	assert.Equal(t, dto.Pagination{Total: 16, Page: 2, Limit: 5, Pages: 4}, page.Pagination)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "2026-02-12", page.Items[0].SessionDate)
	assert.Equal(t, "11:00", page.Items[0].StartTime)

	w = h.do(http.MethodGet, "/api/bookings/trainer?status=pending&limit=100", trainerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.Page[dto.BookingResponse]](t, w).Items, 16)

	w = h.do(http.MethodGet, "/api/bookings/trainer?status=Confirmed", trainerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.Page[dto.BookingResponse]](t, w).Items)

	w = h.do(http.MethodGet, "/api/bookings/mine?page=9223372036854775807&limit=100", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page = decode[dto.Page[dto.BookingResponse]](t, w)
	assert.Empty(t, page.Items)
	assert.Equal(t, dto.MaxPage, page.Pagination.Page)
	assert.Equal(t, int64(16), page.Pagination.Total)

	w = h.do(http.MethodGet, "/api/bookings/mine?status=bogus", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/api/bookings/trainer", userToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingPrice_KeptAfterRateChange(t *testing.T) {
	h := newHarness(t)

	trainerToken, trainerID := h.trainer("coach@example.com", true)
	userToken, _ := h.register("client@example.com", "user")

	w := h.book(userToken, trainerID, "2026-02-05", "10:00", "12:00")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := decode[dto.BookingResponse](t, w)
	require.Equal(t, 45.0, b.Price)

	w = h.do(http.MethodPut, fmt.Sprintf("/api/trainers/%d", trainerID), trainerToken, gin.H{"hourlyRate": 90})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 90.0, decode[dto.TrainerResponse](t, w).HourlyRate)

	w = h.do(http.MethodGet, fmt.Sprintf("/api/bookings/%d", b.ID), userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 45.0, decode[dto.BookingResponse](t, w).Price)

	w = h.do(http.MethodGet, "/api/bookings/mine", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[dto.Page[dto.BookingResponse]](t, w)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, 45.0, mine.Items[0].Price)

	w = h.do(http.MethodGet, "/api/bookings/trainer", trainerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 45.0, decode[dto.Page[dto.BookingResponse]](t, w).Items[0].Price)

	w = h.book(userToken, trainerID, "2026-02-05", "13:00", "14:00")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 90.0, decode[dto.BookingResponse](t, w).Price)
}

func TestDeleteAccount_CancelsOpenBookings(t *testing.T) {
	h := newHarness(t)

	trainerToken, trainerID := h.trainer("coach@example.com", true)
	userToken, _ := h.register("client@example.com", "user")

	w := h.book(userToken, trainerID, "2026-02-05", "10:00", "11:00")
	require.Equal(t, http.StatusCreated, w.Code)
	b := decode[dto.BookingResponse](t, w)

	w = h.do(http.MethodDelete, "/api/auth/profile", trainerToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(http.MethodGet, fmt.Sprintf("/api/bookings/%d", b.ID), userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cancelled", decode[dto.BookingResponse](t, w).Status)

	w = h.do(http.MethodGet, fmt.Sprintf("/api/trainers/%d", trainerID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "coach@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadImage_WithoutStorage(t *testing.T) {
	h := newHarness(t)
	token, _ := h.register("client@example.com", "user")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "me.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("not really a png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/me/images/profile", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/me/images/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	h.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditLogs(t *testing.T) {
	h := newHarness(t)
	token, _ := h.register("client@example.com", "user")

	w := h.do(http.MethodPut, "/api/auth/profile", token, gin.H{"firstName": "Bea"})
	require.Equal(t, http.StatusOK, w.Code)

	// flush queued events
	h.audit.Close()

	w = h.do(http.MethodGet, "/api/me/audit-logs?limit=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[dto.Page[models.AuditLog]](t, w)
	assert.Equal(t, int64(2), page.Pagination.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, audit.ActionUserUpdated, page.Items[0].Action)

	w = h.do(http.MethodGet, "/api/me/audit-logs?action="+audit.ActionUserRegistered, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.Page[models.AuditLog]](t, w).Items, 1)
}
