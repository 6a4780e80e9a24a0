package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/auth"
	"github.com/BruksfildServices01/traineme-api/internal/config"
	"github.com/BruksfildServices01/traineme-api/internal/handlers"
	"github.com/BruksfildServices01/traineme-api/internal/media"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
	"github.com/BruksfildServices01/traineme-api/internal/models"
	"github.com/BruksfildServices01/traineme-api/internal/timezone"
	ucAccount "github.com/BruksfildServices01/traineme-api/internal/usecase/account"
	ucAvailability "github.com/BruksfildServices01/traineme-api/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/traineme-api/internal/usecase/booking"
	ucMedia "github.com/BruksfildServices01/traineme-api/internal/usecase/media"
	ucReview "github.com/BruksfildServices01/traineme-api/internal/usecase/review"
	ucTrainer "github.com/BruksfildServices01/traineme-api/internal/usecase/trainer"
	"github.com/BruksfildServices01/traineme-api/internal/validators"
)

// Deps are the process-wide singletons built by main. Redis and Storage
// are optional.
type Deps struct {
	Config  *config.Config
	Repos   Repositories
	Audit   *audit.Dispatcher
	Redis   *redis.Client
	Storage media.Storage
	Clock   timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	repos := d.Repos

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	var checkDomain ucAccount.DomainCheck
	if cfg.CheckEmailDomain {
		checkDomain = validators.EmailDomainResolvable
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(repos.Users, hasher, tokens, d.Audit, checkDomain)
	loginUC := ucAccount.NewLogin(repos.Users, hasher, tokens)
	getProfileUC := ucAccount.NewGetProfile(repos.Users)
	updateProfileUC := ucAccount.NewUpdateProfile(repos.Users, d.Audit)
	deleteAccountUC := ucAccount.NewDeleteAccount(repos.Users, d.Audit)

	createTrainerUC := ucTrainer.NewCreateProfile(repos.Trainers, d.Audit)
	updateTrainerUC := ucTrainer.NewUpdateProfile(repos.Trainers, d.Audit)
	deleteTrainerUC := ucTrainer.NewDeleteProfile(repos.Trainers, d.Audit)
	getTrainerUC := ucTrainer.NewGetTrainer(repos.Trainers, repos.Slots)
	searchTrainersUC := ucTrainer.NewSearchTrainers(repos.Trainers)
	completionUC := ucTrainer.NewGetCompletion(repos.Trainers, repos.Slots)
	listReviewsUC := ucTrainer.NewListReviews(repos.Trainers, repos.Reviews)

	addSlotUC := ucAvailability.NewAddSlot(repos.Slots, repos.Trainers, d.Audit)
	listSlotsUC := ucAvailability.NewListSlots(repos.Slots, repos.Trainers)
	toggleSlotUC := ucAvailability.NewToggleSlot(repos.Slots, repos.Trainers, d.Audit)
	deleteSlotUC := ucAvailability.NewDeleteSlot(repos.Slots, repos.Trainers, d.Audit)

	createBookingUC := ucBooking.NewCreateBooking(repos.Bookings, repos.Trainers, repos.Slots, d.Clock, d.Audit)
	getBookingUC := ucBooking.NewGetBooking(repos.Bookings)
	listBookingsUC := ucBooking.NewListBookings(repos.Bookings, repos.Trainers)
	updateStatusUC := ucBooking.NewUpdateStatus(repos.Bookings, repos.Trainers, repos.Slots, d.Clock, d.Audit)
	cancelBookingUC := ucBooking.NewCancelBooking(repos.Bookings, d.Clock, d.Audit)

	createReviewUC := ucReview.NewCreateReview(repos.Reviews, repos.Bookings, d.Audit)

	uploadImageUC := ucMedia.NewUploadImage(d.Storage, repos.Users, repos.Trainers, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerUC,
		loginUC,
		getProfileUC,
		updateProfileUC,
		deleteAccountUC,
	)

	trainerHandler := handlers.NewTrainerHandler(
		createTrainerUC,
		updateTrainerUC,
		deleteTrainerUC,
		getTrainerUC,
		searchTrainersUC,
		completionUC,
		listReviewsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		addSlotUC,
		listSlotsUC,
		toggleSlotUC,
		deleteSlotUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		listBookingsUC,
		updateStatusUC,
		cancelBookingUC,
	)

	reviewHandler := handlers.NewReviewHandler(createReviewUC)
	mediaHandler := handlers.NewMediaHandler(uploadImageUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(repos.Audit)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cache := middleware.ResponseCache(d.Redis, cfg.CacheTTL)
	authLimit := middleware.RateLimit(d.Redis, "auth", cfg.RateLimitMax, cfg.RateLimitWindow)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authLimit, authHandler.Register)
		api.POST("/auth/login", authLimit, authHandler.Login)

		api.GET("/trainers", cache, trainerHandler.Search)
		api.GET("/trainers/:trainerId", cache, trainerHandler.Get)
		api.GET("/trainers/:trainerId/availability", availabilityHandler.ListForTrainer)
		api.GET("/trainers/:trainerId/reviews", trainerHandler.Reviews)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/auth/profile", authHandler.Profile)
			secured.PUT("/auth/profile", authHandler.UpdateProfile)
			secured.DELETE("/auth/profile", authHandler.DeleteAccount)

			secured.POST("/trainers", trainerHandler.Create)
			secured.PUT("/trainers/:trainerId", trainerHandler.Update)
			secured.DELETE("/trainers/:trainerId", trainerHandler.Delete)

			secured.PATCH("/availability/:slotId/toggle", availabilityHandler.Toggle)
			secured.DELETE("/availability/:slotId", availabilityHandler.Delete)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/mine", bookingHandler.Mine)
			secured.GET("/bookings/trainer", bookingHandler.Trainer)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.POST("/reviews", reviewHandler.Create)

			secured.POST("/me/images/:kind", mediaHandler.Upload)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// TRAINER ONLY
			// ------------------------------
			trainerOnly := secured.Group("/me")
			trainerOnly.Use(middleware.RequireRole(models.RoleTrainer))
			{
				trainerOnly.GET("/trainer/completion", trainerHandler.Completion)
				trainerOnly.GET("/availability", availabilityHandler.Mine)
				trainerOnly.POST("/availability", availabilityHandler.Add)
			}
		}
	}
}
