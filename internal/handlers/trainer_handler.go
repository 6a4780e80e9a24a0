package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/httpresp"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
	uctrainer "github.com/BruksfildServices01/traineme-api/internal/usecase/trainer"
)

type TrainerHandler struct {
	create     *uctrainer.CreateProfile
	update     *uctrainer.UpdateProfile
	remove     *uctrainer.DeleteProfile
	get        *uctrainer.GetTrainer
	search     *uctrainer.SearchTrainers
	completion *uctrainer.GetCompletion
	reviews    *uctrainer.ListReviews
}

func NewTrainerHandler(
	create *uctrainer.CreateProfile,
	update *uctrainer.UpdateProfile,
	remove *uctrainer.DeleteProfile,
	get *uctrainer.GetTrainer,
	search *uctrainer.SearchTrainers,
	completion *uctrainer.GetCompletion,
	reviews *uctrainer.ListReviews,
) *TrainerHandler {
	return &TrainerHandler{
		create:     create,
		update:     update,
		remove:     remove,
		get:        get,
		search:     search,
		completion: completion,
		reviews:    reviews,
	}
}

// TrainerProfileRequest is shared by create and update; omitted fields are
// left unchanged.
type TrainerProfileRequest struct {
	Bio            *string  `json:"bio"`
	Specialty      *string  `json:"specialty"`
	Experience     *int     `json:"experience"`
	ExperienceText *string  `json:"experienceText"`
	Certifications *string  `json:"certifications"`
	Location       *string  `json:"location"`
	HourlyRate     *float64 `json:"hourlyRate"`
	IsOnline       *bool    `json:"isOnline"`
	ProfileImage   *string  `json:"profileImage"`
	BannerImage    *string  `json:"bannerImage"`
}

func (r TrainerProfileRequest) input() uctrainer.ProfileInput {
	return uctrainer.ProfileInput{
		Bio:            r.Bio,
		Specialty:      r.Specialty,
		Experience:     r.Experience,
		ExperienceText: r.ExperienceText,
		Certifications: r.Certifications,
		Location:       r.Location,
		HourlyRate:     r.HourlyRate,
		IsOnline:       r.IsOnline,
		ProfileImage:   r.ProfileImage,
		BannerImage:    r.BannerImage,
	}
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req TrainerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, "create_trainer", err)
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.Identity(c), req.input())
	if err != nil {
		httperr.Respond(c, "create_trainer", err)
		return
	}
	httpresp.Created(c, dto.NewTrainerResponse(p))
}

func (h *TrainerHandler) Update(c *gin.Context) {
	trainerID, err := uintParam(c, "trainerId")
	if err != nil {
		httperr.Respond(c, "update_trainer", err)
		return
	}

	var req TrainerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, "update_trainer", err)
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.Identity(c), trainerID, req.input())
	if err != nil {
		httperr.Respond(c, "update_trainer", err)
		return
	}
	httpresp.OK(c, dto.NewTrainerResponse(p))
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	trainerID, err := uintParam(c, "trainerId")
	if err != nil {
		httperr.Respond(c, "delete_trainer", err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.Identity(c), trainerID); err != nil {
		httperr.Respond(c, "delete_trainer", err)
		return
	}
	httpresp.NoContent(c)
}

func (h *TrainerHandler) Get(c *gin.Context) {
	trainerID, err := uintParam(c, "trainerId")
	if err != nil {
		httperr.Respond(c, "get_trainer", err)
		return
	}

	p, err := h.get.Execute(c.Request.Context(), trainerID)
	if err != nil {
		httperr.Respond(c, "get_trainer", err)
		return
	}
	httpresp.OK(c, dto.NewTrainerResponse(p))
}

// Search handles GET /api/trainers?specialty&minPrice&maxPrice&rating&page&limit.
func (h *TrainerHandler) Search(c *gin.Context) {
	in := uctrainer.SearchInput{
		Specialty: strings.TrimSpace(c.Query("specialty")),
		Page:      pageQuery(c),
	}

	var err error
	if in.MinPrice, err = floatQuery(c, "minPrice"); err != nil {
		httperr.Respond(c, "search_trainers", err)
		return
	}
	if in.MaxPrice, err = floatQuery(c, "maxPrice"); err != nil {
		httperr.Respond(c, "search_trainers", err)
		return
	}
	if in.MinRating, err = floatQuery(c, "rating"); err != nil {
		httperr.Respond(c, "search_trainers", err)
		return
	}

	page, err := h.search.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, "search_trainers", err)
		return
	}
	httpresp.Paginated(c, dto.NewTrainerPage(page))
}

func (h *TrainerHandler) Completion(c *gin.Context) {
	report, err := h.completion.Execute(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		httperr.Respond(c, "trainer_completion", err)
		return
	}
	httpresp.OK(c, report)
}

func (h *TrainerHandler) Reviews(c *gin.Context) {
	trainerID, err := uintParam(c, "trainerId")
	if err != nil {
		httperr.Respond(c, "list_reviews", err)
		return
	}

	page, err := h.reviews.Execute(c.Request.Context(), trainerID, pageQuery(c))
	if err != nil {
		httperr.Respond(c, "list_reviews", err)
		return
	}
	httpresp.Paginated(c, page)
}
