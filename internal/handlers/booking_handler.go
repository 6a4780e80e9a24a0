package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/httpresp"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
	"github.com/BruksfildServices01/traineme-api/internal/models"
	ucbooking "github.com/BruksfildServices01/traineme-api/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucbooking.CreateBooking
	get    *ucbooking.GetBooking
	list   *ucbooking.ListBookings
	status *ucbooking.UpdateStatus
	cancel *ucbooking.CancelBooking
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	get *ucbooking.GetBooking,
	list *ucbooking.ListBookings,
	status *ucbooking.UpdateStatus,
	cancel *ucbooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		get:    get,
		list:   list,
		status: status,
		cancel: cancel,
	}
}

// CreateBookingRequest carries raw values; the use case validates them
// after the role check.
type CreateBookingRequest struct {
	TrainerID   uint   `json:"trainerId"`
	SessionDate string `json:"sessionDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	actor := middleware.Identity(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if actor.Role != models.RoleUser {
			httperr.Respond(c, "create_booking", booking.ErrBookerRole)
			return
		}
		httperr.BindError(c, "create_booking", err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), actor, ucbooking.CreateInput{
		TrainerID: req.TrainerID,
		Date:      req.SessionDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, "create_booking", err)
		return
	}
	httpresp.Created(c, dto.NewBookingResponse(b))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		httperr.Respond(c, "get_booking", err)
		return
	}

	b, err := h.get.Execute(c.Request.Context(), middleware.Identity(c), id)
	if err != nil {
		httperr.Respond(c, "get_booking", err)
		return
	}
	httpresp.OK(c, dto.NewBookingResponse(b))
}

// Mine handles GET /api/bookings/mine?status&page&limit.
func (h *BookingHandler) Mine(c *gin.Context) {
	page, err := h.list.Mine(c.Request.Context(), middleware.Identity(c), listInput(c))
	if err != nil {
		httperr.Respond(c, "list_user_bookings", err)
		return
	}
	httpresp.Paginated(c, dto.NewBookingPage(page))
}

// Trainer handles GET /api/bookings/trainer?status&page&limit.
func (h *BookingHandler) Trainer(c *gin.Context) {
	page, err := h.list.Trainer(c.Request.Context(), middleware.Identity(c), listInput(c))
	if err != nil {
		httperr.Respond(c, "list_trainer_bookings", err)
		return
	}
	httpresp.Paginated(c, dto.NewBookingPage(page))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		httperr.Respond(c, "update_booking_status", err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, "update_booking_status", err)
		return
	}

	b, err := h.status.Execute(c.Request.Context(), middleware.Identity(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, "update_booking_status", err)
		return
	}
	httpresp.OK(c, dto.NewBookingResponse(b))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		httperr.Respond(c, "cancel_booking", err)
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), middleware.Identity(c), id)
	if err != nil {
		httperr.Respond(c, "cancel_booking", err)
		return
	}
	httpresp.OK(c, dto.NewBookingResponse(b))
}

func listInput(c *gin.Context) ucbooking.ListInput {
	return ucbooking.ListInput{
		Status: c.Query("status"),
		Page:   pageQuery(c),
	}
}
