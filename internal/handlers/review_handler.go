package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/httpresp"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
	ucreview "github.com/BruksfildServices01/traineme-api/internal/usecase/review"
)

type ReviewHandler struct {
	create *ucreview.CreateReview
}

func NewReviewHandler(create *ucreview.CreateReview) *ReviewHandler {
	return &ReviewHandler{create: create}
}

type CreateReviewRequest struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, "create_review", err)
		return
	}

	r, err := h.create.Execute(c.Request.Context(), middleware.Identity(c), ucreview.CreateInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.Respond(c, "create_review", err)
		return
	}
	httpresp.Created(c, r)
}
