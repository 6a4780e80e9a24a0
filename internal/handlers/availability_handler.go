package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/httpresp"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
	ucavailability "github.com/BruksfildServices01/traineme-api/internal/usecase/availability"
)

type AvailabilityHandler struct {
	add    *ucavailability.AddSlot
	list   *ucavailability.ListSlots
	toggle *ucavailability.ToggleSlot
	remove *ucavailability.DeleteSlot
}

func NewAvailabilityHandler(
	add *ucavailability.AddSlot,
	list *ucavailability.ListSlots,
	toggle *ucavailability.ToggleSlot,
	remove *ucavailability.DeleteSlot,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		add:    add,
		list:   list,
		toggle: toggle,
		remove: remove,
	}
}

type AddSlotRequest struct {
	Day       string `json:"day" binding:"required,weekday"`
	StartTime string `json:"startTime" binding:"required,hhmm"`
	EndTime   string `json:"endTime" binding:"required,hhmm"`
}

func (h *AvailabilityHandler) Add(c *gin.Context) {
	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, "add_slot", err)
		return
	}

	slot, err := h.add.Execute(c.Request.Context(), middleware.Identity(c), ucavailability.AddSlotInput{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.Respond(c, "add_slot", err)
		return
	}
	httpresp.Created(c, dto.NewSlotResponse(*slot))
}

// ListForTrainer is the public view: active windows only.
func (h *AvailabilityHandler) ListForTrainer(c *gin.Context) {
	trainerID, err := uintParam(c, "trainerId")
	if err != nil {
		httperr.Respond(c, "list_slots", err)
		return
	}

	slots, err := h.list.ForTrainer(c.Request.Context(), trainerID)
	if err != nil {
		httperr.Respond(c, "list_slots", err)
		return
	}
	httpresp.OK(c, dto.NewSlotResponses(slots))
}

func (h *AvailabilityHandler) Mine(c *gin.Context) {
	slots, err := h.list.Mine(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		httperr.Respond(c, "list_own_slots", err)
		return
	}
	httpresp.OK(c, dto.NewSlotResponses(slots))
}

func (h *AvailabilityHandler) Toggle(c *gin.Context) {
	slotID, err := uintParam(c, "slotId")
	if err != nil {
		httperr.Respond(c, "toggle_slot", err)
		return
	}

	slot, err := h.toggle.Execute(c.Request.Context(), middleware.Identity(c), slotID)
	if err != nil {
		httperr.Respond(c, "toggle_slot", err)
		return
	}
	httpresp.OK(c, dto.NewSlotResponse(*slot))
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	slotID, err := uintParam(c, "slotId")
	if err != nil {
		httperr.Respond(c, "delete_slot", err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.Identity(c), slotID); err != nil {
		httperr.Respond(c, "delete_slot", err)
		return
	}
	httpresp.NoContent(c)
}
