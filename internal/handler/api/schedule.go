package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	commands usecase.ScheduleCommands
	queries  usecase.ScheduleQueries
	loc      *time.Location
}

func NewScheduleHandler(commands usecase.ScheduleCommands, queries usecase.ScheduleQueries, loc *time.Location) *ScheduleHandler {
	return &ScheduleHandler{
		commands: commands,
		queries:  queries,
		loc:      loc,
	}
}

// @Summary List active slots
// @Description List the bookable time slots shown to customers
// @Tags slots
// @Produce json
// @Success 200 {array} resdto.SlotResponse
// @Router /slots [get]
func (h *ScheduleHandler) ListActive(c *gin.Context) {
	slots, err := h.queries.ListActiveSlots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}

// @Summary List all slots (admin)
// @Tags admin-slots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SlotResponse
// @Router /admin/slots [get]
func (h *ScheduleHandler) AdminList(c *gin.Context) {
	slots, err := h.queries.ListAllSlots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}

// @Summary Add slot (admin)
// @Tags admin-slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/slots [post]
func (h *ScheduleHandler) AdminCreate(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	slotTime, err := req.SlotTime()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Time must be in HH:MM format", nil)
		return
	}

	view, err := h.commands.AddSlot(c.Request.Context(), slotTime, req.Label, req.DisplayOrder)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateSlot):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Remove slot (admin)
// @Tags admin-slots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /admin/slots/{id} [delete]
func (h *ScheduleHandler) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.commands.RemoveSlot(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrSlotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Slot removed",
	})
}

// @Summary Set date availability (admin)
// @Description Open or close a whole day for booking
// @Tags admin-availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetDateOpenRequest true "Date availability"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /admin/availability/dates [put]
func (h *ScheduleHandler) AdminSetDateOpen(c *gin.Context) {
	var req reqdto.SetDateOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	date, err := req.ParsedDate(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	if err := h.commands.SetDateOpen(c.Request.Context(), date, *req.IsOpen); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Date availability updated",
	})
}

// @Summary Set slot override (admin)
// @Description Override availability for one (date, slot) pair
// @Tags admin-availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetSlotOverrideRequest true "Slot override"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /admin/availability/slots [put]
func (h *ScheduleHandler) AdminSetSlotOverride(c *gin.Context) {
	var req reqdto.SetSlotOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	date, slotTime, err := req.Parse(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	if err := h.commands.SetSlotOverride(c.Request.Context(), date, slotTime, *req.IsAvailable); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Slot override updated",
	})
}
