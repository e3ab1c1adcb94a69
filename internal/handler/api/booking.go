package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"salon-booking/internal/domain/schedule"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands  usecase.BookingCommands
	queries   usecase.BookingQueries
	reminders usecase.ReminderCommands
	clock     clock.Clock
	loc       *time.Location
}

func NewBookingHandler(
	commands usecase.BookingCommands,
	queries usecase.BookingQueries,
	reminders usecase.ReminderCommands,
	clk clock.Clock,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		commands:  commands,
		queries:   queries,
		reminders: reminders,
		clock:     clk,
		loc:       loc,
	}
}

// @Summary Create booking
// @Description Reserve a slot for a customer
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Reserve(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	// 過去日の予約は公開側でのみ拒否する。管理側は過去日の記録も扱う。
	today := schedule.DateOf(h.clock.Now())
	if in.Date.Before(today) {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("booking date is in the past"), "Cannot book a past date", nil)
		return
	}

	view, err := h.commands.Reserve(c.Request.Context(), in)
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	if email := req.GetReminderEmail(); email != "" {
		h.subscribeReminder(c, email, view)
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// 予約は既に確定しているので、リマインダー登録の失敗で予約を失敗にはしない。
func (h *BookingHandler) subscribeReminder(c *gin.Context, email string, view *usecase.BookingView) {
	_, err := h.reminders.Subscribe(c.Request.Context(), usecase.SubscribeReminderInput{
		Email:        email,
		CustomerName: view.CustomerName,
		ServiceName:  view.ServiceName,
		Date:         view.Date,
		SlotTime:     view.SlotTime,
	})
	if err != nil {
		slog.Warn("リマインダー登録に失敗しました", "booking_id", view.ID, "error", err.Error())
	}
}

// @Summary List booked slots
// @Description List (date, time) pairs already taken within a range
// @Tags bookings
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookedSlotResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/slots [get]
func (h *BookingHandler) ListBookedSlots(c *gin.Context) {
	var q reqdto.BookedSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from and to are required", nil)
		return
	}

	from, to, err := q.ToRange(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	slots, err := h.queries.ListBookedSlots(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]resdto.BookedSlotResponse, len(slots))
	for i, s := range slots {
		response[i] = resdto.FromBookedSlot(s)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create booking (admin)
// @Description Create a booking without the availability gate
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings [post]
func (h *BookingHandler) AdminCreate(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.commands.CreateBooking(c.Request.Context(), in)
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings (admin)
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /admin/bookings [get]
func (h *BookingHandler) AdminList(c *gin.Context) {
	views, err := h.queries.ListBookings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get booking (admin)
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking (admin)
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id} [put]
func (h *BookingHandler) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	if err := h.commands.UpdateBooking(c.Request.Context(), id, in); err != nil {
		h.abortWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated",
	})
}

// @Summary Delete booking (admin)
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.commands.DeleteBooking(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking deleted",
	})
}

func (h *BookingHandler) abortWithBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking validation failed", nil)
	case errors.Is(err, errs.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not available", nil)
	case errors.Is(err, errs.ErrAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is already booked", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid path id"), "Invalid ID format", nil)
		return 0, false
	}
	return id, true
}
