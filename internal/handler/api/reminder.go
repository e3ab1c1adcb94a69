package api

import (
	"net/http"

	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/scheduler"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	scheduler *scheduler.ReminderScheduler
}

func NewReminderHandler(sched *scheduler.ReminderScheduler) *ReminderHandler {
	return &ReminderHandler{scheduler: sched}
}

// @Summary Run reminder sweep (admin)
// @Description Trigger the day-before reminder sweep outside its daily schedule
// @Tags admin-reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /admin/reminders/run [post]
func (h *ReminderHandler) RunNow(c *gin.Context) {
	if h.scheduler == nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.New("reminder scheduler not configured"), "Reminder scheduler is disabled", nil)
		return
	}

	if err := h.scheduler.RunNow(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reminder sweep failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reminder sweep completed",
	})
}
