package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	commands usecase.CatalogCommands
	queries  usecase.CatalogQueries
}

func NewServiceHandler(commands usecase.CatalogCommands, queries usecase.CatalogQueries) *ServiceHandler {
	return &ServiceHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary List active services
// @Description List the service menu shown to customers
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) ListActive(c *gin.Context) {
	views, err := h.queries.ListActiveServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary List all services (admin)
// @Tags admin-services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceResponse
// @Router /admin/services [get]
func (h *ServiceHandler) AdminList(c *gin.Context) {
	views, err := h.queries.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service (admin)
// @Tags admin-services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/services/{id} [get]
func (h *ServiceHandler) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrServiceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service (admin)
// @Tags admin-services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ServiceRequest true "Service request"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/services [post]
func (h *ServiceHandler) AdminCreate(c *gin.Context) {
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.CreateService(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, errs.ErrServiceValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service validation failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update service (admin)
// @Tags admin-services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service request"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /admin/services/{id} [put]
func (h *ServiceHandler) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.UpdateService(c.Request.Context(), id, req.ToInput()); err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, errs.ErrServiceValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated",
	})
}

// @Summary Delete service (admin)
// @Tags admin-services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /admin/services/{id} [delete]
func (h *ServiceHandler) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.commands.DeleteService(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrServiceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service deleted",
	})
}
