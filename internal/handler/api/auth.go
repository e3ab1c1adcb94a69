package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	sessionTTL  config.AdminConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cfg.Cookie,
		sessionTTL:  cfg.Admin,
	}
}

// @Summary Admin login
// @Description Authenticate the operator and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.sessionTTL.SessionTTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:    token,
		Username: req.Username,
	})
}

// @Summary Admin logout
// @Description Revoke the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		h.authUseCase.Logout(token)
	}
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// @Summary Current admin
// @Description Return the authenticated operator name
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} httperr.Response
// @Router /admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	name, ok := middleware.GetAdminName(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("admin name missing from context"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": name,
	})
}
