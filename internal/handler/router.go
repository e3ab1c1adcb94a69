package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	scheduleHandler *api.ScheduleHandler,
	serviceHandler *api.ServiceHandler,
	reminderHandler *api.ReminderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, scheduleHandler, serviceHandler, reminderHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	scheduleHandler *api.ScheduleHandler,
	serviceHandler *api.ServiceHandler,
	reminderHandler *api.ReminderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Reserve},
			{Method: http.MethodGet, Path: "/bookings/slots", Handler: bookingHandler.ListBookedSlots},
			{Method: http.MethodGet, Path: "/slots", Handler: scheduleHandler.ListActive},
			{Method: http.MethodGet, Path: "/services", Handler: serviceHandler.ListActive},
		})

		admin := apiGroup.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},

				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.AdminList},
				{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.AdminCreate},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: bookingHandler.AdminGet},
				{Method: http.MethodPut, Path: "/bookings/:id", Handler: bookingHandler.AdminUpdate},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: bookingHandler.AdminDelete},

				{Method: http.MethodGet, Path: "/slots", Handler: scheduleHandler.AdminList},
				{Method: http.MethodPost, Path: "/slots", Handler: scheduleHandler.AdminCreate},
				{Method: http.MethodDelete, Path: "/slots/:id", Handler: scheduleHandler.AdminDelete},
				{Method: http.MethodPut, Path: "/availability/dates", Handler: scheduleHandler.AdminSetDateOpen},
				{Method: http.MethodPut, Path: "/availability/slots", Handler: scheduleHandler.AdminSetSlotOverride},

				{Method: http.MethodGet, Path: "/services", Handler: serviceHandler.AdminList},
				{Method: http.MethodPost, Path: "/services", Handler: serviceHandler.AdminCreate},
				{Method: http.MethodGet, Path: "/services/:id", Handler: serviceHandler.AdminGet},
				{Method: http.MethodPut, Path: "/services/:id", Handler: serviceHandler.AdminUpdate},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: serviceHandler.AdminDelete},

				{Method: http.MethodPost, Path: "/reminders/run", Handler: reminderHandler.RunNow},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
