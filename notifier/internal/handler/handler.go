package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/napat-dev/lending-service/pkg/auth"
	md "github.com/napat-dev/lending-service/pkg/middleware"
)

type Handler struct {
	notifierSvc NotifierService
	log         *zap.Logger
}

func New(notifierSvc NotifierService, log *zap.Logger) *Handler {
	return &Handler{
		notifierSvc: notifierSvc,
		log:         log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication,
	)
	api.GET("/notifications", h.GetNotifications)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetNotifications returns the caller's unread count and clears it.
// Lenders and staff read their shared role counter; borrowers their own.
func (h *Handler) GetNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	recipient := auth.UserName(ctx)
	switch auth.UserRole(ctx) {
	case auth.RoleLender:
		recipient = auth.RoleLender
	case auth.RoleStaff:
		recipient = auth.RoleStaff
	}

	unread := h.notifierSvc.ReadAndClear(recipient)
	return c.JSON(http.StatusOK, echo.Map{"unread": unread})
}
