package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/napat-dev/lending-service/lending/internal/errs"
	"github.com/napat-dev/lending-service/lending/internal/model"
	"github.com/napat-dev/lending-service/pkg/auth"
	"github.com/napat-dev/lending-service/pkg/kafka"
	md "github.com/napat-dev/lending-service/pkg/middleware"
	"github.com/napat-dev/lending-service/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	enqueuer   Enqueuer
	log        *zap.Logger
}

func New(lendingSvc LendingService, enqueuer Enqueuer, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		enqueuer:   enqueuer,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication,
	)

	api.GET("/assets", h.GetAssets)

	borrower := api.Group("", md.RequireRoles(auth.RoleBorrower))
	borrower.POST("/borrow", h.CreateBorrowRequest)
	borrower.POST("/borrow/:requestId/return", h.RequestReturn)
	borrower.GET("/borrower/status", h.GetBorrowerStatus)
	borrower.GET("/borrower/history", h.GetBorrowerHistory)

	lender := api.Group("/lender", md.RequireRoles(auth.RoleLender))
	lender.GET("/requests", h.PendingRequests)
	lender.PUT("/requests/:requestId/approve", h.ApproveRequest)
	lender.PUT("/requests/:requestId/reject", h.RejectRequest)

	staff := api.Group("/staff", md.RequireRoles(auth.RoleStaff))
	staff.GET("/assets", h.ListAssets)
	staff.POST("/assets", h.CreateAsset)
	staff.PUT("/assets/:assetId", h.UpdateAsset)
	staff.DELETE("/assets/:assetId", h.DeleteAsset)
	staff.PUT("/assets/:assetId/disable", h.DisableAsset)
	staff.PUT("/assets/:assetId/enable", h.EnableAsset)
	staff.GET("/returns", h.RequestedReturns)
	staff.PUT("/returns/:requestId", h.ConfirmReturn)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the lifecycle error taxonomy onto status codes: a guard
// violation is always a conflict, never a success or a crash.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// notify publishes a lifecycle event after the transaction committed.
// Best effort: a broker failure is logged, never surfaced to the caller.
func (h *Handler) notify(eventType string, ref model.RequestRef, actor string) {
	event := kafka.LendingEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		RequestID: ref.RequestID,
		AssetID:   ref.AssetID,
		Borrower:  ref.Borrower,
		Actor:     actor,
		At:        time.Now().UTC(),
	}
	if err := h.enqueuer.Enqueue(kafka.LendingTopic, event); err != nil {
		h.log.Error("enqueue event", zap.String("type", eventType), zap.Error(err))
	}
}

func requestIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("requestId"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid requestId")
	}
	return id, nil
}

func assetIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("assetId"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid assetId")
	}
	return id, nil
}

func (h *Handler) GetAssets(c echo.Context) error {
	ctx := c.Request().Context()

	// borrowers see only their own active request attached
	borrower := ""
	if auth.UserRole(ctx) == auth.RoleBorrower {
		borrower = auth.UserName(ctx)
	}

	views, err := h.lendingSvc.GetAssetView(ctx, borrower)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) CreateBorrowRequest(c echo.Context) error {
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	borrower := auth.UserName(ctx)
	request, err := h.lendingSvc.CreateBorrowRequest(ctx, borrower, req)
	if err != nil {
		return httpError(err)
	}

	h.notify(kafka.EventRequestCreated, model.RequestRef{
		RequestID: request.ID,
		AssetID:   request.AssetID,
		Borrower:  request.Borrower,
	}, borrower)
	return c.JSON(http.StatusCreated, request)
}

func (h *Handler) RequestReturn(c echo.Context) error {
	requestID, err := requestIDParam(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	borrower := auth.UserName(ctx)

	ref, err := h.lendingSvc.RequestReturn(ctx, requestID, borrower)
	if err != nil {
		return httpError(err)
	}
	h.notify(kafka.EventReturnRequested, ref, borrower)
	return c.JSON(http.StatusOK, echo.Map{"message": "return requested"})
}

func (h *Handler) GetBorrowerStatus(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.lendingSvc.GetBorrowerStatus(ctx, auth.UserName(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBorrowerHistory(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.lendingSvc.GetBorrowerHistory(ctx, auth.UserName(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PendingRequests(c echo.Context) error {
	items, err := h.lendingSvc.PendingRequests(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ApproveRequest(c echo.Context) error {
	requestID, err := requestIDParam(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	lender := auth.UserName(ctx)

	ref, err := h.lendingSvc.ApproveRequest(ctx, requestID, lender)
	if err != nil {
		return httpError(err)
	}
	h.notify(kafka.EventRequestApproved, ref, lender)
	return c.JSON(http.StatusOK, echo.Map{"message": "request approved, asset marked as Borrowed"})
}

func (h *Handler) RejectRequest(c echo.Context) error {
	requestID, err := requestIDParam(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	lender := auth.UserName(ctx)

	ref, err := h.lendingSvc.RejectRequest(ctx, requestID, lender)
	if err != nil {
		return httpError(err)
	}
	h.notify(kafka.EventRequestRejected, ref, lender)
	return c.JSON(http.StatusOK, echo.Map{"message": "request rejected, asset marked as Available"})
}

func (h *Handler) RequestedReturns(c echo.Context) error {
	items, err := h.lendingSvc.RequestedReturns(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ConfirmReturn(c echo.Context) error {
	requestID, err := requestIDParam(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	staff := auth.UserName(ctx)

	ref, err := h.lendingSvc.ConfirmReturn(ctx, requestID, staff)
	if err != nil {
		return httpError(err)
	}
	h.notify(kafka.EventReturnConfirmed, ref, staff)
	return c.JSON(http.StatusOK, echo.Map{"message": "return confirmed, asset marked as Available"})
}

func (h *Handler) ListAssets(c echo.Context) error {
	assets, err := h.lendingSvc.ListAssets(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, assets)
}

func (h *Handler) CreateAsset(c echo.Context) error {
	var req model.CreateAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	asset, err := h.lendingSvc.CreateAsset(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, asset)
}

func (h *Handler) UpdateAsset(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}
	var req model.UpdateAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.lendingSvc.UpdateAsset(c.Request().Context(), assetID, req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "asset updated"})
}

func (h *Handler) DeleteAsset(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}
	if err := h.lendingSvc.DeleteAsset(c.Request().Context(), assetID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DisableAsset(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}
	if err := h.lendingSvc.DisableAsset(c.Request().Context(), assetID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"assetId": assetID, "status": model.AssetDisabled})
}

func (h *Handler) EnableAsset(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}
	if err := h.lendingSvc.EnableAsset(c.Request().Context(), assetID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"assetId": assetID, "status": model.AssetAvailable})
}
