package http

import (
	"errors"
	"log/slog"
	"net/http"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
)

// NewEcho builds the echo instance with validation, access logging, panic
// recovery and every route of server registered.
func NewEcho(server *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	accessLog := logger.With("component", "http_access")
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			accessLog.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	RegisterHandlers(e, server)
	return e
}

// RegisterHandlers adds the routes of server to router.
func RegisterHandlers(router *echo.Echo, server *Server) {
	router.GET("/health", server.Health)

	api := router.Group("/api/v1")
	api.GET("/purchase-orders", server.ListPurchaseOrders)
	api.POST("/purchase-orders", server.CreatePurchaseOrder)
	api.GET("/purchase-orders/:id", server.GetPurchaseOrder)
	api.DELETE("/purchase-orders/:id", server.DeletePurchaseOrder)
	api.PUT("/purchase-orders/:id/status", server.SetPurchaseOrderStatus)
	api.POST("/purchase-orders/:id/recalculate", server.RecalculatePurchaseOrder)
	api.POST("/purchase-order-items/:id/labeling-costs", server.AddLabelingCost)
	api.GET("/products", server.ListProducts)
}

// bindID reads the :id path parameter as a UUID.
func bindID(ctx echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return kernel.UUIDFromGoogle(id)
}

// fail writes err as an Error body. Validation failures are 400, missing
// records 404, anything else 500 with a generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errs.IsValidation(err):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errs.IsNotFound(err):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	s.logger.ErrorContext(ctx.Request().Context(), "request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
	})
}
