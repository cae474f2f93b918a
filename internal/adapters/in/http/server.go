// Package http is the REST adapter of the purchase order service. It binds
// requests, runs commands and queries, and maps typed errors to status codes.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"cogs/internal/core/application/usecases/commands"
	"cogs/internal/core/application/usecases/queries"
	"cogs/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by delegating to application use cases.
type Server struct {
	// Command handlers
	createHandler      commands.CreatePurchaseOrderCommandHandler
	setStatusHandler   commands.SetPurchaseOrderStatusCommandHandler
	addLabelingHandler commands.AddLabelingCostCommandHandler
	recalculateHandler commands.RecalculatePurchaseOrderCommandHandler
	deleteHandler      commands.DeletePurchaseOrderCommandHandler

	// Query handlers
	listOrdersHandler   queries.ListPurchaseOrdersQueryHandler
	getOrderHandler     queries.GetPurchaseOrderQueryHandler
	listProductsHandler queries.ListProductsQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	Create       commands.CreatePurchaseOrderCommandHandler
	SetStatus    commands.SetPurchaseOrderStatusCommandHandler
	AddLabeling  commands.AddLabelingCostCommandHandler
	Recalculate  commands.RecalculatePurchaseOrderCommandHandler
	Delete       commands.DeletePurchaseOrderCommandHandler
	ListOrders   queries.ListPurchaseOrdersQueryHandler
	GetOrder     queries.GetPurchaseOrderQueryHandler
	ListProducts queries.ListProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		createHandler:       h.Create,
		setStatusHandler:    h.SetStatus,
		addLabelingHandler:  h.AddLabeling,
		recalculateHandler:  h.Recalculate,
		deleteHandler:       h.Delete,
		listOrdersHandler:   h.ListOrders,
		getOrderHandler:     h.GetOrder,
		listProductsHandler: h.ListProducts,
		logger:              logger.With("component", "http"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{OK: true, Timestamp: time.Now().UTC()})
}

// ListPurchaseOrders handles GET /api/v1/purchase-orders.
func (s *Server) ListPurchaseOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListPurchaseOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]PurchaseOrderSummary, len(orders))
	for i, order := range orders {
		response[i] = newPurchaseOrderSummary(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var body NewPurchaseOrder
	if err := bindJSON(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), body.toInput())
	if err != nil {
		return s.fail(ctx, err)
	}

	po, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newPurchaseOrder(queries.NewPurchaseOrderResponse(po)))
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/:id.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPurchaseOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	po, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPurchaseOrder(po))
}

// DeletePurchaseOrder handles DELETE /api/v1/purchase-orders/:id.
func (s *Server) DeletePurchaseOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeletePurchaseOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPurchaseOrderStatus handles PUT /api/v1/purchase-orders/:id/status.
func (s *Server) SetPurchaseOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body StatusChange
	if err = bindJSON(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetPurchaseOrderStatusCommand(id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	po, err := s.setStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPurchaseOrder(queries.NewPurchaseOrderResponse(po)))
}

// RecalculatePurchaseOrder handles POST /api/v1/purchase-orders/:id/recalculate.
func (s *Server) RecalculatePurchaseOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRecalculatePurchaseOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	po, err := s.recalculateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPurchaseOrder(queries.NewPurchaseOrderResponse(po)))
}

// AddLabelingCost handles POST /api/v1/purchase-order-items/:id/labeling-costs.
func (s *Server) AddLabelingCost(ctx echo.Context) error {
	itemID, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewLabelingCost
	if err = bindJSON(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddLabelingCostCommand(kernel.NewUUID(), itemID, body.Note, body.CostTotal)
	if err != nil {
		return s.fail(ctx, err)
	}

	po, err := s.addLabelingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newPurchaseOrder(queries.NewPurchaseOrderResponse(po)))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.listProductsHandler.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = newProduct(p)
	}

	return ctx.JSON(http.StatusOK, response)
}
