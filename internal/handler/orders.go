package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	base
	svc OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{base: newBase(logger, "orders"), svc: svc}
}

// Init mounts the customer routes.
func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/api/orders", h.PlaceOrder)
	r.Get("/api/orders/{orderID}", h.GetOrderByID)
	r.Get("/api/orders/user/{userID}", h.UserOrders)
}

// InitCanteen mounts the order queue routes used by canteen staff.
func (h *OrderHandler) InitCanteen(r chi.Router) {
	r.Get("/api/canteen/orders/active", h.ActiveOrders)
	r.Get("/api/canteen/orders", h.AllOrders)
	r.Get("/api/canteen/orders/{orderID}", h.GetOrderByID)
	r.Put("/api/canteen/orders/{orderID}/status", h.UpdateStatus)
}

func (h *OrderHandler) InitAdmin(r chi.Router) {
	r.Get("/api/admin/orders", h.AllOrders)
	r.Get("/api/admin/orders/{orderID}", h.GetOrderByID)
	r.Put("/api/admin/orders/{orderID}/status", h.UpdateStatus)
}

// PlaceOrder places an order and reserves stock for it.
// @Summary      Place an order
// @Description  Validates stock for every line and reserves it atomically. The pickup deadline is set from the creation time.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      PlaceOrderRequest  true  "Order"
// @Success      201    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse
// @Failure      404    {object}  utils.ErrorResponse "Unknown user or product"
// @Failure      409    {object}  InsufficientStockResponse
// @Failure      500    {object}  utils.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlaceOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.PlaceOrder(ctx, req.ToEntity())
	if err != nil {
		ordersPlaceFailed.WithLabelValues(sourceHTTP).Inc()
		h.fail(ctx, w, "failed to place order", err, slog.Int64("user_id", req.UserID))
		return
	}

	ordersPlaced.WithLabelValues(sourceHTTP).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID returns one order.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        orderID  path      string  true  "Order ID"
// @Success      200      {object}  Order
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /api/orders/{orderID} [get]
// @Router       /api/canteen/orders/{orderID} [get]
// @Router       /api/admin/orders/{orderID} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderID")

	order, err := h.svc.GetOrderByID(ctx, orderID)
	if err != nil {
		h.fail(ctx, w, "failed to get order", err, slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UserOrders lists a user's orders, newest first.
// @Summary      List user orders
// @Tags         orders
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   Order
// @Failure      400     {object}  utils.ValidationErrorResponse
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /api/orders/user/{userID} [get]
func (h *OrderHandler) UserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	orders, err := h.svc.UserOrders(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "failed to list user orders", err, slog.Int64("user_id", userID))
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ActiveOrders is the canteen queue, oldest first.
// @Summary      Active order queue
// @Tags         canteen
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/canteen/orders/active [get]
func (h *OrderHandler) ActiveOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ActiveOrders(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to list active orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// AllOrders lists orders, optionally filtered by status.
// @Summary      List orders
// @Tags         canteen
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Status filter"  Enums(pending, preparing, ready, delivered, expired)
// @Success      200     {array}   Order
// @Failure      400     {object}  utils.ErrorResponse
// @Failure      401     {object}  utils.ErrorResponse
// @Failure      403     {object}  utils.ErrorResponse
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /api/canteen/orders [get]
func (h *OrderHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := r.URL.Query().Get("status")

	orders, err := h.svc.AllOrders(ctx, status)
	if err != nil {
		h.fail(ctx, w, "failed to list orders", err, slog.String("status", status))
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// UpdateStatus moves an order along its lifecycle.
// @Summary      Update order status
// @Tags         canteen
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        orderID  path      string               true  "Order ID"
// @Param        status   body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  Order
// @Failure      400      {object}  utils.ErrorResponse
// @Failure      401      {object}  utils.ErrorResponse
// @Failure      403      {object}  utils.ErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      409      {object}  utils.ErrorResponse "Transition not allowed"
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /api/canteen/orders/{orderID}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderID")

	var req UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		h.fail(ctx, w, "failed to update order status", err, slog.String("order_id", orderID))
		return
	}

	statusUpdates.WithLabelValues(order.Status.String()).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
