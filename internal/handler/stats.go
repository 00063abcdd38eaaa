package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type StatsHandler struct {
	base
	svc StatsService
}

func NewStatsHandler(logger *slog.Logger, svc StatsService) *StatsHandler {
	return &StatsHandler{base: newBase(logger, "stats"), svc: svc}
}

func (h *StatsHandler) InitCanteen(r chi.Router) {
	r.Get("/api/canteen/dashboard/stats", h.CanteenDashboard)
}

func (h *StatsHandler) InitAdmin(r chi.Router) {
	r.Get("/api/admin/dashboard/stats", h.AdminDashboard)
}

// @Summary      Canteen dashboard
// @Description  Order counters and revenue, recomputed on every request.
// @Tags         canteen
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  DashboardStats
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/canteen/dashboard/stats [get]
func (h *StatsHandler) CanteenDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.svc.CanteenDashboard(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to compute canteen stats", err)
		return
	}

	utils.WriteJSON(w, StatsEntityToJSON(stats), http.StatusOK)
}

// @Summary      Admin dashboard
// @Description  Canteen dashboard plus user and product totals.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  DashboardStats
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/admin/dashboard/stats [get]
func (h *StatsHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.svc.AdminDashboard(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to compute admin stats", err)
		return
	}

	utils.WriteJSON(w, StatsEntityToJSON(stats), http.StatusOK)
}
