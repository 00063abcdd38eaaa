package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	base
	svc UserService
}

func NewUserHandler(logger *slog.Logger, svc UserService) *UserHandler {
	return &UserHandler{base: newBase(logger, "users"), svc: svc}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Get("/api/users/{userID}", h.GetUser)
	r.Put("/api/users/{userID}", h.UpdateProfile)
}

func (h *UserHandler) InitAdmin(r chi.Router) {
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{userID}", h.GetUser)
		r.Put("/{userID}", h.UpdateUser)
		r.Delete("/{userID}", h.DeleteUser)
	})
}

// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {object}  User
// @Failure      400     {object}  utils.ValidationErrorResponse
// @Failure      404     {object}  utils.ErrorResponse
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /api/users/{userID} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	user, err := h.svc.GetUser(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "failed to get user", err, slog.Int64("user_id", userID))
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID   path      int                   true  "User ID"
// @Param        profile  body      UpdateProfileRequest  true  "Profile"
// @Success      200      {object}  User
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /api/users/{userID} [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.svc.UpdateUser(ctx, userID, entities.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		h.fail(ctx, w, "failed to update profile", err, slog.Int64("user_id", userID))
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// @Summary      List users
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   User
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.svc.ListUsers(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to list users", err)
		return
	}

	res := make([]User, 0, len(users))
	for _, u := range users {
		res = append(res, UserEntityToJSON(u))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// @Summary      Create user
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user  body      CreateUserRequest  true  "User"
// @Success      201   {object}  User
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      409   {object}  utils.ErrorResponse "Email already exists"
// @Failure      500   {object}  utils.ErrorResponse
// @Router       /api/admin/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.svc.CreateUser(ctx, req.ToEntity())
	if err != nil {
		h.fail(ctx, w, "failed to create user", err)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// @Summary      Update user
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        userID  path      int                true  "User ID"
// @Param        user    body      UpdateUserRequest  true  "User"
// @Success      200     {object}  User
// @Failure      400     {object}  utils.ValidationErrorResponse
// @Failure      404     {object}  utils.ErrorResponse
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /api/admin/users/{userID} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.svc.UpdateUser(ctx, userID, req.ToEntity())
	if err != nil {
		h.fail(ctx, w, "failed to update user", err, slog.Int64("user_id", userID))
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// @Summary      Delete user
// @Tags         admin
// @Security     BearerAuth
// @Param        userID  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "User has orders"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/admin/users/{userID} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(ctx, userID); err != nil {
		h.fail(ctx, w, "failed to delete user", err, slog.Int64("user_id", userID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
