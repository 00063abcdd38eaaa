package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	base
	svc AuthService
}

func NewAuthHandler(logger *slog.Logger, svc AuthService) *AuthHandler {
	return &AuthHandler{base: newBase(logger, "auth"), svc: svc}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/api/auth/signup", h.Signup)
	r.Post("/api/auth/login", h.Login)
}

func (h *AuthHandler) InitAdmin(r chi.Router) {
	r.Put("/api/admin/passwords/{userID}", h.SetPassword)
}

// @Summary      Sign up
// @Description  Creates a customer account and returns a token for it.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        account  body      SignupRequest  true  "Account"
// @Success      201      {object}  AuthResponse
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      409      {object}  utils.ErrorResponse "Email taken"
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignupRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.svc.Signup(ctx, req.ToEntity())
	if err != nil {
		h.fail(ctx, w, "failed to sign up", err)
		return
	}

	utils.WriteJSON(w, SessionEntityToJSON("user registered successfully", session), http.StatusCreated)
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  AuthResponse
// @Failure      400          {object}  utils.ValidationErrorResponse
// @Failure      401          {object}  utils.ErrorResponse
// @Failure      500          {object}  utils.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.fail(ctx, w, "failed to log in", err)
		return
	}

	utils.WriteJSON(w, SessionEntityToJSON("login successful", session), http.StatusOK)
}

// @Summary      Set a user's password
// @Description  Lets staff and admin accounts created by an admin log in.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Param        userID    path      int                 true  "User ID"
// @Param        password  body      SetPasswordRequest  true  "Password"
// @Success      204
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      401       {object}  utils.ErrorResponse
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Failure      500       {object}  utils.ErrorResponse
// @Router       /api/admin/passwords/{userID} [put]
func (h *AuthHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	var req SetPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.svc.SetPassword(ctx, userID, req.Password); err != nil {
		h.fail(ctx, w, "failed to set password", err, slog.Int64("user_id", userID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
