package handlers

import (
	"net/http"

	"github.com/hedibld92/Grimovies/internal/auth"
	"github.com/hedibld92/Grimovies/internal/logging"
)

// AuthHandler implements the sign-up, sign-in and sign-out forms.
type AuthHandler struct {
	Auth AuthService
}

type signUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	auth.Result
	State auth.State `json:"state"`
}

// SignUp handles POST /api/v1/auth/signup.
func (h AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logging.FromContext(ctx).Warn("invalid signup payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.Auth.SignUp(ctx, req.Email, req.Password, req.ConfirmPassword)
	status := http.StatusCreated
	switch {
	case !res.Success:
		status = failureStatus(res.Error, http.StatusBadRequest)
	case res.ConfirmationPending:
		status = http.StatusAccepted
	}
	respondJSON(ctx, w, status, authResponse{Result: res, State: h.Auth.State()})
}

// SignIn handles POST /api/v1/auth/signin.
func (h AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logging.FromContext(ctx).Warn("invalid signin payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.Auth.SignIn(ctx, req.Email, req.Password)
	status := http.StatusOK
	if !res.Success {
		status = failureStatus(res.Error, http.StatusUnauthorized)
	}
	respondJSON(ctx, w, status, authResponse{Result: res, State: h.Auth.State()})
}

// SignOut handles POST /api/v1/auth/signout.
func (h AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := h.Auth.SignOut(ctx)
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadGateway
	}
	respondJSON(ctx, w, status, authResponse{Result: res, State: h.Auth.State()})
}

// Session handles GET /api/v1/auth/session.
func (h AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, h.Auth.State())
}

func failureStatus(msg string, fallback int) int {
	switch msg {
	case auth.MsgMissingFields, auth.MsgPasswordMismatch, auth.MsgPasswordTooShort:
		return http.StatusBadRequest
	case auth.ErrAccountExists.Error():
		return http.StatusConflict
	case auth.ErrInvalidCredentials.Error():
		return http.StatusUnauthorized
	}
	return fallback
}
