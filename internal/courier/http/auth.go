package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tabwire/courier/internal/courier/service"
	"github.com/tabwire/courier/pkg/couriersdk"
	"github.com/tabwire/courier/pkg/httpx"
	"github.com/tabwire/courier/pkg/slogx"
)

type AuthHandler struct {
	DirectoryService *service.DirectoryService
	TokenService     *service.TokenService
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with a username and password and receive a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		couriersdk.LoginRequest	true	"username, password"
//	@Success		200		{object}	couriersdk.TokenResponse	"token"
//	@Failure		400		{object}	couriersdk.APIError			"error, error_description"
//	@Failure		500		{object}	couriersdk.APIError			"error, error_description"
//	@Router			/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req couriersdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		couriersdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		couriersdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.DirectoryService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			couriersdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		couriersdk.ErrServerError.WriteError(w)
		return
	}

	h.issueToken(w, log, user.Username)
}

// HandleRegister godoc
//
//	@Summary		Registration Endpoint
//	@Description	Create a new account and receive a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		couriersdk.RegisterRequest	true	"username, password, first_name, last_name, phone"
//	@Success		200		{object}	couriersdk.TokenResponse	"token"
//	@Failure		400		{object}	couriersdk.APIError			"error, error_description"
//	@Failure		500		{object}	couriersdk.APIError			"error, error_description"
//	@Router			/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req couriersdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		couriersdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.DirectoryService.Register(ctx,
		req.Username, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			couriersdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrUsernameTaken):
			couriersdk.ErrUsernameTaken.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			couriersdk.ErrServerError.WriteError(w)
		}
		return
	}

	h.issueToken(w, log, user.Username)
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, log *slog.Logger, username string) {
	token, err := h.TokenService.Issue(username)
	if err != nil {
		log.Error("token issuance failed", "username", username, "err", err)
		couriersdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, couriersdk.TokenResponse{Token: token})
}
