package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/tabwire/courier/internal/courier/domain"
	"github.com/tabwire/courier/internal/courier/service"
	"github.com/tabwire/courier/internal/courier/store"
	"github.com/tabwire/courier/pkg/couriersdk"
	"github.com/tabwire/courier/pkg/httpx"
	"github.com/tabwire/courier/pkg/slogx"
)

type UsersHandler struct {
	DirectoryService *service.DirectoryService
	LedgerService    *service.LedgerService
}

// HandleList godoc
//
//	@Summary		User Roster Endpoint
//	@Description	Returns every registered user ordered by username
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	couriersdk.UsersResponse	"users"
//	@Failure		401	{object}	couriersdk.APIError			"error, error_description"
//	@Failure		500	{object}	couriersdk.APIError			"error, error_description"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roster, err := h.DirectoryService.Roster(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		couriersdk.ErrServerError.WriteError(w)
		return
	}

	users := make([]couriersdk.UserSummary, 0, len(roster))
	for _, u := range roster {
		users = append(users, couriersdk.UserSummary{
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, couriersdk.UsersResponse{Users: users})
}

// HandleGet godoc
//
//	@Summary		User Detail Endpoint
//	@Description	Returns the full record of a single user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path		string						true	"Username"
//	@Success		200			{object}	couriersdk.UserResponse		"username, first_name, last_name, phone, join_at, last_login_at"
//	@Failure		401			{object}	couriersdk.APIError			"error, error_description"
//	@Failure		404			{object}	couriersdk.APIError			"error, error_description"
//	@Failure		500			{object}	couriersdk.APIError			"error, error_description"
//	@Router			/v1/users/{username} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.DirectoryService.Get(ctx, r.PathValue("username"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			couriersdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to load user", "err", err)
		couriersdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleMessagesFrom godoc
//
//	@Summary		Outbox Endpoint
//	@Description	Returns every message the user has sent, oldest first, each annotated
//	@Description	with the recipient's profile. Users can only read their own outbox.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path		string						true	"Username"
//	@Success		200			{object}	couriersdk.MessagesResponse	"messages"
//	@Failure		401			{object}	couriersdk.APIError			"error, error_description"
//	@Failure		403			{object}	couriersdk.APIError			"error, error_description"
//	@Failure		404			{object}	couriersdk.APIError			"error, error_description"
//	@Router			/v1/users/{username}/messages/from [get].
func (h *UsersHandler) HandleMessagesFrom(w http.ResponseWriter, r *http.Request) {
	h.listMessages(w, r, h.LedgerService.MessagesFrom, toOutboxResponse)
}

// HandleMessagesTo godoc
//
//	@Summary		Inbox Endpoint
//	@Description	Returns every message the user has received, oldest first, each annotated
//	@Description	with the sender's profile. Users can only read their own inbox.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path		string						true	"Username"
//	@Success		200			{object}	couriersdk.MessagesResponse	"messages"
//	@Failure		401			{object}	couriersdk.APIError			"error, error_description"
//	@Failure		403			{object}	couriersdk.APIError			"error, error_description"
//	@Failure		404			{object}	couriersdk.APIError			"error, error_description"
//	@Router			/v1/users/{username}/messages/to [get].
func (h *UsersHandler) HandleMessagesTo(w http.ResponseWriter, r *http.Request) {
	h.listMessages(w, r, h.LedgerService.MessagesTo, toInboxResponse)
}

func (h *UsersHandler) listMessages(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, username string) ([]domain.LedgerEntry, error),
	convert func(domain.LedgerEntry) couriersdk.MessageResponse,
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PathValue("username")
	if httpx.UsernameFromCtx(ctx) != username {
		couriersdk.ErrForbidden.WriteError(w)
		return
	}

	entries, err := list(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			couriersdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to list messages", "username", username, "err", err)
		couriersdk.ErrServerError.WriteError(w)
		return
	}

	messages := make([]couriersdk.MessageResponse, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, convert(e))
	}

	httpx.WriteJSON(w, http.StatusOK, couriersdk.MessagesResponse{Messages: messages})
}
