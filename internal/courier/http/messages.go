package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tabwire/courier/internal/courier/service"
	"github.com/tabwire/courier/internal/courier/store"
	"github.com/tabwire/courier/pkg/couriersdk"
	"github.com/tabwire/courier/pkg/httpx"
	"github.com/tabwire/courier/pkg/slogx"
)

type MessagesHandler struct {
	LedgerService *service.LedgerService
}

// HandleSend godoc
//
//	@Summary		Send Message Endpoint
//	@Description	Delivers a message from the authenticated user to another user
//	@Tags			Messages
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		couriersdk.SendMessageRequest	true	"to_username, body"
//	@Success		200		{object}	couriersdk.MessageResponse		"id, body, sent_at, from_user, to_user"
//	@Failure		400		{object}	couriersdk.APIError				"error, error_description"
//	@Failure		401		{object}	couriersdk.APIError				"error, error_description"
//	@Failure		404		{object}	couriersdk.APIError				"error, error_description"
//	@Router			/v1/messages [post].
func (h *MessagesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req couriersdk.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		couriersdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.ToUsername == "" {
		couriersdk.ErrInvalidRequest.WriteError(w)
		return
	}

	// The sender is always the token subject, never a request field.
	from := httpx.UsernameFromCtx(ctx)

	detail, err := h.LedgerService.Send(ctx, from, req.ToUsername, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			couriersdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, store.ErrNotFound):
			couriersdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to send message", "from", from, "to", req.ToUsername, "err", err)
			couriersdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMessageResponse(detail))
}

// HandleGet godoc
//
//	@Summary		Message Detail Endpoint
//	@Description	Returns a single message with both participant profiles.
//	@Description	Only the sender or the recipient may fetch a message.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Message ID"
//	@Success		200	{object}	couriersdk.MessageResponse	"id, body, sent_at, read_at, from_user, to_user"
//	@Failure		401	{object}	couriersdk.APIError			"error, error_description"
//	@Failure		403	{object}	couriersdk.APIError			"error, error_description"
//	@Failure		404	{object}	couriersdk.APIError			"error, error_description"
//	@Router			/v1/messages/{id} [get].
func (h *MessagesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := parseMessageID(r)
	if err != nil {
		couriersdk.ErrNotFound.WriteError(w)
		return
	}

	detail, err := h.LedgerService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			couriersdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to load message", "id", id, "err", err)
		couriersdk.ErrServerError.WriteError(w)
		return
	}

	username := httpx.UsernameFromCtx(ctx)
	if username != detail.FromUsername && username != detail.ToUsername {
		couriersdk.ErrForbidden.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMessageResponse(detail))
}

// HandleMarkRead godoc
//
//	@Summary		Mark Read Endpoint
//	@Description	Stamps a message's read time and returns the updated message.
//	@Description	Only the recipient may mark a message read; marking an already-read
//	@Description	message keeps the original timestamp.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Message ID"
//	@Success		200	{object}	couriersdk.MessageResponse	"id, body, sent_at, read_at, from_user, to_user"
//	@Failure		401	{object}	couriersdk.APIError			"error, error_description"
//	@Failure		403	{object}	couriersdk.APIError			"error, error_description"
//	@Failure		404	{object}	couriersdk.APIError			"error, error_description"
//	@Router			/v1/messages/{id}/read [post].
func (h *MessagesHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := parseMessageID(r)
	if err != nil {
		couriersdk.ErrNotFound.WriteError(w)
		return
	}

	// Authorization needs the recipient, so fetch before mutating.
	detail, err := h.LedgerService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			couriersdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to load message", "id", id, "err", err)
		couriersdk.ErrServerError.WriteError(w)
		return
	}

	if httpx.UsernameFromCtx(ctx) != detail.ToUsername {
		couriersdk.ErrForbidden.WriteError(w)
		return
	}

	updated, err := h.LedgerService.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			couriersdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to mark message read", "id", id, "err", err)
		couriersdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMessageResponse(updated))
}

func parseMessageID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
