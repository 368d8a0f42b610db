package http

import (
	"github.com/tabwire/courier/internal/courier/domain"
	"github.com/tabwire/courier/pkg/couriersdk"
)

func toProfile(p domain.Profile) *couriersdk.Profile {
	return &couriersdk.Profile{
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
	}
}

func toUserResponse(u domain.User) couriersdk.UserResponse {
	return couriersdk.UserResponse{
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		JoinAt:      u.JoinAt,
		LastLoginAt: u.LastLoginAt,
	}
}

func toMessageResponse(d domain.MessageDetail) couriersdk.MessageResponse {
	return couriersdk.MessageResponse{
		ID:       d.ID,
		Body:     d.Body,
		SentAt:   d.SentAt,
		ReadAt:   d.ReadAt,
		FromUser: toProfile(d.From),
		ToUser:   toProfile(d.To),
	}
}

// toOutboxResponse annotates a sent message with the recipient only.
func toOutboxResponse(e domain.LedgerEntry) couriersdk.MessageResponse {
	return couriersdk.MessageResponse{
		ID:     e.ID,
		Body:   e.Body,
		SentAt: e.SentAt,
		ReadAt: e.ReadAt,
		ToUser: toProfile(e.Counterparty),
	}
}

// toInboxResponse annotates a received message with the sender only.
func toInboxResponse(e domain.LedgerEntry) couriersdk.MessageResponse {
	return couriersdk.MessageResponse{
		ID:       e.ID,
		Body:     e.Body,
		SentAt:   e.SentAt,
		ReadAt:   e.ReadAt,
		FromUser: toProfile(e.Counterparty),
	}
}
