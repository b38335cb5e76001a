package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
)

var (
	adminActor = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	userActor  = authorization.Actor{UserID: 2, Role: authorization.RoleUser}
	agentActor = authorization.Actor{UserID: 3, Role: authorization.RoleAgent}
	otherUser  = authorization.Actor{UserID: 4, Role: authorization.RoleUser}
)

func existingTicket(t *testing.T, id, requester uint, firstRespondedAt *time.Time) *ticket.Ticket {
	t.Helper()
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tk, err := ticket.ReconstructTicket(id, requester, nil, "Printer jam", "Tray 2 is stuck",
		vo.StatusOpen, vo.PriorityMedium, vo.CategoryHardware, nil, firstRespondedAt, created, created)
	require.NoError(t, err)
	return tk
}

func existingComment(t *testing.T, id, ticketID, author uint, internal bool, viewedAt *time.Time) *ticket.Comment {
	t.Helper()
	created := time.Date(2026, 1, 1, 13, 0, 0, 0, time.UTC)
	c, err := ticket.ReconstructComment(id, ticketID, author, "original text", internal, nil, created, created, viewedAt)
	require.NoError(t, err)
	return c
}

func ptrTime(tm time.Time) *time.Time {
	return &tm
}

func ptrUint(v uint) *uint {
	return &v
}
