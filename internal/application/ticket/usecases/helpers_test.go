package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
)

func storedTicket(t *testing.T, id, creatorID uint, status vo.Status) *ticket.Ticket {
	t.Helper()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seed, err := ticket.ReconstructComment(creatorID, "Ticket created.", now, ticket.AuthorRoleUser)
	require.NoError(t, err)

	result, err := ticket.ReconstructTicket(
		id, creatorID, "Laptop will not boot", "Black screen on power up", "Technical",
		status, nil, nil, 0, 0, []*ticket.Comment{seed}, now, now,
	)
	require.NoError(t, err)
	return result
}

func storedUser(t *testing.T, id uint, name, email string, role authorization.Role) *user.User {
	t.Helper()

	u, err := user.ReconstructUser(id, name, email, "password", role,
		time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return u
}
