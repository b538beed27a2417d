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

func storedUser(t *testing.T, id uint, name, email string, role authorization.Role) *user.User {
	t.Helper()

	u, err := user.ReconstructUser(id, name, email, "password", role,
		time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return u
}

func storedTicket(t *testing.T, id, creatorID uint, extraCommentAuthors ...uint) *ticket.Ticket {
	t.Helper()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seed, err := ticket.ReconstructComment(creatorID, "Ticket created.", now, ticket.AuthorRoleUser)
	require.NoError(t, err)
	comments := []*ticket.Comment{seed}
	for _, authorID := range extraCommentAuthors {
		c, err := ticket.ReconstructComment(authorID, "a comment", now, ticket.AuthorRoleUser)
		require.NoError(t, err)
		comments = append(comments, c)
	}

	result, err := ticket.ReconstructTicket(
		id, creatorID, "Subject", "Description", "Technical",
		vo.StatusOpen, nil, nil, 0, 0, comments, now, now,
	)
	require.NoError(t, err)
	return result
}
