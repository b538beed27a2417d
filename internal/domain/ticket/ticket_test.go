package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	ticket, err := NewTicket(1, "Printer broken", "It makes noises", "Hardware Support", nil, AuthorRoleUser)
	require.NoError(t, err)
	return ticket
}

func TestNewTicket(t *testing.T) {
	ticket := newTestTicket(t)

	assert.Equal(t, uint(0), ticket.ID())
	assert.Equal(t, uint(1), ticket.CreatorID())
	assert.Equal(t, vo.StatusOpen, ticket.Status())
	assert.Nil(t, ticket.AssigneeID())
	assert.Zero(t, ticket.Upvotes())
	assert.Zero(t, ticket.Downvotes())
	assert.Equal(t, ticket.CreatedAt(), ticket.LastModified())

	comments := ticket.Comments()
	require.Len(t, comments, 1)
	assert.Equal(t, "Ticket created.", comments[0].Text())
	assert.Equal(t, AuthorRoleUser, comments[0].Role())
	assert.Equal(t, uint(1), comments[0].UserID())
}

func TestNewTicket_SeedCommentCarriesCreatorRole(t *testing.T) {
	ticket, err := NewTicket(7, "VPN down", "Cannot connect", "Technical", nil, AuthorRoleAgent)
	require.NoError(t, err)
	assert.Equal(t, AuthorRoleAgent, ticket.Comments()[0].Role())
}

func TestNewTicket_RequiredFields(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		description string
		category    string
	}{
		{name: "blank subject", description: "d", category: "c"},
		{name: "blank description", subject: "s", category: "c"},
		{name: "blank category", subject: "s", description: "d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(1, tt.subject, tt.description, tt.category, nil, AuthorRoleUser)
			require.Error(t, err)
			assert.True(t, errors.HasKind(err, KindValidation))
			assert.Contains(t, err.Error(), "Please fill in all required fields.")
		})
	}
}

func TestChangeStatus(t *testing.T) {
	ticket := newTestTicket(t)
	before := ticket.LastModified()

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, ticket.ChangeStatus(2, vo.StatusResolved))

	assert.Equal(t, vo.StatusResolved, ticket.Status())
	assert.True(t, ticket.LastModified().After(before))

	comments := ticket.Comments()
	require.Len(t, comments, 2)
	last := comments[len(comments)-1]
	assert.Equal(t, "Status changed from 'Open' to 'Resolved'.", last.Text())
	assert.Equal(t, AuthorRoleSystem, last.Role())
	assert.Equal(t, uint(2), last.UserID())
}

func TestChangeStatus_AnyTransitionAllowed(t *testing.T) {
	ticket := newTestTicket(t)

	require.NoError(t, ticket.ChangeStatus(2, vo.StatusClosed))
	require.NoError(t, ticket.ChangeStatus(2, vo.StatusOpen))
	require.NoError(t, ticket.ChangeStatus(2, vo.StatusOpen))

	assert.Equal(t, vo.StatusOpen, ticket.Status())
	// Each transition leaves a trail comment, even a no-op one.
	assert.Equal(t, 4, ticket.CommentCount())
}

func TestChangeStatus_InvalidStatus(t *testing.T) {
	ticket := newTestTicket(t)
	err := ticket.ChangeStatus(2, vo.Status("Reopened"))
	require.Error(t, err)
	assert.True(t, errors.HasKind(err, KindValidation))
}

func TestAssign(t *testing.T) {
	ticket := newTestTicket(t)
	before := ticket.LastModified()

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, ticket.Assign(2, "Support Agent"))

	require.NotNil(t, ticket.AssigneeID())
	assert.Equal(t, uint(2), *ticket.AssigneeID())
	assert.Equal(t, vo.StatusInProgress, ticket.Status())
	assert.True(t, ticket.LastModified().After(before))

	comments := ticket.Comments()
	last := comments[len(comments)-1]
	assert.Equal(t, "Ticket assigned to Support Agent and status set to 'In Progress'.", last.Text())
	assert.Equal(t, AuthorRoleSystem, last.Role())
}

func TestAssign_AlreadyAssigned(t *testing.T) {
	ticket := newTestTicket(t)
	require.NoError(t, ticket.Assign(2, "Support Agent"))

	err := ticket.Assign(3, "Another Agent")
	require.Error(t, err)
	assert.True(t, errors.HasKind(err, KindAlreadyAssigned))
	assert.Equal(t, uint(2), *ticket.AssigneeID())
}

func TestAddComment_AdvancesLastModified(t *testing.T) {
	ticket := newTestTicket(t)
	before := ticket.LastModified()

	time.Sleep(2 * time.Millisecond)
	comment, err := ticket.AddComment(1, "Any update?", AuthorRoleUser)
	require.NoError(t, err)

	assert.Equal(t, comment.Timestamp(), ticket.LastModified())
	assert.True(t, ticket.LastModified().After(before))
	assert.Equal(t, 2, ticket.CommentCount())
}

func TestAddComment_Empty(t *testing.T) {
	ticket := newTestTicket(t)
	_, err := ticket.AddComment(1, "", AuthorRoleUser)
	require.Error(t, err)
	assert.True(t, errors.HasKind(err, KindEmptyComment))
	assert.Equal(t, 1, ticket.CommentCount())
}

func TestVote_DoesNotTouchLastModified(t *testing.T) {
	ticket := newTestTicket(t)
	before := ticket.LastModified()

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, ticket.Vote(vo.VoteUp))
	require.NoError(t, ticket.Vote(vo.VoteUp))
	require.NoError(t, ticket.Vote(vo.VoteDown))

	assert.Equal(t, 2, ticket.Upvotes())
	assert.Equal(t, 1, ticket.Downvotes())
	assert.Equal(t, before, ticket.LastModified())
}

func TestCanBeCommentedOnBy(t *testing.T) {
	ticket := newTestTicket(t)

	assert.True(t, ticket.CanBeCommentedOnBy(1, authorization.RoleUser))
	assert.False(t, ticket.CanBeCommentedOnBy(9, authorization.RoleUser))
	assert.True(t, ticket.CanBeCommentedOnBy(9, authorization.RoleAgent))
	assert.True(t, ticket.CanBeCommentedOnBy(9, authorization.RoleAdmin))
}

func TestCreatorDeletionCascade(t *testing.T) {
	ticket := newTestTicket(t)
	_, err := ticket.AddComment(1, "Please help", AuthorRoleUser)
	require.NoError(t, err)
	_, err = ticket.AddComment(2, "Looking into it", AuthorRoleAgent)
	require.NoError(t, err)
	before := ticket.LastModified()

	// The admin's closure comment is appended before the creator's
	// comments are stripped, so it survives the sweep.
	ticket.CloseForCreatorDeletion(99)
	removed := ticket.RemoveCommentsBy(1)

	assert.Equal(t, vo.StatusClosed, ticket.Status())
	assert.Equal(t, 2, removed)
	assert.Equal(t, before, ticket.LastModified())

	comments := ticket.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, "Looking into it", comments[0].Text())
	assert.Equal(t, "Ticket creator's account was deleted by Admin. This ticket has been closed.", comments[1].Text())
	assert.Equal(t, uint(99), comments[1].UserID())
	assert.Equal(t, AuthorRoleSystem, comments[1].Role())
}

func TestReconstructTicket_Validation(t *testing.T) {
	_, err := ReconstructTicket(0, 1, "s", "d", "c", vo.StatusOpen, nil, nil, 0, 0, nil, time.Now(), time.Now())
	assert.Error(t, err)

	_, err = ReconstructTicket(1, 1, "s", "d", "c", vo.Status("bogus"), nil, nil, 0, 0, nil, time.Now(), time.Now())
	assert.Error(t, err)

	_, err = ReconstructTicket(1, 1, "s", "d", "c", vo.StatusOpen, nil, nil, -1, 0, nil, time.Now(), time.Now())
	assert.Error(t, err)
}
