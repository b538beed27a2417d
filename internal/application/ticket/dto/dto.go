package dto

import (
	"time"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
)

// UnknownUserName stands in for authors whose account was deleted.
const UnknownUserName = "N/A"

type TicketDTO struct {
	ID           uint            `json:"id"`
	Subject      string          `json:"subject"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Status       string          `json:"status"`
	CreatorID    uint            `json:"creator_id"`
	CreatorName  string          `json:"creator_name"`
	AssigneeID   *uint           `json:"assignee_id"`
	AssigneeName string          `json:"assignee_name"`
	Attachments  []AttachmentDTO `json:"attachments"`
	Upvotes      int             `json:"upvotes"`
	Downvotes    int             `json:"downvotes"`
	Comments     []CommentDTO    `json:"comments"`
	CreatedAt    time.Time       `json:"created_at"`
	LastModified time.Time       `json:"last_modified"`
}

type AttachmentDTO struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type CommentDTO struct {
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	Role       string    `json:"role"`
}

type TicketListItemDTO struct {
	ID           uint      `json:"id"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CreatorID    uint      `json:"creator_id"`
	CreatorName  string    `json:"creator_name"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// NameResolver turns user IDs into display names; missing accounts
// resolve to "N/A".
type NameResolver map[uint]string

func NewNameResolver(users []*user.User) NameResolver {
	r := make(NameResolver, len(users))
	for _, u := range users {
		r[u.ID()] = u.Name()
	}
	return r
}

func (r NameResolver) Name(id uint) string {
	if name, ok := r[id]; ok {
		return name
	}
	return UnknownUserName
}

// ToTicketDTO builds the detail view of a ticket with author names
// resolved.
func ToTicketDTO(t *ticket.Ticket, resolver NameResolver) TicketDTO {
	attachments := make([]AttachmentDTO, 0, len(t.Attachments()))
	for _, a := range t.Attachments() {
		attachments = append(attachments, AttachmentDTO{Name: a.Name, Size: a.Size, Type: a.Type})
	}

	comments := make([]CommentDTO, 0, t.CommentCount())
	for _, c := range t.Comments() {
		comments = append(comments, CommentDTO{
			AuthorID:   c.UserID(),
			AuthorName: resolver.Name(c.UserID()),
			Text:       c.Text(),
			Timestamp:  c.Timestamp(),
			Role:       c.Role().String(),
		})
	}

	assigneeName := UnknownUserName
	if t.AssigneeID() != nil {
		assigneeName = resolver.Name(*t.AssigneeID())
	}

	return TicketDTO{
		ID:           t.ID(),
		Subject:      t.Subject(),
		Description:  t.Description(),
		Category:     t.Category(),
		Status:       t.Status().String(),
		CreatorID:    t.CreatorID(),
		CreatorName:  resolver.Name(t.CreatorID()),
		AssigneeID:   t.AssigneeID(),
		AssigneeName: assigneeName,
		Attachments:  attachments,
		Upvotes:      t.Upvotes(),
		Downvotes:    t.Downvotes(),
		Comments:     comments,
		CreatedAt:    t.CreatedAt(),
		LastModified: t.LastModified(),
	}
}

// ToTicketListItemDTO builds the dashboard card view of a ticket.
func ToTicketListItemDTO(t *ticket.Ticket, resolver NameResolver) TicketListItemDTO {
	return TicketListItemDTO{
		ID:           t.ID(),
		Subject:      t.Subject(),
		Description:  t.Description(),
		Category:     t.Category(),
		Status:       t.Status().String(),
		CreatorID:    t.CreatorID(),
		CreatorName:  resolver.Name(t.CreatorID()),
		Upvotes:      t.Upvotes(),
		Downvotes:    t.Downvotes(),
		CommentCount: t.CommentCount(),
		CreatedAt:    t.CreatedAt(),
		LastModified: t.LastModified(),
	}
}
