package mappers

import (
	"fmt"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket entities and snapshot records.
// Comments and attachments travel embedded in the ticket record.
type TicketMapper interface {
	ToRecord(t *ticket.Ticket) models.TicketRecord
	ToDomain(record models.TicketRecord) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToRecord(t *ticket.Ticket) models.TicketRecord {
	attachments := t.Attachments()
	attachmentRecords := make([]models.AttachmentRecord, 0, len(attachments))
	for _, a := range attachments {
		attachmentRecords = append(attachmentRecords, models.AttachmentRecord{
			Name: a.Name,
			Size: a.Size,
			Type: a.Type,
		})
	}

	comments := t.Comments()
	commentRecords := make([]models.CommentRecord, 0, len(comments))
	for _, c := range comments {
		commentRecords = append(commentRecords, models.CommentRecord{
			UserID:    c.UserID(),
			Text:      c.Text(),
			Timestamp: c.Timestamp(),
			Role:      c.Role().String(),
		})
	}

	return models.TicketRecord{
		ID:           t.ID(),
		UserID:       t.CreatorID(),
		Subject:      t.Subject(),
		Description:  t.Description(),
		Category:     t.Category(),
		Status:       t.Status().String(),
		Attachments:  attachmentRecords,
		CreatedAt:    t.CreatedAt(),
		LastModified: t.LastModified(),
		AssignedTo:   t.AssigneeID(),
		Upvotes:      t.Upvotes(),
		Downvotes:    t.Downvotes(),
		Comments:     commentRecords,
	}
}

func (m *TicketMapperImpl) ToDomain(record models.TicketRecord) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(record.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", record.ID, err)
	}

	attachments := make([]ticket.Attachment, 0, len(record.Attachments))
	for _, a := range record.Attachments {
		attachments = append(attachments, ticket.Attachment{
			Name: a.Name,
			Size: a.Size,
			Type: a.Type,
		})
	}

	comments := make([]*ticket.Comment, 0, len(record.Comments))
	for _, c := range record.Comments {
		comment, err := ticket.ReconstructComment(c.UserID, c.Text, c.Timestamp, ticket.AuthorRole(c.Role))
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", record.ID, err)
		}
		comments = append(comments, comment)
	}

	return ticket.ReconstructTicket(
		record.ID,
		record.UserID,
		record.Subject,
		record.Description,
		record.Category,
		status,
		record.AssignedTo,
		attachments,
		record.Upvotes,
		record.Downvotes,
		comments,
		record.CreatedAt,
		record.LastModified,
	)
}
