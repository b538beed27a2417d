package ticket

import (
	"strconv"
	"time"

	"quickdesk/internal/domain/shared/events"
)

// Event types emitted by ticket operations.
const (
	EventTicketCreated       = "ticket.created"
	EventTicketStatusChanged = "ticket.status_changed"
	EventTicketAssigned      = "ticket.assigned"
	EventTicketCommentAdded  = "ticket.comment_added"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID  uint   `json:"ticket_id"`
	Subject   string `json:"subject"`
	CreatorID uint   `json:"creator_id"`
	Category  string `json:"category"`
	Status    string `json:"status"`
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: newBase(t.ID(), EventTicketCreated),
		TicketID:  t.ID(),
		Subject:   t.Subject(),
		CreatorID: t.CreatorID(),
		Category:  t.Category(),
		Status:    t.Status().String(),
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID     uint   `json:"ticket_id"`
	Subject      string `json:"subject"`
	CreatorEmail string `json:"creator_email"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	ChangedBy    uint   `json:"changed_by"`
}

func NewTicketStatusChangedEvent(t *Ticket, creatorEmail, oldStatus string, changedBy uint) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent:    newBase(t.ID(), EventTicketStatusChanged),
		TicketID:     t.ID(),
		Subject:      t.Subject(),
		CreatorEmail: creatorEmail,
		OldStatus:    oldStatus,
		NewStatus:    t.Status().String(),
		ChangedBy:    changedBy,
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   uint   `json:"ticket_id"`
	Subject    string `json:"subject"`
	AssigneeID uint   `json:"assignee_id"`
}

func NewTicketAssignedEvent(t *Ticket, assigneeID uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent:  newBase(t.ID(), EventTicketAssigned),
		TicketID:   t.ID(),
		Subject:    t.Subject(),
		AssigneeID: assigneeID,
	}
}

type TicketCommentAddedEvent struct {
	events.BaseEvent
	TicketID uint   `json:"ticket_id"`
	Subject  string `json:"subject"`
	AuthorID uint   `json:"author_id"`
}

func NewTicketCommentAddedEvent(t *Ticket, authorID uint) TicketCommentAddedEvent {
	return TicketCommentAddedEvent{
		BaseEvent: newBase(t.ID(), EventTicketCommentAdded),
		TicketID:  t.ID(),
		Subject:   t.Subject(),
		AuthorID:  authorID,
	}
}

func newBase(ticketID uint, eventType string) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: strconv.FormatUint(uint64(ticketID), 10),
		EventType:   eventType,
		OccurredAt:  time.Now().UTC(),
	}
}
