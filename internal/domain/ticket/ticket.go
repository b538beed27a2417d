package ticket

import (
	"fmt"
	"time"

	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

// Ticket is the support-request aggregate. It owns its comment timeline;
// comments are append-only and removed only as a side effect of their
// author's account deletion.
type Ticket struct {
	id           uint
	creatorID    uint
	subject      string
	description  string
	category     string
	status       vo.Status
	assigneeID   *uint
	attachments  []Attachment
	upvotes      int
	downvotes    int
	comments     []*Comment
	createdAt    time.Time
	lastModified time.Time
}

// NewTicket creates an open, unassigned ticket seeded with a single
// "Ticket created." comment carrying the creator's role.
func NewTicket(
	creatorID uint,
	subject string,
	description string,
	category string,
	attachments []Attachment,
	creatorRole AuthorRole,
) (*Ticket, error) {
	if subject == "" || description == "" || category == "" {
		return nil, ErrValidation("Please fill in all required fields.")
	}
	if creatorID == 0 {
		return nil, ErrValidation("creator ID is required")
	}
	if !creatorRole.IsValid() || creatorRole.IsSystem() {
		return nil, fmt.Errorf("invalid creator role: %s", creatorRole)
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	now := biztime.NowUTC()
	seed := &Comment{
		userID:    creatorID,
		text:      "Ticket created.",
		timestamp: now,
		role:      creatorRole,
	}

	return &Ticket{
		creatorID:    creatorID,
		subject:      subject,
		description:  description,
		category:     category,
		status:       vo.StatusOpen,
		attachments:  attachments,
		comments:     []*Comment{seed},
		createdAt:    now,
		lastModified: now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	creatorID uint,
	subject string,
	description string,
	category string,
	status vo.Status,
	assigneeID *uint,
	attachments []Attachment,
	upvotes, downvotes int,
	comments []*Comment,
	createdAt, lastModified time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}
	if upvotes < 0 || downvotes < 0 {
		return nil, fmt.Errorf("vote counters cannot be negative")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}
	if comments == nil {
		comments = []*Comment{}
	}

	return &Ticket{
		id:           id,
		creatorID:    creatorID,
		subject:      subject,
		description:  description,
		category:     category,
		status:       status,
		assigneeID:   assigneeID,
		attachments:  attachments,
		upvotes:      upvotes,
		downvotes:    downvotes,
		comments:     comments,
		createdAt:    createdAt,
		lastModified: lastModified,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

// Category returns the free-text snapshot of the category label taken
// at creation time; removing the label from the registry leaves it intact.
func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Attachments() []Attachment {
	out := make([]Attachment, len(t.attachments))
	copy(out, t.attachments)
	return out
}

func (t *Ticket) Upvotes() int {
	return t.upvotes
}

func (t *Ticket) Downvotes() int {
	return t.downvotes
}

func (t *Ticket) Comments() []*Comment {
	out := make([]*Comment, len(t.comments))
	copy(out, t.comments)
	return out
}

func (t *Ticket) CommentCount() int {
	return len(t.comments)
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) LastModified() time.Time {
	return t.lastModified
}

// Clone returns an independent copy of the ticket. Comments are
// immutable once constructed, so their pointers are shared; everything
// mutable is copied.
func (t *Ticket) Clone() *Ticket {
	c := *t
	if t.assigneeID != nil {
		id := *t.assigneeID
		c.assigneeID = &id
	}
	c.attachments = make([]Attachment, len(t.attachments))
	copy(c.attachments, t.attachments)
	c.comments = make([]*Comment, len(t.comments))
	copy(c.comments, t.comments)
	return &c
}

// SetID assigns the store-minted ID. Only the persistence layer calls this.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus records a transition performed by the given actor. No
// restriction exists on which status may follow which; a system comment
// records the change.
func (t *Ticket) ChangeStatus(actorID uint, newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return ErrValidation(fmt.Sprintf("invalid ticket status: %s", newStatus))
	}

	oldStatus := t.status
	t.status = newStatus
	t.appendSystemComment(
		actorID,
		fmt.Sprintf("Status changed from '%s' to '%s'.", oldStatus, newStatus),
	)
	t.lastModified = biztime.NowUTC()
	return nil
}

// Assign hands the ticket to an agent. Assignment is one-shot: once set
// it cannot be changed through the normal flow. The status is forced to
// In Progress regardless of its prior value.
func (t *Ticket) Assign(agentID uint, agentName string) error {
	if t.assigneeID != nil {
		return ErrAlreadyAssigned()
	}
	if agentID == 0 {
		return ErrValidation("assignee ID is required")
	}

	t.assigneeID = &agentID
	t.status = vo.StatusInProgress
	t.appendSystemComment(
		agentID,
		fmt.Sprintf("Ticket assigned to %s and status set to 'In Progress'.", agentName),
	)
	t.lastModified = biztime.NowUTC()
	return nil
}

// AddComment appends an author-attributed entry and advances lastModified
// to the comment timestamp.
func (t *Ticket) AddComment(authorID uint, text string, role AuthorRole) (*Comment, error) {
	comment, err := NewComment(authorID, text, role)
	if err != nil {
		return nil, err
	}

	t.comments = append(t.comments, comment)
	t.lastModified = comment.timestamp
	return comment, nil
}

// Vote bumps a counter. There is no per-identity tracking and no
// lastModified update; both are intentional simplifications.
func (t *Ticket) Vote(direction vo.VoteDirection) error {
	switch direction {
	case vo.VoteUp:
		t.upvotes++
	case vo.VoteDown:
		t.downvotes++
	default:
		return ErrValidation(fmt.Sprintf("invalid vote direction: %s", direction))
	}
	return nil
}

// CloseForCreatorDeletion force-closes the ticket when its creator's
// account is removed, recording a system comment attributed to the
// acting admin. lastModified is left untouched so the cascade does not
// resurface closed tickets at the top of recency-sorted lists.
func (t *Ticket) CloseForCreatorDeletion(actingAdminID uint) {
	t.status = vo.StatusClosed
	t.appendSystemComment(
		actingAdminID,
		"Ticket creator's account was deleted by Admin. This ticket has been closed.",
	)
}

// RemoveCommentsBy strips every comment authored by the given user and
// returns how many were removed.
func (t *Ticket) RemoveCommentsBy(userID uint) int {
	kept := make([]*Comment, 0, len(t.comments))
	removed := 0
	for _, c := range t.comments {
		if c.userID == userID {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	t.comments = kept
	return removed
}

// CanBeCommentedOnBy reports whether the actor may append a comment.
// Agents and admins may comment anywhere; plain users only on their
// own tickets.
func (t *Ticket) CanBeCommentedOnBy(userID uint, role authorization.Role) bool {
	switch role {
	case authorization.RoleAgent, authorization.RoleAdmin:
		return true
	case authorization.RoleUser:
		return t.creatorID == userID
	}
	return false
}

func (t *Ticket) appendSystemComment(userID uint, text string) {
	t.comments = append(t.comments, &Comment{
		userID:    userID,
		text:      text,
		timestamp: biztime.NowUTC(),
		role:      AuthorRoleSystem,
	})
}
