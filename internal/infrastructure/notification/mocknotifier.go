// Package notification delivers ticket event notifications. Real
// delivery channels are out of scope; the mock notifier writes what
// would be sent to the log.
package notification

import (
	"fmt"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/logger"
)

// MockNotifier logs the emails a production deployment would send.
type MockNotifier struct {
	logger logger.Interface
}

func NewMockNotifier(log logger.Interface) *MockNotifier {
	return &MockNotifier{logger: log.Named("notification")}
}

// Register subscribes the notifier to every ticket event it handles.
func (n *MockNotifier) Register(dispatcher events.EventSubscriber) error {
	for _, eventType := range []string{
		ticket.EventTicketCreated,
		ticket.EventTicketStatusChanged,
		ticket.EventTicketCommentAdded,
	} {
		if err := dispatcher.Subscribe(eventType, n); err != nil {
			return err
		}
	}
	return nil
}

func (n *MockNotifier) CanHandle(eventType string) bool {
	switch eventType {
	case ticket.EventTicketCreated, ticket.EventTicketStatusChanged, ticket.EventTicketCommentAdded:
		return true
	}
	return false
}

func (n *MockNotifier) Handle(event events.DomainEvent) error {
	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		n.logger.Infow("notification mock",
			"email", fmt.Sprintf("Email to Admin: New ticket %q created. Status: %s.", e.Subject, e.Status),
		)
	case ticket.TicketStatusChangedEvent:
		n.logger.Infow("notification mock",
			"email", fmt.Sprintf("Email to Ticket Creator (%s): Ticket %q status changed from %q to %q.",
				e.CreatorEmail, e.Subject, e.OldStatus, e.NewStatus),
		)
	case ticket.TicketCommentAddedEvent:
		n.logger.Infow("notification mock",
			"email", fmt.Sprintf("Email to all participants: New comment on ticket %q.", e.Subject),
		)
	}
	return nil
}
