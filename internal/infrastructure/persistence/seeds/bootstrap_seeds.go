package seeds

import (
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

// DefaultCategories returns the label registry a fresh install starts
// with.
func DefaultCategories() []string {
	return []string{"Technical", "Billing", "Feature Request", "General Inquiry", "Hardware Support"}
}

// EnsureDefaultAccounts appends a stock admin and agent account when
// the given set has none of that role, so a fresh install is usable
// immediately. The returned slice shares backing storage with the
// input when nothing was added.
func EnsureDefaultAccounts(users []models.UserRecord) []models.UserRecord {
	hasAdmin := false
	hasAgent := false
	maxID := uint(0)
	for _, u := range users {
		switch u.Role {
		case authorization.RoleAdmin.String():
			hasAdmin = true
		case authorization.RoleAgent.String():
			hasAgent = true
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	now := biztime.NowUTC()
	if !hasAdmin {
		maxID++
		users = append(users, models.UserRecord{
			ID:        maxID,
			Name:      "Admin User",
			Email:     "admin@quickdesk.com",
			Password:  "password",
			Role:      authorization.RoleAdmin.String(),
			CreatedAt: now,
		})
	}
	if !hasAgent {
		maxID++
		users = append(users, models.UserRecord{
			ID:        maxID,
			Name:      "Support Agent",
			Email:     "agent@quickdesk.com",
			Password:  "password",
			Role:      authorization.RoleAgent.String(),
			CreatedAt: now,
		})
	}
	return users
}
