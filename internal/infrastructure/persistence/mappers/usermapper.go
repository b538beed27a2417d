package mappers

import (
	"fmt"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
)

// UserMapper converts between user entities and snapshot records.
type UserMapper interface {
	ToRecord(u *user.User) models.UserRecord
	ToDomain(record models.UserRecord) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToRecord(u *user.User) models.UserRecord {
	return models.UserRecord{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Password:  u.Password(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(record models.UserRecord) (*user.User, error) {
	role, err := authorization.NewRole(record.Role)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", record.ID, err)
	}
	return user.ReconstructUser(
		record.ID,
		record.Name,
		record.Email,
		record.Password,
		role,
		record.CreatedAt,
	)
}
