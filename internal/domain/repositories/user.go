package repositories

import (
	"context"

	"auralis/internal/domain/models"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)

	// ListAccessibleProjects lists the active projects a user belongs to, with role
	ListAccessibleProjects(ctx context.Context, userID string) ([]models.UserAccessibleProject, error)
}
