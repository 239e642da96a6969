package services

import (
	"context"

	"auralis/internal/domain/models"
)

// CreateUserRequest represents a request to register a user from the auth provider
type CreateUserRequest struct {
	AuthProviderUserID string `json:"auth_provider_user_id"`
}

// UserService defines business logic operations for users
type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListAccessibleProjects(ctx context.Context, userID string) ([]models.UserAccessibleProject, error)
}
