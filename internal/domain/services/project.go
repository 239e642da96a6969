package services

import (
	"context"

	"auralis/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// AddProjectUserRequest carries the role granted to a user on a project
type AddProjectUserRequest struct {
	UserRole string `json:"user_role"`
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)

	LinkDataRoom(ctx context.Context, projectID, dataRoomID string) error
	UnlinkDataRoom(ctx context.Context, projectID, dataRoomID string) error
	ListDataRooms(ctx context.Context, projectID string) ([]models.DataRoom, error)

	AddUser(ctx context.Context, projectID, userID string, req *AddProjectUserRequest) (*models.UserProject, error)
	RemoveUser(ctx context.Context, projectID, userID string) error
	ListUsers(ctx context.Context, projectID string) ([]models.ProjectMember, error)
}
