package repositories

import (
	"context"

	"auralis/internal/domain/models"
)

// ProjectRepository defines data access operations for projects and their
// data room / user associations
type ProjectRepository interface {
	// Create creates a new project and returns it with generated ID and timestamps
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves an active project with its data room and membership ids
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// LinkDataRoom associates a data room with a project. Linking twice is a no-op.
	LinkDataRoom(ctx context.Context, projectID, dataRoomID string) error

	// UnlinkDataRoom removes the association. Unlinking a missing link is a no-op.
	UnlinkDataRoom(ctx context.Context, projectID, dataRoomID string) error

	// AddUser upserts a membership; a user holds at most one role per project
	AddUser(ctx context.Context, membership *models.UserProject) error

	// RemoveUser deletes the membership. Removing a missing member is a no-op.
	RemoveUser(ctx context.Context, projectID, userID string) error

	// ListUsers lists active members of a project, oldest first
	ListUsers(ctx context.Context, projectID string) ([]models.ProjectMember, error)
}
