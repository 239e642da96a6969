package repositories

import (
	"context"

	"auralis/internal/domain/models"
)

// DataRoomRepository defines data access operations for data rooms
type DataRoomRepository interface {
	// DeferRootFolderConstraint postpones the data_rooms.root_folder_id foreign key
	// check to the end of the current transaction. Must run inside ExecTx.
	DeferRootFolderConstraint(ctx context.Context) error

	// Create inserts a data room with no root folder yet and fills ID and timestamps
	Create(ctx context.Context, room *models.DataRoom) error

	// SetRootFolder binds the data room to its root folder and refreshes UpdatedAt
	SetRootFolder(ctx context.Context, room *models.DataRoom, folderID string) error

	// GetByID retrieves an active data room
	GetByID(ctx context.Context, id string) (*models.DataRoom, error)

	// ListByProject lists active data rooms linked to a project, oldest link first
	ListByProject(ctx context.Context, projectID string) ([]models.DataRoom, error)
}
