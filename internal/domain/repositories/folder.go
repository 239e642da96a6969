package repositories

import (
	"context"

	"auralis/internal/domain/models"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create inserts a folder and fills ID and timestamps
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves an active folder
	GetByID(ctx context.Context, id string) (*models.Folder, error)
}
