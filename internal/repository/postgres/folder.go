package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   Pool
	tables *TableNames
	logger *slog.Logger
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, data_room_id, parent_folder_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		folder.Name,
		folder.DataRoomID,
		folder.ParentFolderID,
		folder.Status,
	).Scan(&folder.ID, &folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return domain.NewValidation("folder '%s': data room or parent folder does not exist", folder.Name)
		}
		if IsPgConstraintError(err) {
			r.logger.Warn("folder rejected by constraint", "name", folder.Name, "data_room_id", folder.DataRoomID, "error", err)
			return domain.NewValidation("invalid folder '%s'", folder.Name)
		}
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves an active folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, name, data_room_id, parent_folder_id, status, created_at, updated_at
		FROM %s
		WHERE id = $1 AND status = 'active'
	`, r.tables.Folders)

	var folder models.Folder
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&folder.ID,
		&folder.Name,
		&folder.DataRoomID,
		&folder.ParentFolderID,
		&folder.Status,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("folder", id)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	// Filled only while assembling a tree; a plain read reports them empty
	folder.ChildrenFolderIDs = []string{}
	folder.DocumentIDs = []string{}

	return &folder, nil
}
