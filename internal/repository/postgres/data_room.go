package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"
)

// PostgresDataRoomRepository implements the DataRoomRepository interface
type PostgresDataRoomRepository struct {
	pool   Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDataRoomRepository creates a new data room repository
func NewDataRoomRepository(config *RepositoryConfig) repositories.DataRoomRepository {
	return &PostgresDataRoomRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// DeferRootFolderConstraint defers the circular root folder FK until commit
func (r *PostgresDataRoomRepository) DeferRootFolderConstraint(ctx context.Context) error {
	if repositories.GetTx(ctx) == nil {
		return fmt.Errorf("defer root folder constraint: no transaction in context")
	}

	// Constraint names cannot be bound as parameters; the name comes from config
	query := fmt.Sprintf(`SET CONSTRAINTS %s DEFERRED`, r.tables.RootFolderConstraint)

	if _, err := GetExecutor(ctx, r.pool).Exec(ctx, query); err != nil {
		return fmt.Errorf("defer root folder constraint: %w", err)
	}
	return nil
}

// Create inserts the data room row with a NULL root folder
func (r *PostgresDataRoomRepository) Create(ctx context.Context, room *models.DataRoom) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, source, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.DataRooms)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		room.Name,
		room.Source,
		room.Status,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)

	if err != nil {
		if IsPgConstraintError(err) {
			r.logger.Warn("data room rejected by constraint", "name", room.Name, "source", room.Source, "error", err)
			return domain.NewValidation("invalid data room source %q", room.Source)
		}
		return fmt.Errorf("create data room: %w", err)
	}

	return nil
}

// SetRootFolder points the data room at its root folder
func (r *PostgresDataRoomRepository) SetRootFolder(ctx context.Context, room *models.DataRoom, folderID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET root_folder_id = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING root_folder_id, updated_at
	`, r.tables.DataRooms)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, folderID, room.ID).Scan(&room.RootFolderID, &room.UpdatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return domain.NewNotFound("data room", room.ID)
		}
		if IsPgForeignKeyError(err) {
			return domain.NewValidation("root folder %s does not exist", folderID)
		}
		return fmt.Errorf("set root folder: %w", err)
	}

	return nil
}

// GetByID retrieves an active data room by ID
func (r *PostgresDataRoomRepository) GetByID(ctx context.Context, id string) (*models.DataRoom, error) {
	query := fmt.Sprintf(`
		SELECT id, name, source, status, root_folder_id, created_at, updated_at
		FROM %s
		WHERE id = $1 AND status = 'active'
	`, r.tables.DataRooms)

	var room models.DataRoom
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Source,
		&room.Status,
		&room.RootFolderID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("data room", id)
		}
		return nil, fmt.Errorf("get data room: %w", err)
	}

	return &room, nil
}

// ListByProject lists active data rooms linked to a project
func (r *PostgresDataRoomRepository) ListByProject(ctx context.Context, projectID string) ([]models.DataRoom, error) {
	query := fmt.Sprintf(`
		SELECT dr.id, dr.name, dr.source, dr.status, dr.root_folder_id, dr.created_at, dr.updated_at
		FROM %s dr
		JOIN %s pdr ON pdr.data_room_id = dr.id
		WHERE pdr.project_id = $1 AND dr.status = 'active'
		ORDER BY pdr.created_at ASC, dr.id ASC
	`, r.tables.DataRooms, r.tables.ProjectDataRooms)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project data rooms: %w", err)
	}
	defer rows.Close()

	rooms := []models.DataRoom{}
	for rows.Next() {
		var room models.DataRoom
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Source,
			&room.Status,
			&room.RootFolderID,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan data room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate data rooms: %w", err)
	}

	return rooms, nil
}
