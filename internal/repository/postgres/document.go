package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"
)

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new document
func (r *PostgresDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, content, folder_id, data_room_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Documents)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		doc.Name,
		doc.Content,
		doc.FolderID,
		doc.DataRoomID,
		doc.Status,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return domain.NewValidation("document '%s': data room or folder does not exist", doc.Name)
		}
		if IsPgConstraintError(err) {
			r.logger.Warn("document rejected by constraint", "name", doc.Name, "folder_id", doc.FolderID, "error", err)
			return domain.NewValidation("invalid document '%s'", doc.Name)
		}
		return fmt.Errorf("create document: %w", err)
	}

	return nil
}

// GetByID retrieves an active document by ID
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, name, content, folder_id, data_room_id, status, created_at, updated_at
		FROM %s
		WHERE id = $1 AND status = 'active'
	`, r.tables.Documents)

	var doc models.Document
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Name,
		&doc.Content,
		&doc.FolderID,
		&doc.DataRoomID,
		&doc.Status,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("document", id)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return &doc, nil
}
