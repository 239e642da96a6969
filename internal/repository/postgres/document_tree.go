package postgres

import (
	"context"
	"fmt"
	"time"

	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"
)

// PostgresDocumentTreeRepository implements the DocumentTreeRepository interface
type PostgresDocumentTreeRepository struct {
	pool   Pool
	tables *TableNames
}

// NewDocumentTreeRepository creates a new document tree repository
func NewDocumentTreeRepository(config *RepositoryConfig) repositories.DocumentTreeRepository {
	return &PostgresDocumentTreeRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetTreeRows fetches the whole active hierarchy of a data room with one recursive CTE.
//
// The base case only matches an active data room whose root folder is active,
// has no parent and belongs to the same data room. The recursive step re-checks status at every
// level, so an inactive folder stops the walk and hides its whole subtree even if
// the descendants are still active.
func (r *PostgresDocumentTreeRepository) GetTreeRows(ctx context.Context, dataRoomID string) ([]models.TreeRow, error) {
	query := fmt.Sprintf(`
		WITH RECURSIVE folder_tree AS (
			SELECT f.id, f.name, f.data_room_id, f.parent_folder_id, f.status,
				f.created_at, f.updated_at, 0 AS depth
			FROM %[1]s dr
			JOIN %[2]s f ON f.id = dr.root_folder_id
			WHERE dr.id = $1
				AND dr.status = 'active'
				AND f.status = 'active'
				AND f.parent_folder_id IS NULL
				AND f.data_room_id = dr.id

			UNION ALL

			SELECT c.id, c.name, c.data_room_id, c.parent_folder_id, c.status,
				c.created_at, c.updated_at, ft.depth + 1
			FROM %[2]s c
			JOIN folder_tree ft ON c.parent_folder_id = ft.id
			WHERE c.status = 'active' AND c.data_room_id = ft.data_room_id
		)
		SELECT 'folder' AS kind, ft.id, ft.name, ft.data_room_id, ft.parent_folder_id,
			NULL::uuid AS folder_id, NULL::text AS content, ft.status, ft.depth,
			ft.created_at, ft.updated_at
		FROM folder_tree ft

		UNION ALL

		SELECT 'document' AS kind, d.id, d.name, d.data_room_id, NULL::uuid,
			d.folder_id, d.content, d.status, ft.depth + 1,
			d.created_at, d.updated_at
		FROM %[3]s d
		JOIN folder_tree ft ON d.folder_id = ft.id
		WHERE d.status = 'active' AND d.data_room_id = ft.data_room_id
	`, r.tables.DataRooms, r.tables.Folders, r.tables.Documents)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, dataRoomID)
	if err != nil {
		return nil, fmt.Errorf("query document tree: %w", err)
	}
	defer rows.Close()

	var result []models.TreeRow
	for rows.Next() {
		var (
			kind           string
			id             string
			name           string
			roomID         string
			parentFolderID *string
			folderID       *string
			content        *string
			status         models.EntityStatus
			depth          int
			createdAt      time.Time
			updatedAt      time.Time
		)
		if err := rows.Scan(&kind, &id, &name, &roomID, &parentFolderID, &folderID,
			&content, &status, &depth, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan document tree row: %w", err)
		}

		switch kind {
		case "folder":
			result = append(result, models.TreeRow{
				Kind:  models.NodeKindFolder,
				Depth: depth,
				Folder: &models.Folder{
					ID:             id,
					Name:           name,
					DataRoomID:     roomID,
					ParentFolderID: parentFolderID,
					Status:         status,
					CreatedAt:      createdAt,
					UpdatedAt:      updatedAt,
				},
			})
		case "document":
			doc := &models.Document{
				ID:         id,
				Name:       name,
				DataRoomID: roomID,
				Status:     status,
				CreatedAt:  createdAt,
				UpdatedAt:  updatedAt,
			}
			if folderID != nil {
				doc.FolderID = *folderID
			}
			if content != nil {
				doc.Content = *content
			}
			result = append(result, models.TreeRow{
				Kind:     models.NodeKindDocument,
				Depth:    depth,
				Document: doc,
			})
		default:
			return nil, fmt.Errorf("scan document tree row: unknown kind %q", kind)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate document tree: %w", err)
	}

	return result, nil
}
