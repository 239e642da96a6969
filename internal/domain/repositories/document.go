package repositories

import (
	"context"

	"auralis/internal/domain/models"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id string) (*models.Document, error)
}

// DocumentTreeRepository reads a data room's hierarchy in one round trip
type DocumentTreeRepository interface {
	// GetTreeRows returns every active folder reachable from the active root folder
	// of the active data room, plus the active documents in those folders, as a
	// flat unordered row set. Empty when the room or its root is missing/inactive.
	GetTreeRows(ctx context.Context, dataRoomID string) ([]models.TreeRow, error)
}
