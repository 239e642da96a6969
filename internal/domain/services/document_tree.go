package services

import (
	"context"

	"auralis/internal/domain/models"
)

// CreateFolderRequest represents a request to create a folder under an existing folder
type CreateFolderRequest struct {
	Name           string `json:"name"`
	DataRoomID     string `json:"data_room_id"`
	ParentFolderID string `json:"parent_folder_id"`
}

// CreateDocumentRequest represents a request to create a document in a folder
type CreateDocumentRequest struct {
	Name       string `json:"name"`
	Content    string `json:"content"`
	DataRoomID string `json:"data_room_id"`
	FolderID   string `json:"folder_id"`
}

// DocumentTreeService defines operations on a data room's folder/document hierarchy
type DocumentTreeService interface {
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)
	GetFolder(ctx context.Context, id string) (*models.Folder, error)

	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*models.Document, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// GetDocumentTree reconstructs the active hierarchy of a data room.
	// Returns domain.ErrNotFound when the room or its root folder cannot be resolved.
	GetDocumentTree(ctx context.Context, dataRoomID string) (*models.DocumentTree, error)
}
