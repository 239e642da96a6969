package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"auralis/internal/config"
	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"
	"auralis/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// documentTreeService implements the DocumentTreeService interface
type documentTreeService struct {
	treeRepo     repositories.DocumentTreeRepository
	folderRepo   repositories.FolderRepository
	documentRepo repositories.DocumentRepository
	validator    *ResourceValidator
	logger       *slog.Logger
}

// NewDocumentTreeService creates a new document tree service
func NewDocumentTreeService(
	treeRepo repositories.DocumentTreeRepository,
	folderRepo repositories.FolderRepository,
	documentRepo repositories.DocumentRepository,
	validator *ResourceValidator,
	logger *slog.Logger,
) services.DocumentTreeService {
	return &documentTreeService{
		treeRepo:     treeRepo,
		folderRepo:   folderRepo,
		documentRepo: documentRepo,
		validator:    validator,
		logger:       logger,
	}
}

// CreateFolder creates a folder under an active folder of the same data room
func (s *documentTreeService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.By(notBlank), validation.RuneLength(1, config.MaxFolderNameLength)),
		validation.Field(&req.DataRoomID, validation.Required, validation.By(isUUID)),
		validation.Field(&req.ParentFolderID, validation.Required, validation.By(isUUID)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.validator.ValidateDataRoom(ctx, req.DataRoomID); err != nil {
		return nil, err
	}
	if _, err := s.validator.ValidateFolder(ctx, req.ParentFolderID, req.DataRoomID); err != nil {
		return nil, err
	}

	parentID := req.ParentFolderID
	folder := &models.Folder{
		Name:           strings.TrimSpace(req.Name),
		DataRoomID:     req.DataRoomID,
		ParentFolderID: &parentID,
		Status:         models.StatusActive,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"data_room_id", folder.DataRoomID,
		"parent_folder_id", parentID,
	)

	return folder, nil
}

// GetFolder retrieves an active folder by ID
func (s *documentTreeService) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id)
}

// CreateDocument creates a document in an active folder of the same data room
func (s *documentTreeService) CreateDocument(ctx context.Context, req *services.CreateDocumentRequest) (*models.Document, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.By(notBlank), validation.RuneLength(1, config.MaxDocumentNameLength)),
		validation.Field(&req.DataRoomID, validation.Required, validation.By(isUUID)),
		validation.Field(&req.FolderID, validation.Required, validation.By(isUUID)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.validator.ValidateDataRoom(ctx, req.DataRoomID); err != nil {
		return nil, err
	}
	if _, err := s.validator.ValidateFolder(ctx, req.FolderID, req.DataRoomID); err != nil {
		return nil, err
	}

	doc := &models.Document{
		Name:       strings.TrimSpace(req.Name),
		Content:    req.Content,
		DataRoomID: req.DataRoomID,
		FolderID:   req.FolderID,
		Status:     models.StatusActive,
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document created",
		"id", doc.ID,
		"name", doc.Name,
		"data_room_id", doc.DataRoomID,
		"folder_id", doc.FolderID,
	)

	return doc, nil
}

// GetDocument retrieves an active document by ID
func (s *documentTreeService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

// GetDocumentTree fetches the room's rows in one query and assembles them in memory
func (s *documentTreeService) GetDocumentTree(ctx context.Context, dataRoomID string) (*models.DocumentTree, error) {
	rows, err := s.treeRepo.GetTreeRows(ctx, dataRoomID)
	if err != nil {
		return nil, err
	}

	tree, ok := BuildDocumentTree(rows)
	if !ok {
		s.logger.Debug("document tree has no root", "data_room_id", dataRoomID, "rows", len(rows))
		return nil, domain.NewNotFound("document tree", dataRoomID)
	}

	return tree, nil
}
