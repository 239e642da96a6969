package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"

	"github.com/google/uuid"
)

// ResourceValidator checks that referenced resources exist and are active
// before a child resource is written against them
type ResourceValidator struct {
	dataRoomRepo repositories.DataRoomRepository
	folderRepo   repositories.FolderRepository
	projectRepo  repositories.ProjectRepository
	userRepo     repositories.UserRepository
}

// NewResourceValidator creates a new resource validator
func NewResourceValidator(
	dataRoomRepo repositories.DataRoomRepository,
	folderRepo repositories.FolderRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
) *ResourceValidator {
	return &ResourceValidator{
		dataRoomRepo: dataRoomRepo,
		folderRepo:   folderRepo,
		projectRepo:  projectRepo,
		userRepo:     userRepo,
	}
}

// ValidateDataRoom ensures a data room exists and is active
func (v *ResourceValidator) ValidateDataRoom(ctx context.Context, dataRoomID string) (*models.DataRoom, error) {
	room, err := v.dataRoomRepo.GetByID(ctx, dataRoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid data room: %w", err)
	}
	return room, nil
}

// ValidateFolder ensures a folder is active and belongs to the given data room.
// A folder from another data room is reported as not found.
func (v *ResourceValidator) ValidateFolder(ctx context.Context, folderID, dataRoomID string) (*models.Folder, error) {
	folder, err := v.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("invalid folder: %w", err)
	}
	if folder.DataRoomID != dataRoomID {
		return nil, fmt.Errorf("invalid folder: %w", domain.NewNotFound("folder", folderID))
	}
	return folder, nil
}

// ValidateProject ensures a project exists and is active
func (v *ResourceValidator) ValidateProject(ctx context.Context, projectID string) error {
	if _, err := v.projectRepo.GetByID(ctx, projectID); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}
	return nil
}

// ValidateUser ensures a user exists and is active
func (v *ResourceValidator) ValidateUser(ctx context.Context, userID string) error {
	if _, err := v.userRepo.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	return nil
}

// notBlank rejects whitespace-only strings (ozzo Required accepts them)
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// isUUID is an ozzo rule body for id fields
func isUUID(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid UUID")
	}
	return nil
}
