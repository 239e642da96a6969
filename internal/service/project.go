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

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo  repositories.ProjectRepository
	dataRoomRepo repositories.DataRoomRepository
	validator    *ResourceValidator
	logger       *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	dataRoomRepo repositories.DataRoomRepository,
	validator *ResourceValidator,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		dataRoomRepo: dataRoomRepo,
		validator:    validator,
		logger:       logger,
	}
}

// CreateProject creates a new project
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.By(notBlank), validation.RuneLength(1, config.MaxProjectNameLength)),
		validation.Field(&req.Description, validation.NilOrNotEmpty, validation.RuneLength(0, config.MaxProjectDescriptionLength)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := &models.Project{
		Name:                     strings.TrimSpace(req.Name),
		Description:              req.Description,
		Status:                   models.StatusActive,
		DataRoomIDs:              []string{},
		AccessibleUserProjectIDs: []string{},
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
	)

	return project, nil
}

// GetProject retrieves an active project by ID
func (s *projectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// LinkDataRoom associates an active data room with an active project
func (s *projectService) LinkDataRoom(ctx context.Context, projectID, dataRoomID string) error {
	if err := s.validator.ValidateProject(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.validator.ValidateDataRoom(ctx, dataRoomID); err != nil {
		return err
	}

	if err := s.projectRepo.LinkDataRoom(ctx, projectID, dataRoomID); err != nil {
		return err
	}

	s.logger.Info("data room linked",
		"project_id", projectID,
		"data_room_id", dataRoomID,
	)

	return nil
}

// UnlinkDataRoom removes the association; unlinking twice is not an error
func (s *projectService) UnlinkDataRoom(ctx context.Context, projectID, dataRoomID string) error {
	if err := s.validator.ValidateProject(ctx, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.UnlinkDataRoom(ctx, projectID, dataRoomID); err != nil {
		return err
	}

	s.logger.Info("data room unlinked",
		"project_id", projectID,
		"data_room_id", dataRoomID,
	)

	return nil
}

// ListDataRooms lists the active data rooms linked to a project
func (s *projectService) ListDataRooms(ctx context.Context, projectID string) ([]models.DataRoom, error) {
	if err := s.validator.ValidateProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.dataRoomRepo.ListByProject(ctx, projectID)
}

// AddUser grants a role on a project. Adding an existing member replaces the role.
func (s *projectService) AddUser(ctx context.Context, projectID, userID string, req *services.AddProjectUserRequest) (*models.UserProject, error) {
	roles := make([]interface{}, len(models.UserRoles))
	for i, role := range models.UserRoles {
		roles[i] = string(role)
	}

	err := validation.ValidateStruct(req,
		validation.Field(&req.UserRole, validation.Required, validation.In(roles...)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.validator.ValidateProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateUser(ctx, userID); err != nil {
		return nil, err
	}

	membership := &models.UserProject{
		UserID:    userID,
		ProjectID: projectID,
		UserRole:  models.UserRole(req.UserRole),
		Status:    models.StatusActive,
	}

	if err := s.projectRepo.AddUser(ctx, membership); err != nil {
		return nil, err
	}

	s.logger.Info("project user added",
		"id", membership.ID,
		"project_id", projectID,
		"user_id", userID,
		"user_role", membership.UserRole,
	)

	return membership, nil
}

// RemoveUser revokes a user's membership; removing a non-member is not an error
func (s *projectService) RemoveUser(ctx context.Context, projectID, userID string) error {
	if err := s.validator.ValidateProject(ctx, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.RemoveUser(ctx, projectID, userID); err != nil {
		return err
	}

	s.logger.Info("project user removed",
		"project_id", projectID,
		"user_id", userID,
	)

	return nil
}

// ListUsers lists the active members of a project
func (s *projectService) ListUsers(ctx context.Context, projectID string) ([]models.ProjectMember, error) {
	if err := s.validator.ValidateProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.projectRepo.ListUsers(ctx, projectID)
}
