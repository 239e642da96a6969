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

// userService implements the UserService interface
type userService struct {
	userRepo  repositories.UserRepository
	validator *ResourceValidator
	logger    *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	validator *ResourceValidator,
	logger *slog.Logger,
) services.UserService {
	return &userService{
		userRepo:  userRepo,
		validator: validator,
		logger:    logger,
	}
}

// CreateUser registers a user known to the auth provider.
// A second registration of the same provider id returns a ConflictError.
func (s *userService) CreateUser(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.AuthProviderUserID,
			validation.Required,
			validation.By(notBlank),
			validation.RuneLength(1, config.MaxAuthProviderUserIDLength),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user := &models.User{
		AuthProviderUserID:       strings.TrimSpace(req.AuthProviderUserID),
		Status:                   models.StatusActive,
		AccessibleUserProjectIDs: []string{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		"id", user.ID,
		"auth_provider_user_id", user.AuthProviderUserID,
	)

	return user, nil
}

// GetUser retrieves an active user by ID
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListAccessibleProjects lists the projects a user belongs to, with the user's role
func (s *userService) ListAccessibleProjects(ctx context.Context, userID string) ([]models.UserAccessibleProject, error) {
	if err := s.validator.ValidateUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.userRepo.ListAccessibleProjects(ctx, userID)
}
