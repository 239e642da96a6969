package postgres

import (
	"context"
	"fmt"

	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   Pool
	tables *TableNames
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (auth_provider_user_id, status)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		user.AuthProviderUserID,
		user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			existingID, queryErr := r.getExistingUserID(ctx, user.AuthProviderUserID)
			if queryErr != nil {
				return fmt.Errorf("user '%s' already exists: %w", user.AuthProviderUserID, domain.ErrConflict)
			}
			return &domain.ConflictError{
				Message:      fmt.Sprintf("user '%s' already exists", user.AuthProviderUserID),
				ResourceType: "user",
				ResourceID:   existingID,
			}
		}
		return fmt.Errorf("create user: %w", err)
	}

	if user.AccessibleUserProjectIDs == nil {
		user.AccessibleUserProjectIDs = []string{}
	}

	return nil
}

// GetByID retrieves an active user with the ids of their project memberships
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.auth_provider_user_id, u.status, u.created_at, u.updated_at,
			COALESCE((
				SELECT array_agg(up.id::text ORDER BY up.created_at, up.id)
				FROM %[2]s up
				WHERE up.user_id = u.id AND up.status = 'active'
			), '{}') AS user_project_ids
		FROM %[1]s u
		WHERE u.id = $1 AND u.status = 'active'
	`, r.tables.Users, r.tables.UserProjects)

	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.AuthProviderUserID,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.AccessibleUserProjectIDs,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("user", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// ListAccessibleProjects lists active projects the user is an active member of
func (r *PostgresUserRepository) ListAccessibleProjects(ctx context.Context, userID string) ([]models.UserAccessibleProject, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.description, p.status, up.user_role, p.created_at, p.updated_at
		FROM %s p
		JOIN %s up ON p.id = up.project_id
		WHERE up.user_id = $1 AND up.status = 'active' AND p.status = 'active'
		ORDER BY p.updated_at DESC, p.id ASC
	`, r.tables.Projects, r.tables.UserProjects)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list accessible projects: %w", err)
	}
	defer rows.Close()

	projects := []models.UserAccessibleProject{}
	for rows.Next() {
		var project models.UserAccessibleProject
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.Status,
			&project.Role,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan accessible project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accessible projects: %w", err)
	}

	return projects, nil
}

// getExistingUserID looks up a user by auth provider id
func (r *PostgresUserRepository) getExistingUserID(ctx context.Context, authProviderUserID string) (string, error) {
	query := fmt.Sprintf(`
		SELECT id
		FROM %s
		WHERE auth_provider_user_id = $1
	`, r.tables.Users)

	var id string
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, authProviderUserID).Scan(&id); err != nil {
		return "", fmt.Errorf("get existing user ID: %w", err)
	}

	return id, nil
}
