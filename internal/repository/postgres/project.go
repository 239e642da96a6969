package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"
)

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   Pool
	tables *TableNames
	logger *slog.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new project
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.Status,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		if IsPgConstraintError(err) {
			r.logger.Warn("project rejected by constraint", "name", project.Name, "error", err)
			return domain.NewValidation("invalid project '%s'", project.Name)
		}
		return fmt.Errorf("create project: %w", err)
	}

	if project.DataRoomIDs == nil {
		project.DataRoomIDs = []string{}
	}
	if project.AccessibleUserProjectIDs == nil {
		project.AccessibleUserProjectIDs = []string{}
	}

	return nil
}

// GetByID retrieves an active project with the ids of its linked data rooms and memberships
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.description, p.status, p.created_at, p.updated_at,
			COALESCE((
				SELECT array_agg(pdr.data_room_id::text ORDER BY pdr.created_at, pdr.data_room_id)
				FROM %[2]s pdr
				WHERE pdr.project_id = p.id
			), '{}') AS data_room_ids,
			COALESCE((
				SELECT array_agg(up.id::text ORDER BY up.created_at, up.id)
				FROM %[3]s up
				WHERE up.project_id = p.id AND up.status = 'active'
			), '{}') AS user_project_ids
		FROM %[1]s p
		WHERE p.id = $1 AND p.status = 'active'
	`, r.tables.Projects, r.tables.ProjectDataRooms, r.tables.UserProjects)

	var project models.Project
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
		&project.DataRoomIDs,
		&project.AccessibleUserProjectIDs,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("project", id)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// LinkDataRoom associates a data room with a project
func (r *PostgresProjectRepository) LinkDataRoom(ctx context.Context, projectID, dataRoomID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, data_room_id)
		VALUES ($1, $2)
		ON CONFLICT (project_id, data_room_id) DO NOTHING
	`, r.tables.ProjectDataRooms)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID, dataRoomID); err != nil {
		if IsPgForeignKeyError(err) {
			return domain.NewValidation("project %s or data room %s does not exist", projectID, dataRoomID)
		}
		return fmt.Errorf("link data room: %w", err)
	}

	return nil
}

// UnlinkDataRoom removes a project / data room association
func (r *PostgresProjectRepository) UnlinkDataRoom(ctx context.Context, projectID, dataRoomID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE project_id = $1 AND data_room_id = $2
	`, r.tables.ProjectDataRooms)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID, dataRoomID); err != nil {
		return fmt.Errorf("unlink data room: %w", err)
	}

	return nil
}

// AddUser upserts a membership row; re-adding a user replaces the role and reactivates it
func (r *PostgresProjectRepository) AddUser(ctx context.Context, membership *models.UserProject) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, project_id, user_role, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, project_id)
		DO UPDATE SET user_role = EXCLUDED.user_role, status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`, r.tables.UserProjects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		membership.UserID,
		membership.ProjectID,
		membership.UserRole,
		membership.Status,
	).Scan(&membership.ID, &membership.CreatedAt, &membership.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return domain.NewValidation("project %s or user %s does not exist", membership.ProjectID, membership.UserID)
		}
		if IsPgConstraintError(err) {
			return domain.NewValidation("invalid user role %q", membership.UserRole)
		}
		return fmt.Errorf("add project user: %w", err)
	}

	return nil
}

// RemoveUser deletes a membership row
func (r *PostgresProjectRepository) RemoveUser(ctx context.Context, projectID, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE project_id = $1 AND user_id = $2
	`, r.tables.UserProjects)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID, userID); err != nil {
		return fmt.Errorf("remove project user: %w", err)
	}

	return nil
}

// ListUsers lists the active members of a project
func (r *PostgresProjectRepository) ListUsers(ctx context.Context, projectID string) ([]models.ProjectMember, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.auth_provider_user_id, up.user_role, up.created_at
		FROM %s up
		JOIN %s u ON u.id = up.user_id
		WHERE up.project_id = $1 AND up.status = 'active' AND u.status = 'active'
		ORDER BY up.created_at ASC, u.id ASC
	`, r.tables.UserProjects, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project users: %w", err)
	}
	defer rows.Close()

	members := []models.ProjectMember{}
	for rows.Next() {
		var member models.ProjectMember
		if err := rows.Scan(
			&member.UserID,
			&member.AuthProviderUserID,
			&member.UserRole,
			&member.JoinedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project user: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project users: %w", err)
	}

	return members, nil
}
