package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"auralis/internal/domain/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of *pgxpool.Pool the repositories need. pgxmock.PgxPoolIface
// satisfies it too, which is what the repository tests run against.
type Pool interface {
	repositories.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table and constraint names
type TableNames struct {
	Users            string
	Projects         string
	DataRooms        string
	Folders          string
	Documents        string
	ProjectDataRooms string
	UserProjects     string

	// RootFolderConstraint is the deferrable FK from data_rooms.root_folder_id to folders.id
	RootFolderConstraint string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Users:                fmt.Sprintf("%susers", prefix),
		Projects:             fmt.Sprintf("%sprojects", prefix),
		DataRooms:            fmt.Sprintf("%sdata_rooms", prefix),
		Folders:              fmt.Sprintf("%sfolders", prefix),
		Documents:            fmt.Sprintf("%sdocuments", prefix),
		ProjectDataRooms:     fmt.Sprintf("%sproject_data_rooms", prefix),
		UserProjects:         fmt.Sprintf("%suser_projects", prefix),
		RootFolderConstraint: fmt.Sprintf("%sfk_data_room_root_folder", prefix),
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// Behind PgBouncer in transaction pooling mode (port 6543) prepared statements
// break, so the pool switches to QueryExecModeCacheDescribe unless the connection
// string already chose a mode via default_query_exec_mode.
//
// Table prefixes are interpolated with fmt.Sprintf before the SQL reaches the
// server, so each environment simply gets its own statement cache entries.
func CreateConnectionPool(ctx context.Context, databaseURL string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = maxConns
	config.MinConns = minConns

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the transaction stored in ctx, or the pool when there is none.
// This lets repositories participate in transactions without knowing about them.
func GetExecutor(ctx context.Context, pool Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
