package main

import (
	"context"
	"fmt"
	"log"

	"auralis/internal/domain/repositories"
	"auralis/internal/repository/postgres"
)

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, db repositories.DBTX, tables *postgres.TableNames, tablePrefix string) error {
	statusColumn := `status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'disabled', 'deleted'))`

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			auth_provider_user_id TEXT NOT NULL UNIQUE,
			` + statusColumn + `,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS ` + tables.Projects + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			description TEXT,
			` + statusColumn + `,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// root_folder_id gets its FK below, once folders exists
		`CREATE TABLE IF NOT EXISTS ` + tables.DataRooms + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT 'original' CHECK (source IN ('original', 'ansarada')),
			` + statusColumn + `,
			root_folder_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS ` + tables.Folders + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			data_room_id UUID NOT NULL REFERENCES ` + tables.DataRooms + `(id) ON DELETE CASCADE,
			parent_folder_id UUID REFERENCES ` + tables.Folders + `(id) ON DELETE CASCADE,
			` + statusColumn + `,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS ` + tables.Documents + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			folder_id UUID NOT NULL REFERENCES ` + tables.Folders + `(id) ON DELETE CASCADE,
			data_room_id UUID NOT NULL REFERENCES ` + tables.DataRooms + `(id) ON DELETE CASCADE,
			` + statusColumn + `,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS ` + tables.ProjectDataRooms + ` (
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			data_room_id UUID NOT NULL REFERENCES ` + tables.DataRooms + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (project_id, data_room_id)
		)`,

		`CREATE TABLE IF NOT EXISTS ` + tables.UserProjects + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES ` + tables.Users + `(id) ON DELETE CASCADE,
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			user_role TEXT NOT NULL CHECK (user_role IN ('admin', 'editor', 'viewer')),
			` + statusColumn + `,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, project_id)
		)`,

		// Circular FK: deferrable so a room and its root folder can be created in one transaction
		fmt.Sprintf(`DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
				ALTER TABLE %[2]s
					ADD CONSTRAINT %[1]s FOREIGN KEY (root_folder_id)
					REFERENCES %[3]s(id) DEFERRABLE INITIALLY IMMEDIATE;
			END IF;
		END $$`, tables.RootFolderConstraint, tables.DataRooms, tables.Folders),
	}

	// Indexes
	statements = append(statements,
		`CREATE INDEX IF NOT EXISTS idx_`+tablePrefix+`folders_data_room_parent ON `+tables.Folders+`(data_room_id, parent_folder_id)`,
		`CREATE INDEX IF NOT EXISTS idx_`+tablePrefix+`documents_folder ON `+tables.Documents+`(folder_id)`,
		`CREATE INDEX IF NOT EXISTS idx_`+tablePrefix+`project_data_rooms_data_room ON `+tables.ProjectDataRooms+`(data_room_id)`,
		`CREATE INDEX IF NOT EXISTS idx_`+tablePrefix+`user_projects_project ON `+tables.UserProjects+`(project_id)`,
	)

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run schema: %w", err)
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, db repositories.DBTX, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.UserProjects,
		tables.ProjectDataRooms,
		tables.Documents,
		tables.Folders,
		tables.DataRooms,
		tables.Projects,
		tables.Users,
	}

	for _, table := range tableNames {
		if _, err := db.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
		log.Printf("  ✓ Dropped %s", table)
	}

	return nil
}

// clearData deletes every row but keeps the schema
func clearData(ctx context.Context, db repositories.DBTX, tables *postgres.TableNames) error {
	query := fmt.Sprintf("TRUNCATE %s, %s, %s, %s, %s, %s, %s",
		tables.UserProjects,
		tables.ProjectDataRooms,
		tables.Documents,
		tables.Folders,
		tables.DataRooms,
		tables.Projects,
		tables.Users,
	)
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}
