package main

import (
	"context"
	"flag"
	"log"
	"os"

	"auralis/internal/ansarada"
	"auralis/internal/config"
	"auralis/internal/repository/postgres"
	"auralis/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	clearOnly := flag.Bool("clear-data", false, "Delete all rows (keep schema)")
	fixturesPath := flag.String("file", "", "Seed YAML file (defaults to the embedded seed.yaml)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearOnly) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logger := config.NewLogger(os.Stdout, cfg.Environment)

	switch {
	case *clearOnly:
		log.Printf("🧹 Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	case *schemaOnly:
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	default:
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Parse fixtures before touching the database
	var fixtures *Fixtures
	if !*schemaOnly && !*clearOnly {
		var err error
		if fixtures, err = loadFixtures(*fixturesPath); err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL, 4, 1)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	if *clearOnly {
		if err := clearData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	// Create repositories and services exactly like the server does
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	dataRoomRepo := postgres.NewDataRoomRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	userRepo := postgres.NewUserRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)
	validator := service.NewResourceValidator(dataRoomRepo, folderRepo, projectRepo, userRepo)

	s := &seeder{
		dataRooms: service.NewDataRoomService(txManager, dataRoomRepo, folderRepo, ansarada.NewClient(), cfg.AnsaradaDefaultPageSize, logger),
		tree:      service.NewDocumentTreeService(postgres.NewDocumentTreeRepository(repoConfig), folderRepo, postgres.NewDocumentRepository(repoConfig), validator, logger),
		projects:  service.NewProjectService(projectRepo, dataRoomRepo, validator, logger),
		users:     service.NewUserService(userRepo, validator, logger),
	}

	stats, err := s.run(ctx, fixtures)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("🎉 Seeding complete! users=%d data_rooms=%d folders=%d documents=%d projects=%d links=%d members=%d",
		stats.Users, stats.DataRooms, stats.Folders, stats.Documents, stats.Projects, stats.Links, stats.Members)
}
