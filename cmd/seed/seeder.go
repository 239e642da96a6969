package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"auralis/internal/domain"
	"auralis/internal/domain/services"
)

// seeder loads fixtures through the service layer so every business rule applies
type seeder struct {
	dataRooms services.DataRoomService
	tree      services.DocumentTreeService
	projects  services.ProjectService
	users     services.UserService
}

type seedStats struct {
	Users, DataRooms, Folders, Documents, Projects, Links, Members int
}

func (s *seeder) run(ctx context.Context, f *Fixtures) (*seedStats, error) {
	stats := &seedStats{}

	userIDs := make(map[string]string)
	for _, u := range f.Users {
		user, err := s.users.CreateUser(ctx, &services.CreateUserRequest{AuthProviderUserID: u.AuthProviderUserID})
		if err != nil {
			// Re-running the seed reuses users that already exist
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) && conflict.ResourceID != "" {
				userIDs[u.AuthProviderUserID] = conflict.ResourceID
				continue
			}
			return stats, fmt.Errorf("seed user %q: %w", u.AuthProviderUserID, err)
		}
		userIDs[u.AuthProviderUserID] = user.ID
		stats.Users++
	}

	roomIDs := make(map[string]string)
	for _, r := range f.DataRooms {
		room, err := s.dataRooms.CreateDataRoom(ctx, &services.CreateDataRoomRequest{Name: r.Name, Source: "original"})
		if err != nil {
			return stats, fmt.Errorf("seed data room %q: %w", r.Name, err)
		}
		roomIDs[r.Name] = room.ID
		stats.DataRooms++

		if err := s.seedNodes(ctx, room.ID, *room.RootFolderID, r.Tree, stats); err != nil {
			return stats, fmt.Errorf("seed data room %q: %w", r.Name, err)
		}
		log.Printf("✅ Created data room %q (ID: %s)", room.Name, room.ID)
	}

	for _, p := range f.Projects {
		project, err := s.projects.CreateProject(ctx, &services.CreateProjectRequest{Name: p.Name, Description: p.Description})
		if err != nil {
			return stats, fmt.Errorf("seed project %q: %w", p.Name, err)
		}
		stats.Projects++

		for _, name := range p.DataRooms {
			if err := s.projects.LinkDataRoom(ctx, project.ID, roomIDs[name]); err != nil {
				return stats, fmt.Errorf("link %q to %q: %w", name, p.Name, err)
			}
			stats.Links++
		}
		for _, m := range p.Members {
			req := &services.AddProjectUserRequest{UserRole: m.Role}
			if _, err := s.projects.AddUser(ctx, project.ID, userIDs[m.User], req); err != nil {
				return stats, fmt.Errorf("add %q to %q: %w", m.User, p.Name, err)
			}
			stats.Members++
		}
		log.Printf("✅ Created project %q (ID: %s)", project.Name, project.ID)
	}

	return stats, nil
}

func (s *seeder) seedNodes(ctx context.Context, roomID, parentID string, nodes []NodeFixture, stats *seedStats) error {
	for _, n := range nodes {
		if n.Document != "" {
			_, err := s.tree.CreateDocument(ctx, &services.CreateDocumentRequest{
				Name:       n.Document,
				Content:    n.Content,
				DataRoomID: roomID,
				FolderID:   parentID,
			})
			if err != nil {
				return fmt.Errorf("document %q: %w", n.Document, err)
			}
			stats.Documents++
			continue
		}

		folder, err := s.tree.CreateFolder(ctx, &services.CreateFolderRequest{
			Name:           n.Folder,
			DataRoomID:     roomID,
			ParentFolderID: parentID,
		})
		if err != nil {
			return fmt.Errorf("folder %q: %w", n.Folder, err)
		}
		stats.Folders++

		if err := s.seedNodes(ctx, roomID, folder.ID, n.Children, stats); err != nil {
			return err
		}
	}
	return nil
}
