package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"sort"
	"time"

	"auralis/internal/ansarada"
	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type pairKey struct{ a, b string }

// memStore is an in-memory stand-in for the database shared by the fake repositories
type memStore struct {
	rooms    map[string]*models.DataRoom
	folders  map[string]*models.Folder
	docs     map[string]*models.Document
	projects map[string]*models.Project
	users    map[string]*models.User
	links    map[pairKey]time.Time          // project, data room
	members  map[pairKey]*models.UserProject // project, user

	// failures injects an error for an operation name such as "folder.create"
	failures map[string]error
	clock    time.Time
}

func newMemStore() *memStore {
	return &memStore{
		rooms:    map[string]*models.DataRoom{},
		folders:  map[string]*models.Folder{},
		docs:     map[string]*models.Document{},
		projects: map[string]*models.Project{},
		users:    map[string]*models.User{},
		links:    map[pairKey]time.Time{},
		members:  map[pairKey]*models.UserProject{},
		failures: map[string]error{},
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) fail(op string) error {
	return s.failures[op]
}

type memSnapshot struct {
	rooms    map[string]*models.DataRoom
	folders  map[string]*models.Folder
	docs     map[string]*models.Document
	projects map[string]*models.Project
	users    map[string]*models.User
	links    map[pairKey]time.Time
	members  map[pairKey]*models.UserProject
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		rooms:    maps.Clone(s.rooms),
		folders:  maps.Clone(s.folders),
		docs:     maps.Clone(s.docs),
		projects: maps.Clone(s.projects),
		users:    maps.Clone(s.users),
		links:    maps.Clone(s.links),
		members:  maps.Clone(s.members),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.rooms = snap.rooms
	s.folders = snap.folders
	s.docs = snap.docs
	s.projects = snap.projects
	s.users = snap.users
	s.links = snap.links
	s.members = snap.members
}

// fakeTxManager restores the store when fn fails
type fakeTxManager struct {
	store     *memStore
	inTx      bool
	commits   int
	rollbacks int
}

type fakeTxKey struct{}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	snap := m.store.snapshot()
	m.inTx = true
	defer func() { m.inTx = false }()

	if err := fn(context.WithValue(ctx, fakeTxKey{}, true)); err != nil {
		m.store.restore(snap)
		m.rollbacks++
		return err
	}
	m.commits++
	return nil
}

func inFakeTx(ctx context.Context) bool {
	v, _ := ctx.Value(fakeTxKey{}).(bool)
	return v
}

type fakeDataRoomRepo struct{ s *memStore }

func (r *fakeDataRoomRepo) DeferRootFolderConstraint(ctx context.Context) error {
	if !inFakeTx(ctx) {
		return errors.New("defer root folder constraint: no transaction in context")
	}
	return r.s.fail("room.defer")
}

func (r *fakeDataRoomRepo) Create(ctx context.Context, room *models.DataRoom) error {
	if err := r.s.fail("room.create"); err != nil {
		return err
	}
	now := r.s.tick()
	room.ID = uuid.NewString()
	room.CreatedAt, room.UpdatedAt = now, now
	r.s.rooms[room.ID] = room
	return nil
}

func (r *fakeDataRoomRepo) SetRootFolder(ctx context.Context, room *models.DataRoom, folderID string) error {
	if err := r.s.fail("room.set_root"); err != nil {
		return err
	}
	if _, ok := r.s.rooms[room.ID]; !ok {
		return domain.NewNotFound("data room", room.ID)
	}
	id := folderID
	room.RootFolderID = &id
	room.UpdatedAt = r.s.tick()
	return nil
}

func (r *fakeDataRoomRepo) GetByID(ctx context.Context, id string) (*models.DataRoom, error) {
	room, ok := r.s.rooms[id]
	if !ok || !room.Status.IsActive() {
		return nil, domain.NewNotFound("data room", id)
	}
	cp := *room
	return &cp, nil
}

func (r *fakeDataRoomRepo) ListByProject(ctx context.Context, projectID string) ([]models.DataRoom, error) {
	type linked struct {
		room models.DataRoom
		at   time.Time
	}
	var found []linked
	for k, at := range r.s.links {
		if k.a != projectID {
			continue
		}
		if room, ok := r.s.rooms[k.b]; ok && room.Status.IsActive() {
			found = append(found, linked{*room, at})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].at.Before(found[j].at) })

	rooms := []models.DataRoom{}
	for _, l := range found {
		rooms = append(rooms, l.room)
	}
	return rooms, nil
}

type fakeFolderRepo struct{ s *memStore }

func (r *fakeFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	if err := r.s.fail("folder.create"); err != nil {
		return err
	}
	now := r.s.tick()
	folder.ID = uuid.NewString()
	folder.CreatedAt, folder.UpdatedAt = now, now
	r.s.folders[folder.ID] = folder
	return nil
}

func (r *fakeFolderRepo) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	f, ok := r.s.folders[id]
	if !ok || !f.Status.IsActive() {
		return nil, domain.NewNotFound("folder", id)
	}
	cp := *f
	return &cp, nil
}

type fakeDocumentRepo struct{ s *memStore }

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	if err := r.s.fail("document.create"); err != nil {
		return err
	}
	now := r.s.tick()
	doc.ID = uuid.NewString()
	doc.CreatedAt, doc.UpdatedAt = now, now
	r.s.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	d, ok := r.s.docs[id]
	if !ok || !d.Status.IsActive() {
		return nil, domain.NewNotFound("document", id)
	}
	cp := *d
	return &cp, nil
}

// fakeTreeRepo walks the store the way the recursive query does
type fakeTreeRepo struct{ s *memStore }

func (r *fakeTreeRepo) GetTreeRows(ctx context.Context, dataRoomID string) ([]models.TreeRow, error) {
	room, ok := r.s.rooms[dataRoomID]
	if !ok || !room.Status.IsActive() || room.RootFolderID == nil {
		return nil, nil
	}
	root, ok := r.s.folders[*room.RootFolderID]
	if !ok || !root.Status.IsActive() || root.ParentFolderID != nil || root.DataRoomID != dataRoomID {
		return nil, nil
	}

	var rows []models.TreeRow
	var walk func(f *models.Folder, depth int)
	walk = func(f *models.Folder, depth int) {
		cp := *f
		rows = append(rows, models.TreeRow{Kind: models.NodeKindFolder, Depth: depth, Folder: &cp})
		for _, d := range r.s.docs {
			if d.FolderID == f.ID && d.Status.IsActive() && d.DataRoomID == f.DataRoomID {
				dcp := *d
				rows = append(rows, models.TreeRow{Kind: models.NodeKindDocument, Depth: depth + 1, Document: &dcp})
			}
		}
		for _, c := range r.s.folders {
			if c.ParentFolderID != nil && *c.ParentFolderID == f.ID && c.Status.IsActive() && c.DataRoomID == f.DataRoomID {
				walk(c, depth+1)
			}
		}
	}
	walk(root, 0)
	return rows, nil
}

type fakeProjectRepo struct{ s *memStore }

func (r *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	now := r.s.tick()
	project.ID = uuid.NewString()
	project.CreatedAt, project.UpdatedAt = now, now
	r.s.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	p, ok := r.s.projects[id]
	if !ok || !p.Status.IsActive() {
		return nil, domain.NewNotFound("project", id)
	}
	cp := *p
	cp.DataRoomIDs = []string{}
	for k := range r.s.links {
		if k.a == id {
			cp.DataRoomIDs = append(cp.DataRoomIDs, k.b)
		}
	}
	cp.AccessibleUserProjectIDs = []string{}
	for k, m := range r.s.members {
		if k.a == id {
			cp.AccessibleUserProjectIDs = append(cp.AccessibleUserProjectIDs, m.ID)
		}
	}
	return &cp, nil
}

func (r *fakeProjectRepo) LinkDataRoom(ctx context.Context, projectID, dataRoomID string) error {
	k := pairKey{projectID, dataRoomID}
	if _, ok := r.s.links[k]; !ok {
		r.s.links[k] = r.s.tick()
	}
	return nil
}

func (r *fakeProjectRepo) UnlinkDataRoom(ctx context.Context, projectID, dataRoomID string) error {
	delete(r.s.links, pairKey{projectID, dataRoomID})
	return nil
}

func (r *fakeProjectRepo) AddUser(ctx context.Context, membership *models.UserProject) error {
	k := pairKey{membership.ProjectID, membership.UserID}
	now := r.s.tick()
	if existing, ok := r.s.members[k]; ok {
		existing.UserRole = membership.UserRole
		existing.Status = membership.Status
		existing.UpdatedAt = now
		*membership = *existing
		return nil
	}
	membership.ID = uuid.NewString()
	membership.CreatedAt, membership.UpdatedAt = now, now
	cp := *membership
	r.s.members[k] = &cp
	return nil
}

func (r *fakeProjectRepo) RemoveUser(ctx context.Context, projectID, userID string) error {
	delete(r.s.members, pairKey{projectID, userID})
	return nil
}

func (r *fakeProjectRepo) ListUsers(ctx context.Context, projectID string) ([]models.ProjectMember, error) {
	members := []models.ProjectMember{}
	for k, m := range r.s.members {
		if k.a != projectID || !m.Status.IsActive() {
			continue
		}
		u := r.s.users[k.b]
		members = append(members, models.ProjectMember{
			UserID:             k.b,
			AuthProviderUserID: u.AuthProviderUserID,
			UserRole:           m.UserRole,
			JoinedAt:           m.CreatedAt,
		})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].JoinedAt.Before(members[j].JoinedAt) })
	return members, nil
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range r.s.users {
		if u.AuthProviderUserID == user.AuthProviderUserID {
			return &domain.ConflictError{
				Message:      "user already exists",
				ResourceType: "user",
				ResourceID:   u.ID,
			}
		}
	}
	now := r.s.tick()
	user.ID = uuid.NewString()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok || !u.Status.IsActive() {
		return nil, domain.NewNotFound("user", id)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ListAccessibleProjects(ctx context.Context, userID string) ([]models.UserAccessibleProject, error) {
	result := []models.UserAccessibleProject{}
	for k, m := range r.s.members {
		if k.b != userID {
			continue
		}
		p, ok := r.s.projects[k.a]
		if !ok || !p.Status.IsActive() {
			continue
		}
		result = append(result, models.UserAccessibleProject{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Status:      p.Status,
			Role:        m.UserRole,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return result, nil
}

type fakeAnsaradaClient struct {
	rooms     []ansarada.DataRoom
	err       error
	gotToken  string
	gotFirst  int
	callCount int
}

func (c *fakeAnsaradaClient) ListDataRooms(ctx context.Context, accessToken string, first int) ([]ansarada.DataRoom, error) {
	c.callCount++
	c.gotToken = accessToken
	c.gotFirst = first
	if c.err != nil {
		return nil, c.err
	}
	if first < len(c.rooms) {
		return c.rooms[:first], nil
	}
	return c.rooms, nil
}

// fixture wires every service against one memStore
type fixture struct {
	store     *memStore
	tx        *fakeTxManager
	ansarada  *fakeAnsaradaClient
	dataRooms *dataRoomService
	tree      *documentTreeService
	projects  *projectService
	users     *userService
}

func newFixture() *fixture {
	store := newMemStore()
	tx := &fakeTxManager{store: store}
	roomRepo := &fakeDataRoomRepo{store}
	folderRepo := &fakeFolderRepo{store}
	docRepo := &fakeDocumentRepo{store}
	projectRepo := &fakeProjectRepo{store}
	userRepo := &fakeUserRepo{store}
	client := &fakeAnsaradaClient{}
	validator := NewResourceValidator(roomRepo, folderRepo, projectRepo, userRepo)
	logger := testLogger()

	return &fixture{
		store:     store,
		tx:        tx,
		ansarada:  client,
		dataRooms: NewDataRoomService(tx, roomRepo, folderRepo, client, 10, logger).(*dataRoomService),
		tree:      NewDocumentTreeService(&fakeTreeRepo{store}, folderRepo, docRepo, validator, logger).(*documentTreeService),
		projects:  NewProjectService(projectRepo, roomRepo, validator, logger).(*projectService),
		users:     NewUserService(userRepo, validator, logger).(*userService),
	}
}
