package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/services"
)

const (
	roomID    = "3f2b8c1e-7d4a-4c55-9a0e-1b2c3d4e5f60"
	projectID = "0c7d1a5e-2b3f-4e6a-8d9c-0a1b2c3d4e5f"
	userID    = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

type stubDataRoomService struct {
	created  *services.CreateDataRoomRequest
	getErr   error
	proxyErr error
	token    string
	first    int
}

func (s *stubDataRoomService) CreateDataRoom(ctx context.Context, req *services.CreateDataRoomRequest) (*models.DataRoom, error) {
	s.created = req
	root := "root-1"
	return &models.DataRoom{ID: roomID, Name: req.Name, Source: models.DataRoomSource(req.Source), Status: models.StatusActive, RootFolderID: &root}, nil
}

func (s *stubDataRoomService) GetDataRoom(ctx context.Context, id string) (*models.DataRoom, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.DataRoom{ID: id, Name: "Room", Status: models.StatusActive}, nil
}

func (s *stubDataRoomService) ListAnsaradaDataRooms(ctx context.Context, accessToken string, first int) ([]models.DataRoom, error) {
	s.token, s.first = accessToken, first
	if s.proxyErr != nil {
		return nil, s.proxyErr
	}
	return []models.DataRoom{{ID: "ansarada_1", Name: "Remote", Source: models.DataRoomSourceAnsarada}}, nil
}

type stubTreeService struct {
	services.DocumentTreeService
	tree *models.DocumentTree
	err  error
}

func (s *stubTreeService) GetDocumentTree(ctx context.Context, dataRoomID string) (*models.DocumentTree, error) {
	return s.tree, s.err
}

type stubProjectService struct {
	services.ProjectService
	linked  []string
	added   string
	addErr  error
	removed string
}

func (s *stubProjectService) LinkDataRoom(ctx context.Context, projectID, dataRoomID string) error {
	s.linked = append(s.linked, projectID+"/"+dataRoomID)
	return nil
}

func (s *stubProjectService) AddUser(ctx context.Context, projectID, userID string, req *services.AddProjectUserRequest) (*models.UserProject, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.added = req.UserRole
	return &models.UserProject{ProjectID: projectID, UserID: userID, UserRole: models.UserRole(req.UserRole)}, nil
}

func (s *stubProjectService) RemoveUser(ctx context.Context, projectID, userID string) error {
	s.removed = userID
	return nil
}

type stubUserService struct {
	services.UserService
	existing *models.User
}

func (s *stubUserService) CreateUser(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	if s.existing != nil {
		return nil, &domain.ConflictError{Message: "user already exists", ResourceType: "user", ResourceID: s.existing.ID}
	}
	return &models.User{ID: userID, AuthProviderUserID: req.AuthProviderUserID}, nil
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if s.existing != nil && s.existing.ID == id {
		return s.existing, nil
	}
	return nil, domain.NewNotFound("user", id)
}

type testServer struct {
	mux      *http.ServeMux
	rooms    *stubDataRoomService
	tree     *stubTreeService
	projects *stubProjectService
	users    *stubUserService
}

func newTestServer() *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		mux:      http.NewServeMux(),
		rooms:    &stubDataRoomService{},
		tree:     &stubTreeService{},
		projects: &stubProjectService{},
		users:    &stubUserService{},
	}
	RegisterRoutes(ts.mux, &Handlers{
		DataRooms:    NewDataRoomHandler(ts.rooms, ts.tree, logger),
		DocumentTree: NewDocumentTreeHandler(ts.tree, logger),
		Projects:     NewProjectHandler(ts.projects, logger),
		Users:        NewUserHandler(ts.users, logger),
	})
	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	ts.mux.ServeHTTP(w, r)
	return w
}

func TestHealth(t *testing.T) {
	w := newTestServer().do(http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("health = %d %s", w.Code, w.Body.String())
	}
}

func TestCreateDataRoom(t *testing.T) {
	ts := newTestServer()
	w := ts.do(http.MethodPost, "/data-rooms", `{"name":"Deal","source":"original"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ts.rooms.created == nil || ts.rooms.created.Name != "Deal" {
		t.Errorf("service got %+v", ts.rooms.created)
	}

	var room models.DataRoom
	if err := json.Unmarshal(w.Body.Bytes(), &room); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if room.RootFolderID == nil || *room.RootFolderID != "root-1" {
		t.Errorf("room = %+v", room)
	}
}

func TestCreateDataRoom_BadBody(t *testing.T) {
	w := newTestServer().do(http.MethodPost, "/data-rooms", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetDataRoom(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		getErr     error
		wantStatus int
	}{
		{name: "found", id: roomID, wantStatus: http.StatusOK},
		{name: "not found", id: roomID, getErr: domain.NewNotFound("data room", roomID), wantStatus: http.StatusNotFound},
		{name: "malformed id", id: "room-1", wantStatus: http.StatusBadRequest},
		{name: "internal", id: roomID, getErr: io.ErrUnexpectedEOF, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			ts.rooms.getErr = tt.getErr

			w := ts.do(http.MethodGet, "/data-rooms/"+tt.id, "")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus >= 400 && w.Header().Get("Content-Type") != "application/problem+json" {
				t.Errorf("Content-Type = %q", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestGetDocumentTree(t *testing.T) {
	ts := newTestServer()
	root := &models.Folder{ID: "root", Name: "Root", Status: models.StatusActive}
	ts.tree.tree = &models.DocumentTree{
		Folder: root,
		Children: []*models.DocumentTree{
			{Document: &models.Document{ID: "d1", Name: "Term Sheet", FolderID: "root"}},
		},
	}

	w := ts.do(http.MethodGet, "/data-rooms/"+roomID+"/tree", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Type     string `json:"type"`
		Children []struct {
			Type string                 `json:"type"`
			Data map[string]interface{} `json:"data"`
		} `json:"children"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Type != "Folder" || len(body.Children) != 1 || body.Children[0].Type != "Document" {
		t.Errorf("tree = %s", w.Body.String())
	}
	if body.Children[0].Data["name"] != "Term Sheet" {
		t.Errorf("document data = %v", body.Children[0].Data)
	}

	ts.tree.tree, ts.tree.err = nil, domain.NewNotFound("document tree", roomID)
	if w := ts.do(http.MethodGet, "/data-rooms/"+roomID+"/tree", ""); w.Code != http.StatusNotFound {
		t.Errorf("absent tree status = %d, want 404", w.Code)
	}
}

func TestListAnsaradaDataRooms(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		proxyErr   error
		wantStatus int
	}{
		{name: "ok", query: "?access_token=tok&first=5", wantStatus: http.StatusOK},
		{name: "bad first", query: "?access_token=tok&first=abc", wantStatus: http.StatusBadRequest},
		{name: "validation", query: "?first=5", proxyErr: domain.NewValidation("access_token: cannot be blank"), wantStatus: http.StatusBadRequest},
		{name: "upstream", query: "?access_token=tok", proxyErr: &domain.UpstreamError{Service: "ansarada", Message: "status 500"}, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			ts.rooms.proxyErr = tt.proxyErr

			w := ts.do(http.MethodGet, "/ansarada/data-rooms"+tt.query, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.name == "ok" && (ts.rooms.token != "tok" || ts.rooms.first != 5) {
				t.Errorf("forwarded token/first = %q/%d", ts.rooms.token, ts.rooms.first)
			}
		})
	}
}

func TestProjectMembershipRoutes(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/projects/"+projectID+"/data-rooms/"+roomID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("link status = %d", w.Code)
	}
	if len(ts.projects.linked) != 1 || ts.projects.linked[0] != projectID+"/"+roomID {
		t.Errorf("linked = %v", ts.projects.linked)
	}

	w = ts.do(http.MethodPost, "/projects/"+projectID+"/users/"+userID, `{"user_role":"editor"}`)
	if w.Code != http.StatusNoContent || ts.projects.added != "editor" {
		t.Errorf("add user status = %d, role = %q", w.Code, ts.projects.added)
	}

	w = ts.do(http.MethodDelete, "/projects/"+projectID+"/users/"+userID, "")
	if w.Code != http.StatusNoContent || ts.projects.removed != userID {
		t.Errorf("remove user status = %d, removed = %q", w.Code, ts.projects.removed)
	}

	w = ts.do(http.MethodPost, "/projects/"+projectID+"/users/not-a-uuid", `{"user_role":"editor"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed user id status = %d, want 400", w.Code)
	}

	ts.projects.addErr = domain.NewValidation("user_role: must be a valid value")
	w = ts.do(http.MethodPost, "/projects/"+projectID+"/users/"+userID, `{"user_role":"owner"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad role status = %d, want 400", w.Code)
	}
}

func TestCreateUser_Conflict(t *testing.T) {
	ts := newTestServer()
	ts.users.existing = &models.User{ID: userID, AuthProviderUserID: "auth0|abc"}

	w := ts.do(http.MethodPost, "/users", `{"auth_provider_user_id":"auth0|abc"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var user models.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.ID != userID {
		t.Errorf("conflict body = %s, want existing user", w.Body.String())
	}
}
