package handler

import (
	"log/slog"
	"net/http"

	"auralis/internal/domain/services"
	"auralis/internal/httputil"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// CreateProject creates a new project
// POST /projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req services.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}

// GetProject retrieves a project
// GET /projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// ListDataRooms lists the data rooms linked to a project
// GET /projects/{id}/data-rooms
func (h *ProjectHandler) ListDataRooms(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rooms, err := h.projectService.ListDataRooms(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, rooms)
}

// LinkDataRoom links a data room to a project
// POST /projects/{id}/data-rooms/{room_id}
func (h *ProjectHandler) LinkDataRoom(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	roomID, ok := pathUUID(w, r, "room_id")
	if !ok {
		return
	}

	if err := h.projectService.LinkDataRoom(r.Context(), projectID, roomID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// UnlinkDataRoom removes a data room from a project
// DELETE /projects/{id}/data-rooms/{room_id}
func (h *ProjectHandler) UnlinkDataRoom(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	roomID, ok := pathUUID(w, r, "room_id")
	if !ok {
		return
	}

	if err := h.projectService.UnlinkDataRoom(r.Context(), projectID, roomID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// ListUsers lists the members of a project
// GET /projects/{id}/users
func (h *ProjectHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	members, err := h.projectService.ListUsers(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, members)
}

// AddUser grants a user a role on a project
// POST /projects/{id}/users/{user_id}
func (h *ProjectHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	var req services.AddProjectUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.projectService.AddUser(r.Context(), projectID, userID, &req); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// RemoveUser revokes a user's membership
// DELETE /projects/{id}/users/{user_id}
func (h *ProjectHandler) RemoveUser(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	if err := h.projectService.RemoveUser(r.Context(), projectID, userID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
