package handler

import (
	"log/slog"
	"net/http"

	"auralis/internal/domain/models"
	"auralis/internal/domain/services"
	"auralis/internal/httputil"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	userService services.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser registers a user. A known auth provider id answers 409 with the existing user.
// POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req services.CreateUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), &req)
	if err != nil {
		HandleCreateConflict(w, err, func(id string) (*models.User, error) {
			return h.userService.GetUser(r.Context(), id)
		})
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, user)
}

// GetUser retrieves a user
// GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

// ListAccessibleProjects lists the projects a user belongs to
// GET /users/{id}/projects
func (h *UserHandler) ListAccessibleProjects(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	projects, err := h.userService.ListAccessibleProjects(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}
