package handler

import (
	"net/http"

	"auralis/internal/httputil"
)

// Handlers groups every HTTP handler the server mounts
type Handlers struct {
	DataRooms    *DataRoomHandler
	DocumentTree *DocumentTreeHandler
	Projects     *ProjectHandler
	Users        *UserHandler
}

// RegisterRoutes mounts all routes on mux using method-aware patterns
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET /health", Health)

	mux.HandleFunc("POST /data-rooms", h.DataRooms.CreateDataRoom)
	mux.HandleFunc("GET /data-rooms/{id}", h.DataRooms.GetDataRoom)
	mux.HandleFunc("GET /data-rooms/{id}/tree", h.DataRooms.GetDocumentTree)
	mux.HandleFunc("GET /ansarada/data-rooms", h.DataRooms.ListAnsaradaDataRooms)

	mux.HandleFunc("POST /folders", h.DocumentTree.CreateFolder)
	mux.HandleFunc("GET /folders/{id}", h.DocumentTree.GetFolder)
	mux.HandleFunc("POST /documents", h.DocumentTree.CreateDocument)
	mux.HandleFunc("GET /documents/{id}", h.DocumentTree.GetDocument)

	mux.HandleFunc("POST /projects", h.Projects.CreateProject)
	mux.HandleFunc("GET /projects/{id}", h.Projects.GetProject)
	mux.HandleFunc("GET /projects/{id}/data-rooms", h.Projects.ListDataRooms)
	mux.HandleFunc("POST /projects/{id}/data-rooms/{room_id}", h.Projects.LinkDataRoom)
	mux.HandleFunc("DELETE /projects/{id}/data-rooms/{room_id}", h.Projects.UnlinkDataRoom)
	mux.HandleFunc("GET /projects/{id}/users", h.Projects.ListUsers)
	mux.HandleFunc("POST /projects/{id}/users/{user_id}", h.Projects.AddUser)
	mux.HandleFunc("DELETE /projects/{id}/users/{user_id}", h.Projects.RemoveUser)

	mux.HandleFunc("POST /users", h.Users.CreateUser)
	mux.HandleFunc("GET /users/{id}", h.Users.GetUser)
	mux.HandleFunc("GET /users/{id}/projects", h.Users.ListAccessibleProjects)
}

// Health answers liveness probes
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
