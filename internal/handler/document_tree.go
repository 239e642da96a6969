package handler

import (
	"log/slog"
	"net/http"

	"auralis/internal/domain/services"
	"auralis/internal/httputil"
)

// DocumentTreeHandler handles folder and document HTTP requests
type DocumentTreeHandler struct {
	treeService services.DocumentTreeService
	logger      *slog.Logger
}

// NewDocumentTreeHandler creates a new folder/document handler
func NewDocumentTreeHandler(treeService services.DocumentTreeService, logger *slog.Logger) *DocumentTreeHandler {
	return &DocumentTreeHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// CreateFolder creates a folder under an existing folder
// POST /folders
func (h *DocumentTreeHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.treeService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// GetFolder retrieves an active folder
// GET /folders/{id}
func (h *DocumentTreeHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	folder, err := h.treeService.GetFolder(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// CreateDocument creates a document in a folder
// POST /documents
func (h *DocumentTreeHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req services.CreateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := h.treeService.CreateDocument(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// GetDocument retrieves an active document
// GET /documents/{id}
func (h *DocumentTreeHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	doc, err := h.treeService.GetDocument(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
