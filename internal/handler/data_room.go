package handler

import (
	"log/slog"
	"net/http"

	"auralis/internal/domain/services"
	"auralis/internal/httputil"
)

// DataRoomHandler handles data room HTTP requests
type DataRoomHandler struct {
	dataRoomService services.DataRoomService
	treeService     services.DocumentTreeService
	logger          *slog.Logger
}

// NewDataRoomHandler creates a new data room handler
func NewDataRoomHandler(dataRoomService services.DataRoomService, treeService services.DocumentTreeService, logger *slog.Logger) *DataRoomHandler {
	return &DataRoomHandler{
		dataRoomService: dataRoomService,
		treeService:     treeService,
		logger:          logger,
	}
}

// CreateDataRoom creates a data room together with its root folder
// POST /data-rooms
func (h *DataRoomHandler) CreateDataRoom(w http.ResponseWriter, r *http.Request) {
	var req services.CreateDataRoomRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := h.dataRoomService.CreateDataRoom(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, room)
}

// GetDataRoom retrieves an active data room
// GET /data-rooms/{id}
func (h *DataRoomHandler) GetDataRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	room, err := h.dataRoomService.GetDataRoom(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, room)
}

// GetDocumentTree returns the nested folder/document tree of a data room
// GET /data-rooms/{id}/tree
func (h *DataRoomHandler) GetDocumentTree(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	tree, err := h.treeService.GetDocumentTree(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}

// ListAnsaradaDataRooms proxies the caller's Ansarada data rooms
// GET /ansarada/data-rooms?access_token=...&first=...
func (h *DataRoomHandler) ListAnsaradaDataRooms(w http.ResponseWriter, r *http.Request) {
	first, err := httputil.QueryInt(r, "first")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	token := r.URL.Query().Get("access_token")

	rooms, err := h.dataRoomService.ListAnsaradaDataRooms(r.Context(), token, first)
	if err != nil {
		h.logger.Warn("ansarada proxy failed",
			"error", err,
			"request_id", httputil.GetRequestID(r.Context()),
		)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, rooms)
}
