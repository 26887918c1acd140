// Package httpserver serves the raw byte side of uploads: posting an image
// to a single-use upload url and downloading stored files.
package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"team-chat/errors"
	"team-chat/services"

	"github.com/gorilla/mux"
)

type FileHandler struct {
	log     *slog.Logger
	uploads services.IUploadService
}

func NewFileHandler(log *slog.Logger, uploads services.IUploadService) *FileHandler {
	return &FileHandler{log: log, uploads: uploads}
}

// Register mounts the upload and download routes onto the router.
func (h *FileHandler) Register(r *mux.Router) {
	r.HandleFunc("/upload/{token}", h.upload).Methods(http.MethodPost)
	r.HandleFunc("/files/{storageId}", h.download).Methods(http.MethodGet)
}

// NewRouter returns a router with every file route mounted.
func NewRouter(h *FileHandler) *mux.Router {
	r := mux.NewRouter()
	h.Register(r)
	return r
}

type uploadResponse struct {
	StorageID string `json:"storageId"`
}

func (h *FileHandler) upload(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	storageID, err := h.uploads.Store(r.Context(), token, r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		h.log.Warn("Upload rejected", "remote", r.RemoteAddr, "error", err)
		jsonError(w, statusOf(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(uploadResponse{StorageID: storageID}); err != nil {
		h.log.Error("Failed to encode upload response", "error", err)
	}
}

func (h *FileHandler) download(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.Open(r.Context(), mux.Vars(r)["storageId"])
	if err != nil {
		jsonError(w, statusOf(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	if _, err := w.Write(file.Data); err != nil {
		h.log.Debug("Download interrupted", "storage_id", file.StorageID, "error", err)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errors.ErrUploadTokenInvalid):
		return http.StatusForbidden
	case errors.Is(err, errors.ErrUnsupportedMedia), errors.Is(err, errors.ErrContentTypeMismatch):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, errors.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errors.ErrFileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
