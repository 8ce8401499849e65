package http

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/response"
	"github.com/workaxis/hrms-backend-go/internal/pkg/storage"
)

// FileHandler serves stored documents under the storage base URL.
type FileHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
}

type fileHandlerImpl struct {
	fileStorage storage.FileStorage
}

func NewFileHandler(fileStorage storage.FileStorage) FileHandler {
	return &fileHandlerImpl{fileStorage: fileStorage}
}

func (h *fileHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")

	file, err := h.fileStorage.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, storage.ErrInvalidPath) {
			response.NotFound(w, "File not found")
			return
		}
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read stored file", "key", key, "error", err)
		response.InternalServerError(w, "Failed to read file")
		return
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	response.File(w, path.Base(key), contentType, content)
}
