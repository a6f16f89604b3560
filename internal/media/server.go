package media

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/logging"
)

// Downloader is implemented by dbmongo.MediaStorage.
type Downloader interface {
	Download(ctx context.Context, fileID string) (io.ReadCloser, *common.MediaFile, string, error)
}

// HTTPServer streams GridFS files at /media/{fileId}.
type HTTPServer struct {
	storage Downloader
	logger  *logging.Logger
}

func NewHTTPServer(storage Downloader, logger *logging.Logger) *HTTPServer {
	return &HTTPServer{storage: storage, logger: logger}
}

// RegisterRoutes mounts the file route on r.
func (s *HTTPServer) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/media/{fileId}", s.serveFile).Methods(http.MethodGet, http.MethodHead)
}

// Handler is the standalone router used by cmd/media-server.
func (s *HTTPServer) Handler() http.Handler {
	router := mux.NewRouter()
	s.RegisterRoutes(router)
	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	return router
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, mediaFile, mimeType, err := s.storage.Download(r.Context(), fileID)
	if err != nil {
		common.WriteError(w, s.logger, common.NotFound("file not found"))
		return
	}
	defer reader.Close()

	if mimeType == "" {
		mimeType = common.ContentTypeFor(mediaFile.Filename)
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", mediaFile.Size))
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.WarnWithErr("error streaming file "+fileID, err)
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, "Media server is healthy")
}
