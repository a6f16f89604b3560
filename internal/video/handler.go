package video

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

// Handler serves /videos.
type Handler struct {
	videoService VideoService
	logger       *logging.Logger
	maxUpload    int64
}

func NewHandler(videoService VideoService, cfg *config.Config, logger *logging.Logger) *Handler {
	return &Handler{videoService: videoService, logger: logger, maxUpload: cfg.Media.MaxUploadSize}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	r.Handle("", auth.Optional(http.HandlerFunc(h.ListVideos))).Methods(http.MethodGet)
	r.Handle("", auth.Require(http.HandlerFunc(h.PublishVideo))).Methods(http.MethodPost)
	r.Handle("/{videoId}", auth.Optional(http.HandlerFunc(h.GetVideo))).Methods(http.MethodGet)
	r.Handle("/{videoId}", auth.Require(http.HandlerFunc(h.UpdateVideo))).Methods(http.MethodPatch)
	r.Handle("/{videoId}", auth.Require(http.HandlerFunc(h.DeleteVideo))).Methods(http.MethodDelete)
	r.Handle("/{videoId}/toggle-publish", auth.Require(http.HandlerFunc(h.TogglePublish))).Methods(http.MethodPatch)
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q, err := views.ParseVideoQuery(r.URL.Query())
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	page, err := h.videoService.ListVideos(r.Context(), q)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Videos fetched successfully")
}

func (h *Handler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	if err := common.ParseMultipart(w, r, h.maxUpload); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	duration := 0.0
	if raw := common.FormValue(r, "duration"); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			common.WriteError(w, h.logger, common.InvalidArgument("duration must be a number of seconds"))
			return
		}
		duration = d
	}

	videoFile, err := common.FormFile(r, "videoFile")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	thumbnail, err := common.FormFile(r, "thumbnail")
	if err != nil {
		videoFile.Close()
		common.WriteError(w, h.logger, err)
		return
	}

	ownerID, _ := common.IdentityFrom(r.Context())
	video, err := h.videoService.PublishVideo(r.Context(), ownerID, PublishInput{
		Title:       common.FormValue(r, "title"),
		Description: common.FormValue(r, "description"),
		Duration:    duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, video, "Video published successfully")
}

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := common.ParseID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	viewer, _ := common.IdentityFrom(r.Context())
	video, err := h.videoService.GetVideo(r.Context(), videoID, viewer)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video fetched successfully")
}

// UpdateVideo accepts multipart (with an optional thumbnail) or JSON.
func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := common.ParseID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	var in UpdateInput
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := common.ParseMultipart(w, r, h.maxUpload); err != nil {
			common.WriteError(w, h.logger, err)
			return
		}
		thumbnail, err := common.FormFile(r, "thumbnail")
		if err != nil {
			common.WriteError(w, h.logger, err)
			return
		}
		in = UpdateInput{
			Title:       common.FormValue(r, "title"),
			Description: common.FormValue(r, "description"),
			Thumbnail:   thumbnail,
		}
	} else if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	video, err := h.videoService.UpdateVideo(r.Context(), videoID, actor, in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video updated successfully")
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := common.ParseID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	if err := h.videoService.DeleteVideo(r.Context(), videoID, actor); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Video deleted successfully")
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	videoID, err := common.ParseID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	video, err := h.videoService.TogglePublish(r.Context(), videoID, actor)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Publish status toggled successfully")
}
