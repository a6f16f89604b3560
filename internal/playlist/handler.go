package playlist

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type Handler struct {
	playlistService PlaylistService
	logger          *logging.Logger
}

func NewHandler(playlistService PlaylistService, logger *logging.Logger) *Handler {
	return &Handler{playlistService: playlistService, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	r.Handle("", auth.Require(http.HandlerFunc(h.CreatePlaylist))).Methods(http.MethodPost)
	r.Handle("/user/{userId}", auth.Optional(http.HandlerFunc(h.ListUserPlaylists))).Methods(http.MethodGet)
	r.Handle("/{playlistId}", auth.Optional(http.HandlerFunc(h.GetPlaylist))).Methods(http.MethodGet)
	r.Handle("/{playlistId}", auth.Require(http.HandlerFunc(h.UpdatePlaylist))).Methods(http.MethodPatch)
	r.Handle("/{playlistId}", auth.Require(http.HandlerFunc(h.DeletePlaylist))).Methods(http.MethodDelete)
	r.Handle("/{playlistId}/add/{videoId}", auth.Require(h.membership(h.playlistService.AddVideo, "Video added to playlist"))).Methods(http.MethodPatch)
	r.Handle("/{playlistId}/remove/{videoId}", auth.Require(h.membership(h.playlistService.RemoveVideo, "Video removed from playlist"))).Methods(http.MethodPatch)
}

func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	ownerID, _ := common.IdentityFrom(r.Context())
	playlist, err := h.playlistService.CreatePlaylist(r.Context(), ownerID, in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *Handler) ListUserPlaylists(w http.ResponseWriter, r *http.Request) {
	ownerID, err := common.ParseID(mux.Vars(r)["userId"], "userId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	req, err := views.ParsePageRequest(r.URL.Query())
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	viewer, _ := common.IdentityFrom(r.Context())
	page, err := h.playlistService.ListUserPlaylists(r.Context(), ownerID, viewer, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Playlists fetched successfully")
}

func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, err := common.ParseID(mux.Vars(r)["playlistId"], "playlistId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	viewer, _ := common.IdentityFrom(r.Context())
	playlist, err := h.playlistService.GetPlaylist(r.Context(), playlistID, viewer)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *Handler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, err := common.ParseID(mux.Vars(r)["playlistId"], "playlistId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	var in UpdateInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	playlist, err := h.playlistService.UpdatePlaylist(r.Context(), playlistID, actor, in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, err := common.ParseID(mux.Vars(r)["playlistId"], "playlistId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	if err := h.playlistService.DeletePlaylist(r.Context(), playlistID, actor); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Playlist deleted successfully")
}

type membershipFunc func(ctx context.Context, playlistID, videoID, actor primitive.ObjectID) (*dbmongo.Playlist, error)

func (h *Handler) membership(change membershipFunc, msg string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		playlistID, err := common.ParseID(vars["playlistId"], "playlistId")
		if err != nil {
			common.WriteError(w, h.logger, err)
			return
		}
		videoID, err := common.ParseID(vars["videoId"], "videoId")
		if err != nil {
			common.WriteError(w, h.logger, err)
			return
		}

		actor, _ := common.IdentityFrom(r.Context())
		playlist, err := change(r.Context(), playlistID, videoID, actor)
		if err != nil {
			common.WriteError(w, h.logger, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, playlist, msg)
	})
}
