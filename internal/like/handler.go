package like

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type Handler struct {
	likeService LikeService
	logger      *logging.Logger
}

func NewHandler(likeService LikeService, logger *logging.Logger) *Handler {
	return &Handler{likeService: likeService, logger: logger}
}

// RegisterRoutes mounts the like routes; every route requires a user.
func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	r.Handle("/toggle/v/{videoId}", auth.Require(h.toggle(dbmongo.LikeVideo, "videoId"))).Methods(http.MethodPost)
	r.Handle("/toggle/c/{commentId}", auth.Require(h.toggle(dbmongo.LikeComment, "commentId"))).Methods(http.MethodPost)
	r.Handle("/toggle/t/{tweetId}", auth.Require(h.toggle(dbmongo.LikeTweet, "tweetId"))).Methods(http.MethodPost)
	r.Handle("/videos", auth.Require(http.HandlerFunc(h.LikedVideos))).Methods(http.MethodGet)
}

func (h *Handler) toggle(kind dbmongo.LikeKind, param string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		targetID, err := common.ParseID(mux.Vars(r)[param], param)
		if err != nil {
			common.WriteError(w, h.logger, err)
			return
		}

		actor, _ := common.IdentityFrom(r.Context())
		result, err := h.likeService.ToggleLike(r.Context(), actor, dbmongo.LikeTarget{Kind: kind, ID: targetID})
		if err != nil {
			common.WriteError(w, h.logger, err)
			return
		}

		msg := "Like removed successfully"
		if result.Active {
			msg = "Like added successfully"
		}
		common.WriteJSON(w, http.StatusOK, result, msg)
	})
}

func (h *Handler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	req, err := views.ParsePageRequest(r.URL.Query())
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	viewer, _ := common.IdentityFrom(r.Context())
	page, err := h.likeService.LikedVideos(r.Context(), viewer, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Liked videos fetched successfully")
}
