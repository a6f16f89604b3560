package tweet

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type Handler struct {
	tweetService TweetService
	logger       *logging.Logger
}

func NewHandler(tweetService TweetService, logger *logging.Logger) *Handler {
	return &Handler{tweetService: tweetService, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	r.Handle("", auth.Require(http.HandlerFunc(h.CreateTweet))).Methods(http.MethodPost)
	r.Handle("/user/{userId}", auth.Optional(http.HandlerFunc(h.ListUserTweets))).Methods(http.MethodGet)
	r.Handle("/{tweetId}", auth.Require(http.HandlerFunc(h.UpdateTweet))).Methods(http.MethodPatch)
	r.Handle("/{tweetId}", auth.Require(http.HandlerFunc(h.DeleteTweet))).Methods(http.MethodDelete)
}

func (h *Handler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var in TweetInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	ownerID, _ := common.IdentityFrom(r.Context())
	tweet, err := h.tweetService.CreateTweet(r.Context(), ownerID, in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, tweet, "Tweet created successfully")
}

func (h *Handler) ListUserTweets(w http.ResponseWriter, r *http.Request) {
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
	page, err := h.tweetService.ListUserTweets(r.Context(), ownerID, viewer, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Tweets fetched successfully")
}

func (h *Handler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := common.ParseID(mux.Vars(r)["tweetId"], "tweetId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	var in TweetInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	tweet, err := h.tweetService.UpdateTweet(r.Context(), tweetID, actor, in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *Handler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := common.ParseID(mux.Vars(r)["tweetId"], "tweetId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	if err := h.tweetService.DeleteTweet(r.Context(), tweetID, actor); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Tweet deleted successfully")
}
