package comment

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

// Handler serves /comments. Reads are keyed by video, mutations by comment.
type Handler struct {
	commentService CommentService
	logger         *logging.Logger
}

func NewHandler(commentService CommentService, logger *logging.Logger) *Handler {
	return &Handler{commentService: commentService, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	r.Handle("/{videoId}", auth.Optional(http.HandlerFunc(h.ListComments))).Methods(http.MethodGet)
	r.Handle("/{videoId}", auth.Require(http.HandlerFunc(h.AddComment))).Methods(http.MethodPost)
	r.Handle("/{commentId}", auth.Require(http.HandlerFunc(h.UpdateComment))).Methods(http.MethodPatch)
	r.Handle("/{commentId}", auth.Require(http.HandlerFunc(h.DeleteComment))).Methods(http.MethodDelete)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	videoID, err := common.ParseID(mux.Vars(r)["videoId"], "videoId")
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
	page, err := h.commentService.ListComments(r.Context(), videoID, viewer, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Comments fetched successfully")
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	videoID, err := common.ParseID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	var in CommentInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	comment, err := h.commentService.AddComment(r.Context(), videoID, actor, in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, comment, "Comment added successfully")
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := common.ParseID(mux.Vars(r)["commentId"], "commentId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	var in CommentInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	comment, err := h.commentService.UpdateComment(r.Context(), commentID, actor, in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, comment, "Comment updated successfully")
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := common.ParseID(mux.Vars(r)["commentId"], "commentId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	actor, _ := common.IdentityFrom(r.Context())
	if err := h.commentService.DeleteComment(r.Context(), commentID, actor); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Comment deleted successfully")
}
