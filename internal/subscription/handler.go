package subscription

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type Handler struct {
	subscriptionService SubscriptionService
	logger              *logging.Logger
}

func NewHandler(subscriptionService SubscriptionService, logger *logging.Logger) *Handler {
	return &Handler{subscriptionService: subscriptionService, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	r.Handle("/subscribers/{channelId}", auth.Optional(http.HandlerFunc(h.Subscribers))).Methods(http.MethodGet)
	r.Handle("/channels/{subscriberId}", auth.Optional(http.HandlerFunc(h.SubscribedChannels))).Methods(http.MethodGet)
	r.Handle("/{channelId}", auth.Require(http.HandlerFunc(h.ToggleSubscription))).Methods(http.MethodPost)
}

func (h *Handler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	channelID, err := common.ParseID(mux.Vars(r)["channelId"], "channelId")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	subscriberID, _ := common.IdentityFrom(r.Context())
	result, err := h.subscriptionService.ToggleSubscription(r.Context(), subscriberID, channelID)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	msg := "Unsubscribed successfully"
	if result.Active {
		msg = "Subscribed successfully"
	}
	common.WriteJSON(w, http.StatusOK, result, msg)
}

func (h *Handler) Subscribers(w http.ResponseWriter, r *http.Request) {
	h.listChannels(w, r, "channelId", h.subscriptionService.Subscribers, "Subscribers fetched successfully")
}

func (h *Handler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	h.listChannels(w, r, "subscriberId", h.subscriptionService.SubscribedChannels, "Subscribed channels fetched successfully")
}

type channelLister func(ctx context.Context, userID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.ChannelCard], error)

func (h *Handler) listChannels(w http.ResponseWriter, r *http.Request, param string, list channelLister, msg string) {
	userID, err := common.ParseID(mux.Vars(r)[param], param)
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
	page, err := list(r.Context(), userID, viewer, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, msg)
}
