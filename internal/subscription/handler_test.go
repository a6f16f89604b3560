package subscription

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type existsResolver struct{}

func (existsResolver) Exists(context.Context, primitive.ObjectID) (bool, error) { return true, nil }

func TestHandler_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockSubscriptionService(ctrl)
	tokens := common.NewTokenManager(&config.Config{Auth: config.AuthConfig{
		AccessTokenSecret:  "access",
		AccessTokenTTL:     time.Minute,
		RefreshTokenSecret: "refresh",
		RefreshTokenTTL:    time.Hour,
	}})
	logger := logging.NewNopLogger()
	router := mux.NewRouter()
	NewHandler(svc, logger).RegisterRoutes(router.PathPrefix("/subscriptions").Subrouter(),
		common.NewAuthenticator(tokens, existsResolver{}, logger))

	actor, channel := primitive.NewObjectID(), primitive.NewObjectID()
	pair, err := tokens.GenerateTokenPair(common.TokenSubject{ID: actor})
	require.NoError(t, err)

	t.Run("toggle", func(t *testing.T) {
		svc.EXPECT().ToggleSubscription(gomock.Any(), actor, channel).Return(common.NewToggleResult(true), nil)

		req := httptest.NewRequest(http.MethodPost, "/subscriptions/"+channel.Hex(), nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Subscribed successfully")
	})

	t.Run("toggle requires auth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/subscriptions/"+channel.Hex(), nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("subscribers anonymous", func(t *testing.T) {
		svc.EXPECT().Subscribers(gomock.Any(), channel, primitive.NilObjectID, views.DefaultPageRequest()).
			Return(views.NewPage[views.ChannelCard](nil, views.DefaultPageRequest(), 0), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/subscriptions/subscribers/"+channel.Hex(), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"items":[]`)
	})

	t.Run("channels with bad limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/subscriptions/channels/"+actor.Hex()+"?limit=-1", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
