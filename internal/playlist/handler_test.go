package playlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type existsResolver struct{}

func (existsResolver) Exists(context.Context, primitive.ObjectID) (bool, error) { return true, nil }

func TestHandler_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockPlaylistService(ctrl)
	tokens := common.NewTokenManager(&config.Config{Auth: config.AuthConfig{
		AccessTokenSecret:  "access",
		AccessTokenTTL:     time.Minute,
		RefreshTokenSecret: "refresh",
		RefreshTokenTTL:    time.Hour,
	}})
	logger := logging.NewNopLogger()
	router := mux.NewRouter()
	NewHandler(svc, logger).RegisterRoutes(router.PathPrefix("/playlists").Subrouter(),
		common.NewAuthenticator(tokens, existsResolver{}, logger))

	owner := primitive.NewObjectID()
	pair, err := tokens.GenerateTokenPair(common.TokenSubject{ID: owner})
	require.NoError(t, err)
	playlistID, videoID := primitive.NewObjectID(), primitive.NewObjectID()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		auth       bool
		setup      func()
		wantStatus int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/playlists",
			body:   `{"name":"Go talks","description":"conference picks"}`,
			auth:   true,
			setup: func() {
				svc.EXPECT().CreatePlaylist(gomock.Any(), owner, CreateInput{Name: "Go talks", Description: "conference picks"}).
					Return(&dbmongo.Playlist{ID: playlistID, Name: "Go talks"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "detail is public",
			method: http.MethodGet,
			path:   "/playlists/" + playlistID.Hex(),
			setup: func() {
				svc.EXPECT().GetPlaylist(gomock.Any(), playlistID, primitive.NilObjectID).
					Return(&views.PlaylistDetail{ID: playlistID, TotalVideos: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "user playlists",
			method: http.MethodGet,
			path:   "/playlists/user/" + owner.Hex(),
			setup: func() {
				svc.EXPECT().ListUserPlaylists(gomock.Any(), owner, primitive.NilObjectID, views.DefaultPageRequest()).
					Return(views.NewPage[views.PlaylistSummary](nil, views.DefaultPageRequest(), 0), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "add video",
			method: http.MethodPatch,
			path:   "/playlists/" + playlistID.Hex() + "/add/" + videoID.Hex(),
			auth:   true,
			setup: func() {
				svc.EXPECT().AddVideo(gomock.Any(), playlistID, videoID, owner).
					Return(&dbmongo.Playlist{ID: playlistID, Videos: []primitive.ObjectID{videoID}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "remove video from someone else's playlist",
			method: http.MethodPatch,
			path:   "/playlists/" + playlistID.Hex() + "/remove/" + videoID.Hex(),
			auth:   true,
			setup: func() {
				svc.EXPECT().RemoveVideo(gomock.Any(), playlistID, videoID, owner).
					Return(nil, common.PermissionDenied("you are not allowed to change this playlist"))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "add with bad video id",
			method:     http.MethodPatch,
			path:       "/playlists/" + playlistID.Hex() + "/add/nope",
			auth:       true,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "delete requires auth",
			method:     http.MethodDelete,
			path:       "/playlists/" + playlistID.Hex(),
			setup:      func() {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.auth {
				req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
