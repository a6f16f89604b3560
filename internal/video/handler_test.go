package video

import (
	"context"
	"encoding/json"
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

func (existsResolver) Exists(context.Context, primitive.ObjectID) (bool, error) {
	return true, nil
}

func newTestRouter(t *testing.T) (*mux.Router, *MockVideoService, *common.TokenManager) {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{Auth: config.AuthConfig{
		AccessTokenSecret:  "access",
		AccessTokenTTL:     time.Minute,
		RefreshTokenSecret: "refresh",
		RefreshTokenTTL:    time.Hour,
		Issuer:             "utube-test",
	}}
	svc := NewMockVideoService(ctrl)
	tokens := common.NewTokenManager(cfg)
	logger := logging.NewNopLogger()

	router := mux.NewRouter()
	NewHandler(svc, cfg, logger).RegisterRoutes(router.PathPrefix("/videos").Subrouter(),
		common.NewAuthenticator(tokens, existsResolver{}, logger))
	return router, svc, tokens
}

func bearer(t *testing.T, tokens *common.TokenManager, userID primitive.ObjectID) string {
	t.Helper()
	pair, err := tokens.GenerateTokenPair(common.TokenSubject{ID: userID})
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func TestHandler_ListVideos(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	tests := []struct {
		name       string
		query      string
		setup      func()
		wantStatus int
	}{
		{
			name:  "defaults",
			query: "",
			setup: func() {
				svc.EXPECT().ListVideos(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, q views.VideoQuery) (*views.Page[views.VideoCard], error) {
						assert.Equal(t, views.DefaultPageRequest(), q.PageRequest)
						return views.NewPage([]views.VideoCard{{Title: "a"}}, q.PageRequest, 1), nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{name: "bad sort", query: "?sortBy=password", setup: func() {}, wantStatus: http.StatusBadRequest},
		{name: "bad page", query: "?page=0", setup: func() {}, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos"+tc.query, nil))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandler_ListVideos_PageEnvelope(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	req := views.PageRequest{Page: 2, Limit: 2}
	svc.EXPECT().ListVideos(gomock.Any(), gomock.Any()).Return(
		views.NewPage([]views.VideoCard{{Title: "c"}, {Title: "d"}}, req, 5), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos?page=2&limit=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data views.Page[views.VideoCard] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.Items, 2)
	assert.Equal(t, int64(3), body.Data.TotalPages)
	assert.True(t, body.Data.HasNextPage)
	assert.True(t, body.Data.HasPrevPage)
}

func TestHandler_GetVideo(t *testing.T) {
	router, svc, tokens := newTestRouter(t)
	videoID, viewer := primitive.NewObjectID(), primitive.NewObjectID()

	svc.EXPECT().GetVideo(gomock.Any(), videoID, viewer).Return(&views.VideoDetail{ID: videoID, IsLiked: true, LikesCount: 1}, nil)
	req := httptest.NewRequest(http.MethodGet, "/videos/"+videoID.Hex(), nil)
	req.Header.Set("Authorization", bearer(t, tokens, viewer))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isLiked":true`)
	assert.Contains(t, rec.Body.String(), `"likesCount":1`)

	// garbage token is served anonymously
	svc.EXPECT().GetVideo(gomock.Any(), videoID, primitive.NilObjectID).Return(&views.VideoDetail{ID: videoID}, nil)
	req = httptest.NewRequest(http.MethodGet, "/videos/"+videoID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/not-an-id", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpdateVideo_JSON(t *testing.T) {
	router, svc, tokens := newTestRouter(t)
	videoID, actor := primitive.NewObjectID(), primitive.NewObjectID()

	svc.EXPECT().UpdateVideo(gomock.Any(), videoID, actor, UpdateInput{Title: "new", Description: "desc"}).
		Return(nil, common.PermissionDenied("you are not allowed to update this video"))

	req := httptest.NewRequest(http.MethodPatch, "/videos/"+videoID.Hex(), strings.NewReader(`{"title":"new","description":"desc"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, actor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_TogglePublish(t *testing.T) {
	router, svc, tokens := newTestRouter(t)
	videoID, actor := primitive.NewObjectID(), primitive.NewObjectID()

	svc.EXPECT().TogglePublish(gomock.Any(), videoID, actor).Return(&dbmongo.Video{ID: videoID, IsPublished: false}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/videos/"+videoID.Hex()+"/toggle-publish", nil)
	req.Header.Set("Authorization", bearer(t, tokens, actor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isPublished":false`)
}

func TestHandler_DeleteVideo_RequiresAuth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/videos/"+primitive.NewObjectID().Hex(), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
