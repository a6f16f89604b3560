package comment

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

func newTestRouter(t *testing.T) (*mux.Router, *MockCommentService, *common.TokenManager) {
	ctrl := gomock.NewController(t)
	tokens := common.NewTokenManager(&config.Config{Auth: config.AuthConfig{
		AccessTokenSecret:  "access",
		AccessTokenTTL:     time.Minute,
		RefreshTokenSecret: "refresh",
		RefreshTokenTTL:    time.Hour,
	}})
	svc := NewMockCommentService(ctrl)
	logger := logging.NewNopLogger()

	router := mux.NewRouter()
	NewHandler(svc, logger).RegisterRoutes(router.PathPrefix("/comments").Subrouter(),
		common.NewAuthenticator(tokens, existsResolver{}, logger))
	return router, svc, tokens
}

func bearer(t *testing.T, tokens *common.TokenManager, userID primitive.ObjectID) string {
	t.Helper()
	pair, err := tokens.GenerateTokenPair(common.TokenSubject{ID: userID})
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func TestHandler_ListComments(t *testing.T) {
	router, svc, _ := newTestRouter(t)
	videoID := primitive.NewObjectID()

	svc.EXPECT().ListComments(gomock.Any(), videoID, primitive.NilObjectID, views.PageRequest{Page: 2, Limit: 5}).
		Return(views.NewPage([]views.CommentView{{Content: "hi"}}, views.PageRequest{Page: 2, Limit: 5}, 6), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comments/"+videoID.Hex()+"?page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPages":2`)
	assert.Contains(t, rec.Body.String(), `"hasNextPage":false`)
}

func TestHandler_RoutesByMethod(t *testing.T) {
	router, svc, tokens := newTestRouter(t)
	actor, id := primitive.NewObjectID(), primitive.NewObjectID()

	tests := []struct {
		name       string
		method     string
		body       string
		setup      func()
		wantStatus int
	}{
		{
			name:   "post adds to video",
			method: http.MethodPost,
			body:   `{"content":"nice"}`,
			setup: func() {
				svc.EXPECT().AddComment(gomock.Any(), id, actor, CommentInput{Content: "nice"}).
					Return(&dbmongo.Comment{ID: primitive.NewObjectID(), Content: "nice"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "patch edits comment",
			method: http.MethodPatch,
			body:   `{"content":"edited"}`,
			setup: func() {
				svc.EXPECT().UpdateComment(gomock.Any(), id, actor, CommentInput{Content: "edited"}).
					Return(&dbmongo.Comment{ID: id, Content: "edited"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete by non author",
			method: http.MethodDelete,
			setup: func() {
				svc.EXPECT().DeleteComment(gomock.Any(), id, actor).Return(common.PermissionDenied("you are not allowed to delete this comment"))
			},
			wantStatus: http.StatusForbidden,
		},
		{name: "malformed body", method: http.MethodPost, body: `{"content":`, setup: func() {}, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			req := httptest.NewRequest(tc.method, "/comments/"+id.Hex(), strings.NewReader(tc.body))
			req.Header.Set("Authorization", bearer(t, tokens, actor))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
