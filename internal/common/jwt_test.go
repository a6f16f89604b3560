package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/config"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager(&config.Config{Auth: config.AuthConfig{
		AccessTokenSecret:  "access-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenSecret: "refresh-secret",
		RefreshTokenTTL:    24 * time.Hour,
		Issuer:             "utube",
	}})
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := newTestTokenManager()
	sub := TokenSubject{ID: primitive.NewObjectID(), Username: "alice", Email: "alice@example.com", FullName: "Alice"}

	pair, err := tm.GenerateTokenPair(sub)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := tm.ValidAccessToken(pair.AccessToken)
	require.NoError(t, err)
	id, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, sub.ID, id)
	assert.Equal(t, "alice", claims.Username)

	refresh, err := tm.ValidRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, sub.ID.Hex(), refresh.UserID)
	assert.Empty(t, refresh.Username)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := newTestTokenManager()
	pair, err := tm.GenerateTokenPair(TokenSubject{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	tests := []struct {
		name  string
		check func() error
	}{
		{
			name:  "refresh token used as access token",
			check: func() error { _, err := tm.ValidAccessToken(pair.RefreshToken); return err },
		},
		{
			name:  "access token used as refresh token",
			check: func() error { _, err := tm.ValidRefreshToken(pair.AccessToken); return err },
		},
		{
			name:  "garbage",
			check: func() error { _, err := tm.ValidAccessToken("not.a.token"); return err },
		},
		{
			name: "expired",
			check: func() error {
				later := newTestTokenManager()
				later.now = func() time.Time { return time.Now().Add(time.Hour) }
				_, err := later.ValidAccessToken(pair.AccessToken)
				return err
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.check())
		})
	}
}

func TestTokenManager_PairsAreDistinct(t *testing.T) {
	tm := newTestTokenManager()
	sub := TokenSubject{ID: primitive.NewObjectID()}

	first, err := tm.GenerateTokenPair(sub)
	require.NoError(t, err)
	second, err := tm.GenerateTokenPair(sub)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.NoError(t, CheckPassword("s3cret-pass", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}
