package common

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/logging"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

type ctxKey int

const identityKey ctxKey = iota

// WithIdentity attaches the acting user id to ctx.
func WithIdentity(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, identityKey, userID)
}

// IdentityFrom returns the acting user id, or NilObjectID for anonymous requests.
func IdentityFrom(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(identityKey).(primitive.ObjectID)
	if !ok || id.IsZero() {
		return primitive.NilObjectID, false
	}
	return id, true
}

// IdentityResolver confirms that a token's user still exists.
type IdentityResolver interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type Authenticator struct {
	tokens *TokenManager
	users  IdentityResolver
	logger *logging.Logger
}

func NewAuthenticator(tokens *TokenManager, users IdentityResolver, logger *logging.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, users: users, logger: logger}
}

// Require rejects requests without a valid access token.
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.authenticate(r)
		if err != nil {
			WriteError(w, a.logger, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), userID)))
	})
}

// Optional resolves the identity when a valid token is present and
// otherwise serves the request anonymously.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ExtractToken(r) == "" {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := a.authenticate(r)
		if err != nil {
			a.logger.Debugf("ignoring credentials on public route %s: %v", r.URL.Path, err)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), userID)))
	})
}

func (a *Authenticator) authenticate(r *http.Request) (primitive.ObjectID, error) {
	tokenString := ExtractToken(r)
	if tokenString == "" {
		return primitive.NilObjectID, Unauthorized("unauthorized request")
	}

	claims, err := a.tokens.ValidAccessToken(tokenString)
	if err != nil {
		return primitive.NilObjectID, Unauthorized("invalid or expired access token")
	}

	userID, err := claims.SubjectID()
	if err != nil {
		return primitive.NilObjectID, Unauthorized("invalid access token")
	}

	exists, err := a.users.Exists(r.Context(), userID)
	if err != nil {
		return primitive.NilObjectID, Internal("failed to resolve user", err)
	}
	if !exists {
		return primitive.NilObjectID, Unauthorized("invalid access token")
	}
	return userID, nil
}

// ExtractToken reads the access token from the cookie or the Authorization header.
func ExtractToken(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
