package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/config"
)

const (
	accessSubject  = "access"
	refreshSubject = "refresh"
)

// Claims carried by both token kinds; profile fields are only set on access tokens.
type Claims struct {
	UserID   string `json:"_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	jwt.RegisteredClaims
}

// TokenSubject is the user data embedded in an access token.
type TokenSubject struct {
	ID       primitive.ObjectID
	Username string
	Email    string
	FullName string
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.Auth.AccessTokenSecret),
		refreshSecret: []byte(cfg.Auth.RefreshTokenSecret),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		issuer:        cfg.Auth.Issuer,
		now:           time.Now,
	}
}

func (tm *TokenManager) AccessTTL() time.Duration  { return tm.accessTTL }
func (tm *TokenManager) RefreshTTL() time.Duration { return tm.refreshTTL }

func (tm *TokenManager) GenerateTokenPair(sub TokenSubject) (TokenPair, error) {
	access, err := tm.sign(&Claims{
		UserID:   sub.ID.Hex(),
		Username: sub.Username,
		Email:    sub.Email,
		FullName: sub.FullName,
	}, accessSubject, tm.accessTTL, tm.accessSecret)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := tm.sign(&Claims{UserID: sub.ID.Hex()}, refreshSubject, tm.refreshTTL, tm.refreshSecret)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (tm *TokenManager) sign(claims *Claims, subject string, ttl time.Duration, secret []byte) (string, error) {
	now := tm.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    tm.issuer,
		Subject:   subject,
		// jti keeps two pairs issued within the same second distinct
		ID: primitive.NewObjectID().Hex(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidAccessToken returns the claims of a valid, unexpired access token.
func (tm *TokenManager) ValidAccessToken(tokenString string) (*Claims, error) {
	return tm.valid(tokenString, accessSubject, tm.accessSecret)
}

func (tm *TokenManager) ValidRefreshToken(tokenString string) (*Claims, error) {
	return tm.valid(tokenString, refreshSubject, tm.refreshSecret)
}

func (tm *TokenManager) valid(tokenString, subject string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(tm.now), jwt.WithIssuer(tm.issuer), jwt.WithSubject(subject))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// SubjectID parses the user id out of validated claims.
func (c *Claims) SubjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.UserID)
}
