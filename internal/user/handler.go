package user

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
)

type imageUpdater func(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error)

// Handler serves /users.
type Handler struct {
	userService  UserService
	logger       *logging.Logger
	maxUpload    int64
	cookieSecure bool
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

func NewHandler(userService UserService, cfg *config.Config, logger *logging.Logger) *Handler {
	return &Handler{
		userService:  userService,
		logger:       logger,
		maxUpload:    cfg.Media.MaxUploadSize,
		cookieSecure: cfg.Auth.CookieSecure,
		accessTTL:    cfg.Auth.AccessTokenTTL,
		refreshTTL:   cfg.Auth.RefreshTokenTTL,
	}
}

// RegisterRoutes mounts the user routes on r. limit wraps the credential
// endpoints.
func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator, limit mux.MiddlewareFunc) {
	r.Handle("/register", limit(http.HandlerFunc(h.Register))).Methods(http.MethodPost)
	r.Handle("/login", limit(http.HandlerFunc(h.Login))).Methods(http.MethodPost)
	r.Handle("/refresh-token", limit(http.HandlerFunc(h.RefreshToken))).Methods(http.MethodPost)
	r.Handle("/c/{username}", auth.Optional(http.HandlerFunc(h.ChannelProfile))).Methods(http.MethodGet)

	r.Handle("/logout", auth.Require(http.HandlerFunc(h.Logout))).Methods(http.MethodPost)
	r.Handle("/change-password", auth.Require(http.HandlerFunc(h.ChangePassword))).Methods(http.MethodPost)
	r.Handle("/current-user", auth.Require(http.HandlerFunc(h.CurrentUser))).Methods(http.MethodGet)
	r.Handle("/update-account", auth.Require(http.HandlerFunc(h.UpdateAccount))).Methods(http.MethodPatch)
	r.Handle("/avatar", auth.Require(http.HandlerFunc(h.UpdateAvatar))).Methods(http.MethodPatch)
	r.Handle("/cover-image", auth.Require(http.HandlerFunc(h.UpdateCoverImage))).Methods(http.MethodPatch)
	r.Handle("/history", auth.Require(http.HandlerFunc(h.WatchHistory))).Methods(http.MethodGet)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := common.ParseMultipart(w, r, h.maxUpload); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	avatar, err := common.FormFile(r, "avatar")
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	coverImage, err := common.FormFile(r, "coverImage")
	if err != nil {
		avatar.Close()
		common.WriteError(w, h.logger, err)
		return
	}

	user, err := h.userService.Register(r.Context(), RegisterInput{
		FullName:   common.FormValue(r, "fullName"),
		Email:      common.FormValue(r, "email"),
		Username:   common.FormValue(r, "username"),
		Password:   r.FormValue("password"),
		Avatar:     avatar,
		CoverImage: coverImage,
	})
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, user, "User registered successfully")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	session, err := h.userService.Login(r.Context(), in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	h.setSessionCookies(w, session.TokenPair)
	common.WriteJSON(w, http.StatusOK, session, "User logged in successfully")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.IdentityFrom(r.Context())
	if err := h.userService.Logout(r.Context(), userID); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	h.clearSessionCookies(w)
	common.WriteJSON(w, http.StatusOK, struct{}{}, "User logged out")
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token := ""
	if c, err := r.Cookie(common.RefreshTokenCookie); err == nil {
		token = c.Value
	}
	if token == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := common.DecodeJSON(r, &body); err != nil {
			common.WriteError(w, h.logger, err)
			return
		}
		token = body.RefreshToken
	}

	session, err := h.userService.RefreshSession(r.Context(), token)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	h.setSessionCookies(w, session.TokenPair)
	common.WriteJSON(w, http.StatusOK, session.TokenPair, "Access token refreshed")
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in ChangePasswordInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	userID, _ := common.IdentityFrom(r.Context())
	if err := h.userService.ChangePassword(r.Context(), userID, in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Password changed successfully")
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.IdentityFrom(r.Context())
	user, err := h.userService.CurrentUser(r.Context(), userID)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, "Current user fetched successfully")
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var in UpdateAccountInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	userID, _ := common.IdentityFrom(r.Context())
	user, err := h.userService.UpdateAccount(r.Context(), userID, in)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, "Account details updated successfully")
}

func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "avatar", h.userService.UpdateAvatar, "Avatar updated successfully")
}

func (h *Handler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "coverImage", h.userService.UpdateCoverImage, "Cover image updated successfully")
}

func (h *Handler) updateImage(w http.ResponseWriter, r *http.Request, field string, update imageUpdater, message string) {
	if err := common.ParseMultipart(w, r, h.maxUpload); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	file, err := common.FormFile(r, field)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	userID, _ := common.IdentityFrom(r.Context())
	user, err := update(r.Context(), userID, file)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, message)
}

func (h *Handler) ChannelProfile(w http.ResponseWriter, r *http.Request) {
	viewer, _ := common.IdentityFrom(r.Context())
	profile, err := h.userService.ChannelProfile(r.Context(), mux.Vars(r)["username"], viewer)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile, "User channel fetched successfully")
}

func (h *Handler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.IdentityFrom(r.Context())
	history, err := h.userService.WatchHistory(r.Context(), userID)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, history, "Watch history fetched successfully")
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, pair common.TokenPair) {
	http.SetCookie(w, h.cookie(common.AccessTokenCookie, pair.AccessToken, h.accessTTL))
	http.SetCookie(w, h.cookie(common.RefreshTokenCookie, pair.RefreshToken, h.refreshTTL))
}

func (h *Handler) clearSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, h.cookie(common.AccessTokenCookie, "", -1))
	http.SetCookie(w, h.cookie(common.RefreshTokenCookie, "", -1))
}

func (h *Handler) cookie(name, value string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		c.MaxAge = -1
	} else {
		c.MaxAge = int(ttl.Seconds())
	}
	return c
}
