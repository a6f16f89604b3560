package user

//go:generate mockgen -source=user_service.go -destination=mock_user_service.go -package=user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/media"
	"github.com/web3ngineer/UTube/internal/views"
)

type RegisterInput struct {
	FullName   string             `json:"fullName" validate:"required,max=100"`
	Email      string             `json:"email" validate:"required,email"`
	Username   string             `json:"username" validate:"required,min=3,max=30,handle"`
	Password   string             `json:"password" validate:"required,min=6,password"`
	Avatar     *common.FileUpload `json:"-" validate:"-"`
	CoverImage *common.FileUpload `json:"-" validate:"-"`
}

type LoginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,password,nefield=OldPassword"`
}

type UpdateAccountInput struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// Session is the result of a login or a token refresh.
type Session struct {
	User *dbmongo.User `json:"user,omitempty"`
	common.TokenPair
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*dbmongo.User, error)
	Login(ctx context.Context, in LoginInput) (*Session, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, in ChangePasswordInput) error
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error)
	UpdateAccount(ctx context.Context, userID primitive.ObjectID, in UpdateAccountInput) (*dbmongo.User, error)
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error)
	UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error)
	ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*views.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]views.VideoCard, error)
}

type userService struct {
	userRepo  UserRepository
	tokens    *common.TokenManager
	store     media.Store
	discarder media.Discarder
	views     views.Assembler
	logger    *logging.Logger
}

func NewUserService(userRepo UserRepository, tokens *common.TokenManager, store media.Store, discarder media.Discarder, assembler views.Assembler, logger *logging.Logger) UserService {
	return &userService{
		userRepo:  userRepo,
		tokens:    tokens,
		store:     store,
		discarder: discarder,
		views:     assembler,
		logger:    logger,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*dbmongo.User, error) {
	defer in.Avatar.Close()
	defer in.CoverImage.Close()

	in.Username = common.NormalizeUsername(in.Username)
	in.Email = common.NormalizeUsername(in.Email)
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.Avatar == nil {
		return nil, common.InvalidArgument("avatar file is required")
	}
	if !common.IsImage(in.Avatar.ContentType) {
		return nil, common.InvalidArgument("avatar must be an image")
	}
	if in.CoverImage != nil && !common.IsImage(in.CoverImage.ContentType) {
		return nil, common.InvalidArgument("coverImage must be an image")
	}

	exists, err := s.userRepo.CheckUserExists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, common.Internal("failed to check user", err)
	}
	if exists {
		return nil, common.Conflict("user with email or username already exists")
	}

	hashed, err := common.HashPassword(in.Password)
	if err != nil {
		return nil, common.Internal("failed to hash password", err)
	}

	avatarURL, err := media.Save(ctx, s.store, in.Avatar, primitive.NilObjectID, "avatar")
	if err != nil {
		return nil, err
	}
	coverURL, err := media.Save(ctx, s.store, in.CoverImage, primitive.NilObjectID, "cover_image")
	if err != nil {
		s.discarder.Discard(avatarURL)
		return nil, err
	}

	user := &dbmongo.User{
		Username:   in.Username,
		Email:      in.Email,
		FullName:   in.FullName,
		Avatar:     avatarURL,
		CoverImage: coverURL,
		Password:   hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		s.discarder.Discard(avatarURL, coverURL)
		if errors.Is(err, dbmongo.ErrDuplicate) {
			return nil, common.Conflict("user with email or username already exists")
		}
		return nil, common.Internal("failed to create user", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	username := common.NormalizeUsername(in.Username)
	email := common.NormalizeUsername(in.Email)
	if username == "" && email == "" {
		return nil, common.InvalidArgument("username or email is required")
	}
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByLogin(ctx, username, email)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.NotFound("user does not exist")
	}
	if err != nil {
		return nil, common.Internal("failed to load user", err)
	}

	if err := common.CheckPassword(in.Password, user.Password); err != nil {
		return nil, common.Unauthorized("invalid user credentials")
	}

	pair, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, TokenPair: pair}, nil
}

func (s *userService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	err := s.userRepo.SetRefreshToken(ctx, userID, "")
	if err != nil && !errors.Is(err, dbmongo.ErrNotFound) {
		return common.Internal("failed to clear session", err)
	}
	return nil
}

// RefreshSession rotates both tokens. The presented refresh token must be
// the one currently stored for the user.
func (s *userService) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, common.Unauthorized("unauthorized request")
	}

	claims, err := s.tokens.ValidRefreshToken(refreshToken)
	if err != nil {
		return nil, common.Unauthorized("invalid refresh token")
	}
	userID, err := claims.SubjectID()
	if err != nil {
		return nil, common.Unauthorized("invalid refresh token")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.Unauthorized("invalid refresh token")
	}
	if err != nil {
		return nil, common.Internal("failed to load user", err)
	}
	if user.RefreshToken != refreshToken {
		return nil, common.Unauthorized("refresh token is expired or used")
	}

	pair, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}
	return &Session{TokenPair: pair}, nil
}

func (s *userService) issue(ctx context.Context, user *dbmongo.User) (common.TokenPair, error) {
	pair, err := s.tokens.GenerateTokenPair(common.TokenSubject{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	})
	if err != nil {
		return common.TokenPair{}, common.Internal("failed to generate tokens", err)
	}
	if err := s.userRepo.SetRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return common.TokenPair{}, common.Internal("failed to store session", err)
	}
	user.RefreshToken = pair.RefreshToken
	return pair, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID primitive.ObjectID, in ChangePasswordInput) error {
	if err := common.ValidateStruct(in); err != nil {
		return err
	}

	user, err := s.current(ctx, userID)
	if err != nil {
		return err
	}
	if err := common.CheckPassword(in.OldPassword, user.Password); err != nil {
		return common.InvalidArgument("invalid old password")
	}

	hashed, err := common.HashPassword(in.NewPassword)
	if err != nil {
		return common.Internal("failed to hash password", err)
	}
	if err := s.userRepo.SetPassword(ctx, userID, hashed); err != nil {
		return common.Internal("failed to update password", err)
	}
	return nil
}

func (s *userService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	return s.current(ctx, userID)
}

func (s *userService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, in UpdateAccountInput) (*dbmongo.User, error) {
	in.Email = common.NormalizeUsername(in.Email)
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateAccount(ctx, userID, in.FullName, in.Email)
	switch {
	case errors.Is(err, dbmongo.ErrDuplicate):
		return nil, common.Conflict("email is already in use")
	case errors.Is(err, dbmongo.ErrNotFound):
		return nil, common.NotFound("user not found")
	case err != nil:
		return nil, common.Internal("failed to update account", err)
	}
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error) {
	return s.replaceImage(ctx, userID, file, "avatar")
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload) (*dbmongo.User, error) {
	return s.replaceImage(ctx, userID, file, "coverImage")
}

// replaceImage stores the new file, points the user at it and discards the
// previous file once the record no longer references it.
func (s *userService) replaceImage(ctx context.Context, userID primitive.ObjectID, file *common.FileUpload, field string) (*dbmongo.User, error) {
	if file == nil {
		return nil, common.InvalidArgument(field + " file is missing")
	}
	if !common.IsImage(file.ContentType) {
		file.Close()
		return nil, common.InvalidArgument(field + " must be an image")
	}

	url, err := media.Save(ctx, s.store, file, userID, field)
	if err != nil {
		return nil, err
	}

	before, err := s.userRepo.SetImage(ctx, userID, field, url)
	if err != nil {
		s.discarder.Discard(url)
		if errors.Is(err, dbmongo.ErrNotFound) {
			return nil, common.NotFound("user not found")
		}
		return nil, common.Internal("failed to update "+field, err)
	}

	previous := before.Avatar
	if field == "coverImage" {
		previous = before.CoverImage
	}
	s.discarder.Discard(previous)

	after := *before
	if field == "coverImage" {
		after.CoverImage = url
	} else {
		after.Avatar = url
	}
	return &after, nil
}

func (s *userService) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*views.ChannelProfile, error) {
	if common.NormalizeUsername(username) == "" {
		return nil, common.InvalidArgument("username is missing")
	}
	return s.views.ChannelProfile(ctx, username, viewer)
}

func (s *userService) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]views.VideoCard, error) {
	return s.views.WatchHistory(ctx, userID)
}

func (s *userService) current(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.NotFound("user not found")
	}
	if err != nil {
		return nil, common.Internal("failed to load user", err)
	}
	return user, nil
}
