package views

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OwnerSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName" json:"fullName"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

// ChannelOwner is a video owner with viewer-relative subscription data.
type ChannelOwner struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	Username         string             `bson:"username" json:"username"`
	FullName         string             `bson:"fullName" json:"fullName"`
	Avatar           string             `bson:"avatar" json:"avatar"`
	SubscribersCount int64              `bson:"subscribersCount" json:"subscribersCount"`
	IsSubscribed     bool               `bson:"isSubscribed" json:"isSubscribed"`
}

type VideoCard struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	VideoFile   string             `bson:"videoFile" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	Owner       *OwnerSummary      `bson:"owner" json:"owner"`
}

type VideoDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	VideoFile   string             `bson:"videoFile" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	Owner       *ChannelOwner      `bson:"owner" json:"owner"`
	LikesCount  int64              `bson:"likesCount" json:"likesCount"`
	IsLiked     bool               `bson:"isLiked" json:"isLiked"`
}

type CommentView struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Content    string             `bson:"content" json:"content"`
	Video      primitive.ObjectID `bson:"video" json:"video"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
	Owner      *OwnerSummary      `bson:"owner" json:"owner"`
	LikesCount int64              `bson:"likesCount" json:"likesCount"`
	IsLiked    bool               `bson:"isLiked" json:"isLiked"`
}

type TweetView struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Content    string             `bson:"content" json:"content"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
	Owner      *OwnerSummary      `bson:"owner" json:"owner"`
	LikesCount int64              `bson:"likesCount" json:"likesCount"`
	IsLiked    bool               `bson:"isLiked" json:"isLiked"`
}

// ChannelCard is one entry of a subscriber or subscribed-channel listing.
type ChannelCard struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	Username         string             `bson:"username" json:"username"`
	FullName         string             `bson:"fullName" json:"fullName"`
	Avatar           string             `bson:"avatar" json:"avatar"`
	SubscribersCount int64              `bson:"subscribersCount" json:"subscribersCount"`
	IsSubscribed     bool               `bson:"isSubscribed" json:"isSubscribed"`
	SubscribedAt     time.Time          `bson:"subscribedAt" json:"subscribedAt"`
}

type LikedVideo struct {
	LikedAt time.Time `bson:"likedAt" json:"likedAt"`
	Video   VideoCard `bson:"video" json:"video"`
}

type PlaylistSummary struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	TotalVideos int64              `bson:"totalVideos" json:"totalVideos"`
	TotalViews  int64              `bson:"totalViews" json:"totalViews"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type PlaylistDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	TotalVideos int64              `bson:"totalVideos" json:"totalVideos"`
	TotalViews  int64              `bson:"totalViews" json:"totalViews"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	Owner       *OwnerSummary      `bson:"owner" json:"owner"`
	Videos      []VideoCard        `bson:"videos" json:"videos"`
}

type ChannelProfile struct {
	ID                        primitive.ObjectID `bson:"_id" json:"_id"`
	Username                  string             `bson:"username" json:"username"`
	FullName                  string             `bson:"fullName" json:"fullName"`
	Email                     string             `bson:"email" json:"email"`
	Avatar                    string             `bson:"avatar" json:"avatar"`
	CoverImage                string             `bson:"coverImage" json:"coverImage"`
	SubscribersCount          int64              `bson:"subscribersCount" json:"subscribersCount"`
	ChannelsSubscribedToCount int64              `bson:"channelsSubscribedToCount" json:"channelsSubscribedToCount"`
	IsSubscribed              bool               `bson:"isSubscribed" json:"isSubscribed"`
	CreatedAt                 time.Time          `bson:"createdAt" json:"createdAt"`
}
