package dbmongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeKind names the collection a like points into.
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

func (k LikeKind) IsValid() bool {
	return k == LikeVideo || k == LikeComment || k == LikeTweet
}

// Collection is the collection holding targets of this kind.
func (k LikeKind) Collection() string {
	switch k {
	case LikeVideo:
		return VideosCollection
	case LikeComment:
		return CommentsCollection
	case LikeTweet:
		return TweetsCollection
	default:
		panic(fmt.Sprintf("unknown like kind %q", string(k)))
	}
}

// LikeTarget is the single thing a Like points at.
type LikeTarget struct {
	Kind LikeKind           `bson:"kind" json:"kind"`
	ID   primitive.ObjectID `bson:"id" json:"id"`
}

type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	LikedBy   primitive.ObjectID `bson:"likedBy" json:"likedBy"`
	Target    LikeTarget         `bson:"target" json:"target"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
