package playlist

//go:generate mockgen -source=playlist_repository.go -destination=mock_playlist_repository.go -package=playlist

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

type PlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist *dbmongo.Playlist) error
	GetPlaylistByID(ctx context.Context, playlistID primitive.ObjectID) (*dbmongo.Playlist, error)
	// UpdateDetails sets the non-empty fields and returns the playlist.
	UpdateDetails(ctx context.Context, playlistID primitive.ObjectID, name, description string) (*dbmongo.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID primitive.ObjectID) error
	// AddVideo appends videoID; a video may appear more than once.
	AddVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*dbmongo.Playlist, error)
	// RemoveVideo drops every occurrence of videoID.
	RemoveVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*dbmongo.Playlist, error)
	VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error)
}

type playlistRepository struct {
	mc *dbmongo.MongoClient
}

func NewPlaylistRepository(mc *dbmongo.MongoClient) PlaylistRepository {
	return &playlistRepository{mc: mc}
}

func (r *playlistRepository) playlists() *mongo.Collection {
	return r.mc.Collection(dbmongo.PlaylistsCollection)
}

func (r *playlistRepository) CreatePlaylist(ctx context.Context, playlist *dbmongo.Playlist) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	playlist.CreatedAt, playlist.UpdatedAt = now, now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}

	res, err := r.playlists().InsertOne(ctx, playlist)
	if err != nil {
		return err
	}
	playlist.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *playlistRepository) GetPlaylistByID(ctx context.Context, playlistID primitive.ObjectID) (*dbmongo.Playlist, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	var playlist dbmongo.Playlist
	if err := r.playlists().FindOne(ctx, bson.D{{Key: "_id", Value: playlistID}}).Decode(&playlist); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &playlist, nil
}

func (r *playlistRepository) UpdateDetails(ctx context.Context, playlistID primitive.ObjectID, name, description string) (*dbmongo.Playlist, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if name != "" {
		set = append(set, bson.E{Key: "name", Value: name})
	}
	if description != "" {
		set = append(set, bson.E{Key: "description", Value: description})
	}
	return r.findAndUpdate(ctx, playlistID, bson.D{{Key: "$set", Value: set}})
}

func (r *playlistRepository) DeletePlaylist(ctx context.Context, playlistID primitive.ObjectID) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	res, err := r.playlists().DeleteOne(ctx, bson.D{{Key: "_id", Value: playlistID}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return dbmongo.ErrNotFound
	}
	return nil
}

func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*dbmongo.Playlist, error) {
	return r.findAndUpdate(ctx, playlistID, bson.D{
		{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID primitive.ObjectID) (*dbmongo.Playlist, error) {
	return r.findAndUpdate(ctx, playlistID, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *playlistRepository) VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})
	err := r.mc.Collection(dbmongo.VideosCollection).FindOne(ctx, bson.D{{Key: "_id", Value: videoID}}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *playlistRepository) findAndUpdate(ctx context.Context, playlistID primitive.ObjectID, update interface{}) (*dbmongo.Playlist, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var playlist dbmongo.Playlist
	if err := r.playlists().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: playlistID}}, update, opts).Decode(&playlist); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &playlist, nil
}
