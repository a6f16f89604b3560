package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
)

func TestRequireOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	// same value, separately parsed
	sameOwner, err := primitive.ObjectIDFromHex(owner.Hex())
	require.NoError(t, err)

	tests := []struct {
		name    string
		actor   primitive.ObjectID
		wantErr bool
	}{
		{name: "owner", actor: sameOwner},
		{name: "other user", actor: primitive.NewObjectID(), wantErr: true},
		{name: "anonymous", actor: primitive.NilObjectID, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := RequireOwner(owner, tc.actor, "delete this comment")
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, codes.PermissionDenied, Code(err))
				assert.Contains(t, err.Error(), "delete this comment")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := ParseID(" "+id.Hex()+" ", "videoId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("not-an-id", "videoId")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, Code(err))
	assert.Contains(t, err.Error(), "invalid videoId")
}

func TestNewToggleResult(t *testing.T) {
	assert.Equal(t, ToggleResult{State: ToggleCreated, Active: true}, NewToggleResult(true))
	assert.Equal(t, ToggleResult{State: ToggleRemoved, Active: false}, NewToggleResult(false))
}
