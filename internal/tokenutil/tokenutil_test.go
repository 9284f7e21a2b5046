package tokenutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moviemind/moviemind-backend/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &domain.User{
		ID:   primitive.NewObjectID(),
		Name: "Test User",
	}
	secret := "token-secret"

	token, err := CreateAccessToken(user, secret, 2)
	require.NoError(t, err)

	authorized, err := IsAuthorized(token, secret)
	require.NoError(t, err)
	assert.True(t, authorized)

	id, err := ExtractIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}

func TestTokenWrongSecret(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}

	token, err := CreateAccessToken(user, "right-secret", 2)
	require.NoError(t, err)

	authorized, err := IsAuthorized(token, "wrong-secret")
	assert.Error(t, err)
	assert.False(t, authorized)
}
