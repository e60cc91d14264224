package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"public-chat-app/entity"
	"public-chat-app/security"
	"public-chat-app/testutil"
)

func TestTokenRoundTrip(t *testing.T) {
	jwt := security.NewJWT(testutil.NewTestConfig(t))

	token, err := jwt.GenerateToken(&entity.User{ID: 42, Username: "jodo1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := jwt.GetUserIdFromToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestTokenTampered(t *testing.T) {
	jwt := security.NewJWT(testutil.NewTestConfig(t))

	token, err := jwt.GenerateToken(&entity.User{ID: 42})
	require.NoError(t, err)

	_, err = jwt.GetUserIdFromToken(token + "x")
	assert.Error(t, err)

	_, err = jwt.GetUserIdFromToken("not-a-token")
	assert.Error(t, err)
}
