package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"public-chat-app/presence"
	"public-chat-app/repository"
	"public-chat-app/testutil"
	"public-chat-app/usecase"
)

func TestCountOnlineUsers(t *testing.T) {
	db := testutil.NewTestDB(t)
	tracker := presence.NewTracker(time.Minute)
	uc := usecase.NewUserUsecase(repository.NewUserRepository(), db, testutil.NewQuietAppLogger(), tracker)

	createUser(t, db, "jodo1")
	createUser(t, db, "other1")

	// nobody authenticated yet: fall back to the registered total
	count, err := uc.CountOnlineUsers(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	tracker.Touch(1)
	count, err = uc.CountOnlineUsers(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
