package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"public-chat-app/config"
	"public-chat-app/dto/req"
	"public-chat-app/entity"
	"public-chat-app/exception"
	"public-chat-app/repository"
	"public-chat-app/testutil"
	"public-chat-app/usecase"
)

func newMessageUsecase(t *testing.T) (usecase.MessageUsecase, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	uc := usecase.NewMessageUsecase(
		repository.NewMessageRepository(),
		repository.NewUserRepository(),
		config.NewValidator(),
		db,
		testutil.NewQuietLog(),
	)
	return uc, db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:  username,
		Email:     username + "@x.com",
		Password:  "hashed",
		FirstName: "Jo",
		LastName:  "Do",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func sendRequest(user *entity.User, content string) *req.SendMessageRequest {
	return &req.SendMessageRequest{
		Content:  content,
		Username: user.FullName(),
		UserID:   user.ID,
	}
}

func TestSendMessageAndList(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	sent, err := uc.SendMessage(context.Background(), user.ID, sendRequest(user, "hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", sent.Content)
	assert.Equal(t, "Jo Do", sent.Username)
	assert.Equal(t, user.ID, sent.UserID)
	assert.Nil(t, sent.UpdatedAt)

	messages, err := uc.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, sent.ID, messages[0].ID)
}

func TestListMessagesCreationOrder(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	for _, content := range []string{"first", "second", "third"} {
		_, err := uc.SendMessage(context.Background(), user.ID, sendRequest(user, content))
		require.NoError(t, err)
	}

	messages, err := uc.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestSendMessageContentRules(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	tcases := []struct {
		name    string
		content string
		message string
	}{
		{name: "empty", content: "", message: "Message cannot be empty"},
		{name: "whitespace only", content: "   \n\t ", message: "Message cannot be empty"},
		{name: "too long", content: strings.Repeat("a", 501), message: "Message cannot exceed 500 characters"},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.SendMessage(context.Background(), user.ID, sendRequest(user, tc.content))
			var validationErr *exception.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.message, validationErr.Message)
		})
	}

	// exactly 500 characters is allowed
	_, err := uc.SendMessage(context.Background(), user.ID, sendRequest(user, strings.Repeat("a", 500)))
	assert.NoError(t, err)
}

func TestSendMessageTrimsContent(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	sent, err := uc.SendMessage(context.Background(), user.ID, sendRequest(user, "  hello  "))
	require.NoError(t, err)
	assert.Equal(t, "hello", sent.Content)
}

func TestSendMessageUsernameFallback(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	request := sendRequest(user, "hello")
	request.Username = ""

	sent, err := uc.SendMessage(context.Background(), user.ID, request)
	require.NoError(t, err)
	assert.Equal(t, "Jo Do", sent.Username)
}

func TestSendMessageMismatchedUserID(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")
	other := createUser(t, db, "other1")

	request := sendRequest(other, "hello")
	_, err := uc.SendMessage(context.Background(), user.ID, request)
	var forbiddenErr *exception.ForbiddenError
	require.ErrorAs(t, err, &forbiddenErr)
}

func TestSendMessageWithAttachment(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	request := sendRequest(user, "look at this")
	request.AttachmentUrl = "https://media.tenor.com/wbKQtCg-zKcAAAAj/love-heart.gif"
	request.AttachmentType = "gif"
	request.AttachmentName = "Love"

	sent, err := uc.SendMessage(context.Background(), user.ID, request)
	require.NoError(t, err)
	assert.Equal(t, "gif", sent.AttachmentType)
	assert.Equal(t, "Love", sent.AttachmentName)

	t.Run("invalid type rejected", func(t *testing.T) {
		bad := sendRequest(user, "nope")
		bad.AttachmentUrl = "https://example.com/x"
		bad.AttachmentType = "video"

		_, err := uc.SendMessage(context.Background(), user.ID, bad)
		var validationErr *exception.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestEditMessage(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	sent, err := uc.SendMessage(context.Background(), user.ID, sendRequest(user, "hello"))
	require.NoError(t, err)

	edited, err := uc.EditMessage(context.Background(), sent.ID, user.ID, &req.UpdateMessageRequest{
		Content: "hello world",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello world", edited.Content)
	require.NotNil(t, edited.UpdatedAt)
	assert.Equal(t, sent.ID, edited.ID)
	assert.Equal(t, sent.UserID, edited.UserID)
	assert.Equal(t, sent.CreatedAt, edited.CreatedAt)

	messages, err := uc.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello world", messages[0].Content)
	assert.NotNil(t, messages[0].UpdatedAt)
}

func TestEditMessageOwnership(t *testing.T) {
	uc, db := newMessageUsecase(t)
	owner := createUser(t, db, "jodo1")
	intruder := createUser(t, db, "other1")

	sent, err := uc.SendMessage(context.Background(), owner.ID, sendRequest(owner, "hello"))
	require.NoError(t, err)

	_, err = uc.EditMessage(context.Background(), sent.ID, intruder.ID, &req.UpdateMessageRequest{
		Content: "hijacked",
	})
	var forbiddenErr *exception.ForbiddenError
	require.ErrorAs(t, err, &forbiddenErr)

	// content unchanged
	messages, err := uc.ListMessages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", messages[0].Content)
}

func TestEditMessageNotFound(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	_, err := uc.EditMessage(context.Background(), 999, user.ID, &req.UpdateMessageRequest{
		Content: "hello",
	})
	var notFoundErr *exception.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDeleteMessage(t *testing.T) {
	uc, db := newMessageUsecase(t)
	user := createUser(t, db, "jodo1")

	sent, err := uc.SendMessage(context.Background(), user.ID, sendRequest(user, "hello"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteMessage(context.Background(), sent.ID, user.ID, nil))

	messages, err := uc.ListMessages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, messages)

	t.Run("already gone", func(t *testing.T) {
		err := uc.DeleteMessage(context.Background(), sent.ID, user.ID, nil)
		var notFoundErr *exception.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})
}

func TestDeleteMessageOwnership(t *testing.T) {
	uc, db := newMessageUsecase(t)
	owner := createUser(t, db, "jodo1")
	intruder := createUser(t, db, "other1")

	sent, err := uc.SendMessage(context.Background(), owner.ID, sendRequest(owner, "hello"))
	require.NoError(t, err)

	err = uc.DeleteMessage(context.Background(), sent.ID, intruder.ID, nil)
	var forbiddenErr *exception.ForbiddenError
	require.ErrorAs(t, err, &forbiddenErr)

	t.Run("claimed userId must match too", func(t *testing.T) {
		claimed := intruder.ID
		err := uc.DeleteMessage(context.Background(), sent.ID, owner.ID, &req.DeleteMessageRequest{
			UserID: &claimed,
		})
		require.ErrorAs(t, err, &forbiddenErr)
	})
}
