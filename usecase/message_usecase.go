package usecase

import (
	"context"

	"public-chat-app/dto/req"
	"public-chat-app/dto/res"
)

type MessageUsecase interface {
	ListMessages(ctx context.Context) ([]res.MessageResponse, error)
	SendMessage(ctx context.Context, senderID uint, request *req.SendMessageRequest) (res.MessageResponse, error)
	EditMessage(ctx context.Context, messageID, editorID uint, request *req.UpdateMessageRequest) (res.MessageResponse, error)
	DeleteMessage(ctx context.Context, messageID, editorID uint, request *req.DeleteMessageRequest) error
}
