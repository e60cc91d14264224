package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"public-chat-app/dto/req"
	"public-chat-app/dto/res"
	"public-chat-app/entity"
	"public-chat-app/enum"
	"public-chat-app/exception"
	"public-chat-app/repository"
)

const maxContentLength = 500

type MessageUsecaseImpl struct {
	*repository.MessageRepository
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewMessageUsecase(messageRepository *repository.MessageRepository, userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) MessageUsecase {
	return &MessageUsecaseImpl{
		MessageRepository: messageRepository,
		UserRepository:    userRepository,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
	}
}

func (uc *MessageUsecaseImpl) ListMessages(ctx context.Context) ([]res.MessageResponse, error) {
	messages, err := uc.MessageRepository.FindAllOrdered(ctx, uc.DB)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to list messages")
		return nil, err
	}
	return res.NewMessageResponses(messages), nil
}

func (uc *MessageUsecaseImpl) SendMessage(ctx context.Context, senderID uint, request *req.SendMessageRequest) (res.MessageResponse, error) {
	content, err := validateContent(request.Content)
	if err != nil {
		return res.MessageResponse{}, err
	}
	request.Content = content

	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Warn("send message validation failed")
		return res.MessageResponse{}, exception.Translate(err)
	}

	// the token subject is authoritative; a mismatching body userId means
	// someone is posting on another user's behalf
	if request.UserID != senderID {
		return res.MessageResponse{}, exception.NewForbidden("You can only send messages as yourself")
	}

	var sender entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &sender, senderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.MessageResponse{}, exception.NewNotFound("User not found")
		}
		uc.Logger.WithError(err).Error("failed to find sender")
		return res.MessageResponse{}, err
	}

	username := strings.TrimSpace(request.Username)
	if username == "" {
		username = sender.FullName()
	}

	message := &entity.Message{
		Content:        request.Content,
		Username:       username,
		UserID:         sender.ID,
		AttachmentUrl:  request.AttachmentUrl,
		AttachmentType: enum.AttachmentType(request.AttachmentType),
		AttachmentName: request.AttachmentName,
	}

	if err := uc.MessageRepository.Save(ctx, uc.DB, message); err != nil {
		uc.Logger.WithError(err).Error("failed to save message")
		return res.MessageResponse{}, err
	}

	uc.Logger.Infof("user %d sent message %d", sender.ID, message.ID)
	return res.NewMessageResponse(message), nil
}

func (uc *MessageUsecaseImpl) EditMessage(ctx context.Context, messageID, editorID uint, request *req.UpdateMessageRequest) (res.MessageResponse, error) {
	content, err := validateContent(request.Content)
	if err != nil {
		return res.MessageResponse{}, err
	}

	var message entity.Message
	if err := uc.MessageRepository.FindById(ctx, uc.DB, &message, messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.MessageResponse{}, exception.NewNotFound("Message not found")
		}
		uc.Logger.WithError(err).Error("failed to find message")
		return res.MessageResponse{}, err
	}

	if err := uc.checkOwnership(&message, editorID, request.UserID); err != nil {
		return res.MessageResponse{}, err
	}

	// full content replacement; last writer wins, no version check
	now := time.Now()
	if err := uc.DB.WithContext(ctx).
		Model(&message).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": now,
		}).Error; err != nil {
		uc.Logger.WithError(err).Error("failed to update message")
		return res.MessageResponse{}, err
	}

	message.Content = content
	message.UpdatedAt = &now
	return res.NewMessageResponse(&message), nil
}

func (uc *MessageUsecaseImpl) DeleteMessage(ctx context.Context, messageID, editorID uint, request *req.DeleteMessageRequest) error {
	var message entity.Message
	if err := uc.MessageRepository.FindById(ctx, uc.DB, &message, messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return exception.NewNotFound("Message not found")
		}
		uc.Logger.WithError(err).Error("failed to find message")
		return err
	}

	var claimedID *uint
	if request != nil {
		claimedID = request.UserID
	}
	if err := uc.checkOwnership(&message, editorID, claimedID); err != nil {
		return err
	}

	if err := uc.MessageRepository.Delete(ctx, uc.DB, &message); err != nil {
		uc.Logger.WithError(err).Error("failed to delete message")
		return err
	}

	uc.Logger.Infof("user %d deleted message %d", editorID, messageID)
	return nil
}

// checkOwnership enforces author-only mutation against the token subject;
// a body userId, when a client sends one, must agree as well.
func (uc *MessageUsecaseImpl) checkOwnership(message *entity.Message, editorID uint, claimedID *uint) error {
	if message.UserID != editorID {
		return exception.NewForbidden("You can only modify your own messages")
	}
	if claimedID != nil && *claimedID != message.UserID {
		return exception.NewForbidden("You can only modify your own messages")
	}
	return nil
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", exception.NewValidation("Message cannot be empty", map[string]string{
			"content": "Message cannot be empty",
		})
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return "", exception.NewValidation("Message cannot exceed 500 characters", map[string]string{
			"content": "Message cannot exceed 500 characters",
		})
	}
	return content, nil
}
