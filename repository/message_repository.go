package repository

import (
	"context"

	"gorm.io/gorm"

	"public-chat-app/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// FindAllOrdered lists the whole feed oldest first. The id tie-break keeps
// the order stable for messages created within the same timestamp tick.
func (repository MessageRepository) FindAllOrdered(ctx context.Context, db *gorm.DB) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error
	return messages, err
}
