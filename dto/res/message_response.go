package res

import (
	"time"

	"public-chat-app/entity"
)

type MessageResponse struct {
	ID             uint       `json:"id"`
	Content        string     `json:"content"`
	Username       string     `json:"username"`
	UserID         uint       `json:"userId"`
	AttachmentUrl  string     `json:"attachmentUrl,omitempty"`
	AttachmentType string     `json:"attachmentType,omitempty"`
	AttachmentName string     `json:"attachmentName,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
}

func NewMessageResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:             message.ID,
		Content:        message.Content,
		Username:       message.Username,
		UserID:         message.UserID,
		AttachmentUrl:  message.AttachmentUrl,
		AttachmentType: string(message.AttachmentType),
		AttachmentName: message.AttachmentName,
		CreatedAt:      message.CreatedAt,
		UpdatedAt:      message.UpdatedAt,
	}
}

func NewMessageResponses(messages []entity.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, NewMessageResponse(&messages[i]))
	}
	return responses
}
