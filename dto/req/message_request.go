package req

type SendMessageRequest struct {
	Content        string `json:"content"`
	Username       string `json:"username"`
	UserID         uint   `json:"userId" validate:"required"`
	AttachmentUrl  string `json:"attachmentUrl" validate:"omitempty,max=2048"`
	AttachmentType string `json:"attachmentType" validate:"omitempty,oneof=image file gif"`
	AttachmentName string `json:"attachmentName" validate:"omitempty,max=255"`
}

// UpdateMessageRequest covers both edit variants: PATCH sends content
// only, PUT also carries the caller's userId.
type UpdateMessageRequest struct {
	Content string `json:"content"`
	UserID  *uint  `json:"userId"`
}

type DeleteMessageRequest struct {
	UserID *uint `json:"userId"`
}
