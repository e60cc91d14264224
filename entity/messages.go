package entity

import (
	"time"

	"public-chat-app/enum"
)

// Message keeps a denormalized display username so the feed renders
// without joining users. UpdatedAt stays NULL until the first edit.
type Message struct {
	ID             uint                `json:"id" gorm:"primaryKey"`
	Content        string              `json:"content" gorm:"type:varchar(500);not null"`
	Username       string              `json:"username" gorm:"type:varchar(101);not null"`
	UserID         uint                `json:"userId" gorm:"not null;index"`
	AttachmentUrl  string              `json:"attachmentUrl,omitempty" gorm:"type:text"`
	AttachmentType enum.AttachmentType `json:"attachmentType,omitempty" gorm:"type:varchar(10)"`
	AttachmentName string              `json:"attachmentName,omitempty" gorm:"type:varchar(255)"`
	CreatedAt      time.Time           `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      *time.Time          `json:"updatedAt" gorm:"autoUpdateTime:false"`

	Sender User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}
