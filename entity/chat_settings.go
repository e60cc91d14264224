package entity

import "time"

// ChatSettings is a single-row table pointing at the active theme. Keeping
// the pointer in the store (instead of process memory) lets concurrent
// setActiveTheme calls resolve through row-level atomicity.
type ChatSettings struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ActiveThemeID *uint     `json:"activeThemeId"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	ActiveTheme *ChatTheme `json:"-" gorm:"foreignKey:ActiveThemeID;references:ID"`
}
