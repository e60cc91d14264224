package entity

import "time"

type ChatTheme struct {
	ID                     uint      `json:"id" gorm:"primaryKey"`
	Name                   string    `json:"name" gorm:"type:varchar(50);not null"`
	PrimaryColor           string    `json:"primaryColor" gorm:"type:varchar(20);not null"`
	SecondaryColor         string    `json:"secondaryColor" gorm:"type:varchar(20);not null"`
	BackgroundColor        string    `json:"backgroundColor" gorm:"type:varchar(20);not null"`
	MessageBackgroundSelf  string    `json:"messageBackgroundSelf" gorm:"type:varchar(20);not null"`
	MessageBackgroundOther string    `json:"messageBackgroundOther" gorm:"type:varchar(20);not null"`
	TextColor              string    `json:"textColor" gorm:"type:varchar(20);not null"`
	IsActive               bool      `json:"isActive" gorm:"not null;default:false"`
	CreatedAt              time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// DefaultThemes are the built-in presets seeded on startup.
func DefaultThemes() []ChatTheme {
	return []ChatTheme{
		{
			Name:                   "Classic Blue",
			PrimaryColor:           "#3b82f6",
			SecondaryColor:         "#1e40af",
			BackgroundColor:        "#f8fafc",
			MessageBackgroundSelf:  "#3b82f6",
			MessageBackgroundOther: "#e2e8f0",
			TextColor:              "#1e293b",
		},
		{
			Name:                   "Sunset Orange",
			PrimaryColor:           "#f59e0b",
			SecondaryColor:         "#d97706",
			BackgroundColor:        "#fef3c7",
			MessageBackgroundSelf:  "#f59e0b",
			MessageBackgroundOther: "#fed7aa",
			TextColor:              "#92400e",
		},
		{
			Name:                   "Forest Green",
			PrimaryColor:           "#10b981",
			SecondaryColor:         "#059669",
			BackgroundColor:        "#ecfdf5",
			MessageBackgroundSelf:  "#10b981",
			MessageBackgroundOther: "#d1fae5",
			TextColor:              "#064e3b",
		},
		{
			Name:                   "Purple Dreams",
			PrimaryColor:           "#8b5cf6",
			SecondaryColor:         "#7c3aed",
			BackgroundColor:        "#f3f4f6",
			MessageBackgroundSelf:  "#8b5cf6",
			MessageBackgroundOther: "#e5e7eb",
			TextColor:              "#374151",
		},
		{
			Name:                   "Rose Gold",
			PrimaryColor:           "#f43f5e",
			SecondaryColor:         "#e11d48",
			BackgroundColor:        "#fdf2f8",
			MessageBackgroundSelf:  "#f43f5e",
			MessageBackgroundOther: "#fce7f3",
			TextColor:              "#881337",
		},
		{
			Name:                   "Dark Mode",
			PrimaryColor:           "#6366f1",
			SecondaryColor:         "#4f46e5",
			BackgroundColor:        "#111827",
			MessageBackgroundSelf:  "#6366f1",
			MessageBackgroundOther: "#374151",
			TextColor:              "#f9fafb",
		},
	}
}
