package res

import (
	"time"

	"public-chat-app/entity"
)

type ThemeResponse struct {
	ID                     uint      `json:"id"`
	Name                   string    `json:"name"`
	PrimaryColor           string    `json:"primaryColor"`
	SecondaryColor         string    `json:"secondaryColor"`
	BackgroundColor        string    `json:"backgroundColor"`
	MessageBackgroundSelf  string    `json:"messageBackgroundSelf"`
	MessageBackgroundOther string    `json:"messageBackgroundOther"`
	TextColor              string    `json:"textColor"`
	IsActive               bool      `json:"isActive"`
	CreatedAt              time.Time `json:"createdAt"`
}

func NewThemeResponse(theme *entity.ChatTheme) ThemeResponse {
	return ThemeResponse{
		ID:                     theme.ID,
		Name:                   theme.Name,
		PrimaryColor:           theme.PrimaryColor,
		SecondaryColor:         theme.SecondaryColor,
		BackgroundColor:        theme.BackgroundColor,
		MessageBackgroundSelf:  theme.MessageBackgroundSelf,
		MessageBackgroundOther: theme.MessageBackgroundOther,
		TextColor:              theme.TextColor,
		IsActive:               theme.IsActive,
		CreatedAt:              theme.CreatedAt,
	}
}

func NewThemeResponses(themes []entity.ChatTheme) []ThemeResponse {
	responses := make([]ThemeResponse, 0, len(themes))
	for i := range themes {
		responses = append(responses, NewThemeResponse(&themes[i]))
	}
	return responses
}
