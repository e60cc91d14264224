package usecase

import (
	"context"

	"public-chat-app/dto/res"
)

type ThemeUsecase interface {
	GetActiveTheme(ctx context.Context) (res.ThemeResponse, error)
	SetActiveTheme(ctx context.Context, themeID uint) (res.ThemeResponse, error)
	ListThemes(ctx context.Context) ([]res.ThemeResponse, error)
}
