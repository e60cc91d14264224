package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"public-chat-app/dto/res"
	"public-chat-app/exception"
	"public-chat-app/repository"
)

type ThemeUsecaseImpl struct {
	*repository.ThemeRepository
	*gorm.DB
	*logrus.Logger
}

func NewThemeUsecase(themeRepository *repository.ThemeRepository, DB *gorm.DB, logger *logrus.Logger) ThemeUsecase {
	return &ThemeUsecaseImpl{ThemeRepository: themeRepository, DB: DB, Logger: logger}
}

func (uc *ThemeUsecaseImpl) GetActiveTheme(ctx context.Context) (res.ThemeResponse, error) {
	theme, err := uc.ThemeRepository.FindActive(ctx, uc.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// clients fall back to their built-in defaults on 404
			return res.ThemeResponse{}, exception.NewNotFound("No active theme")
		}
		uc.Logger.WithError(err).Error("failed to find active theme")
		return res.ThemeResponse{}, err
	}
	return res.NewThemeResponse(theme), nil
}

func (uc *ThemeUsecaseImpl) SetActiveTheme(ctx context.Context, themeID uint) (res.ThemeResponse, error) {
	theme, err := uc.ThemeRepository.SetActive(ctx, uc.DB, themeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.ThemeResponse{}, exception.NewNotFound("Theme not found")
		}
		uc.Logger.WithError(err).Error("failed to set active theme")
		return res.ThemeResponse{}, err
	}

	uc.Logger.Infof("active theme switched to %q (id=%d)", theme.Name, theme.ID)
	return res.NewThemeResponse(theme), nil
}

func (uc *ThemeUsecaseImpl) ListThemes(ctx context.Context) ([]res.ThemeResponse, error) {
	themes, err := uc.ThemeRepository.FindAllOrdered(ctx, uc.DB)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to list themes")
		return nil, err
	}
	return res.NewThemeResponses(themes), nil
}
