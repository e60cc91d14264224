package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"public-chat-app/entity"
)

type ThemeRepository struct {
	Repository[entity.ChatTheme]
}

func NewThemeRepository() *ThemeRepository {
	return &ThemeRepository{}
}

// FindActive resolves the active theme through the settings row; the
// is_active flag is kept consistent by SetActive but the settings pointer
// is authoritative.
func (repository ThemeRepository) FindActive(ctx context.Context, db *gorm.DB) (*entity.ChatTheme, error) {
	var settings entity.ChatSettings
	err := db.WithContext(ctx).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.findActiveByFlag(ctx, db)
		}
		return nil, err
	}

	if settings.ActiveThemeID == nil {
		return nil, gorm.ErrRecordNotFound
	}

	var theme entity.ChatTheme
	if err := db.WithContext(ctx).Where("id = ?", *settings.ActiveThemeID).First(&theme).Error; err != nil {
		return nil, err
	}
	return &theme, nil
}

func (repository ThemeRepository) findActiveByFlag(ctx context.Context, db *gorm.DB) (*entity.ChatTheme, error) {
	var theme entity.ChatTheme
	err := db.WithContext(ctx).Where("is_active = ?", true).First(&theme).Error
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// SetActive flips the single-active invariant in one transaction:
// deactivate everything, activate the target, point the settings row at it.
func (repository ThemeRepository) SetActive(ctx context.Context, db *gorm.DB, themeID uint) (*entity.ChatTheme, error) {
	var theme entity.ChatTheme

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", themeID).First(&theme).Error; err != nil {
			return err
		}

		if err := tx.Model(&entity.ChatTheme{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&theme).Update("is_active", true).Error; err != nil {
			return err
		}

		var settings entity.ChatSettings
		if err := tx.First(&settings).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			settings = entity.ChatSettings{ActiveThemeID: &theme.ID}
			return tx.Create(&settings).Error
		}

		return tx.Model(&settings).Update("active_theme_id", theme.ID).Error
	})
	if err != nil {
		return nil, err
	}

	theme.IsActive = true
	return &theme, nil
}

func (repository ThemeRepository) FindAllOrdered(ctx context.Context, db *gorm.DB) ([]entity.ChatTheme, error) {
	var themes []entity.ChatTheme
	err := db.WithContext(ctx).Order("id ASC").Find(&themes).Error
	return themes, err
}
