package req

type SetThemeRequest struct {
	ThemeID uint `json:"themeId" validate:"required"`
}
