package usecase

import (
	"context"

	"gorm.io/gorm"

	"public-chat-app/config/logger"
	"public-chat-app/presence"
	"public-chat-app/repository"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*gorm.DB
	Log     *logger.AppLogger
	Tracker *presence.Tracker
}

func NewUserUsecase(userRepository *repository.UserRepository, DB *gorm.DB, log *logger.AppLogger, tracker *presence.Tracker) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, DB: DB, Log: log, Tracker: tracker}
}

// CountOnlineUsers reports users seen inside the presence window. With no
// authenticated traffic yet it falls back to the registered total so the
// counter never reads zero on a fresh page.
func (uc *UserUsecaseImpl) CountOnlineUsers(ctx context.Context) (int64, error) {
	online := int64(uc.Tracker.Count())
	if online > 0 {
		return online, nil
	}

	total, err := uc.UserRepository.CountAll(ctx, uc.DB)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to count users")
		return 0, err
	}

	uc.Log.Http.Trace.Trace().Int64("total", total).Msg("no active sessions, using registered total")
	return total, nil
}
