package usecase

import "context"

type UserUsecase interface {
	CountOnlineUsers(ctx context.Context) (int64, error)
}
