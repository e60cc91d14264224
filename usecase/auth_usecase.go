package usecase

import (
	"context"

	"public-chat-app/dto/req"
	"public-chat-app/dto/res"
)

type AuthUsecase interface {
	SignUp(ctx context.Context, request *req.SignUpRequest) (res.AuthResponse, error)
	SignIn(ctx context.Context, request *req.SignInRequest) (res.AuthResponse, error)
}
