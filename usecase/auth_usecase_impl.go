package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"public-chat-app/dto/req"
	"public-chat-app/dto/res"
	"public-chat-app/entity"
	"public-chat-app/exception"
	"public-chat-app/repository"
	"public-chat-app/security"
	"public-chat-app/util"
)

type AuthUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) SignUp(ctx context.Context, request *req.SignUpRequest) (res.AuthResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Warn("sign-up validation failed")
		return res.AuthResponse{}, exception.Translate(err)
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	// duplicate probe first so the caller gets a conflict, not a raw
	// unique-constraint error
	usernameTaken, err := uc.UserRepository.UsernameExists(ctx, trx, request.Username)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to check username")
		return res.AuthResponse{}, err
	}
	if usernameTaken {
		return res.AuthResponse{}, exception.NewConflict("Username already exists")
	}

	emailTaken, err := uc.UserRepository.EmailExists(ctx, trx, request.Email)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to check email")
		return res.AuthResponse{}, err
	}
	if emailTaken {
		return res.AuthResponse{}, exception.NewConflict("Email already exists")
	}

	hashedPassword, err := util.HashPassword(request.Password)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to hash password")
		return res.AuthResponse{}, err
	}

	newUser := &entity.User{
		Username:  request.Username,
		Email:     request.Email,
		Password:  hashedPassword,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	}

	if err := uc.UserRepository.Save(ctx, trx, newUser); err != nil {
		uc.Logger.WithError(err).Error("failed to save user")
		return res.AuthResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Error("failed to commit user")
		return res.AuthResponse{}, err
	}

	token, err := uc.JWT.GenerateToken(newUser)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return res.AuthResponse{}, err
	}

	uc.Logger.Infof("registered user %q (id=%d)", newUser.Username, newUser.ID)
	return res.AuthResponse{
		UserResponse: res.NewUserResponse(newUser),
		Token:        token,
	}, nil
}

func (uc *AuthUsecaseImpl) SignIn(ctx context.Context, request *req.SignInRequest) (res.AuthResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Warn("sign-in validation failed")
		return res.AuthResponse{}, exception.Translate(err)
	}

	// the same message for unknown email and wrong password keeps account
	// enumeration off the table
	user, err := uc.UserRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Logger.WithError(err).Error("failed to find user by email")
			return res.AuthResponse{}, err
		}
		return res.AuthResponse{}, exception.NewAuth("Invalid email or password")
	}

	if !util.ComparePassword(user.Password, request.Password) {
		return res.AuthResponse{}, exception.NewAuth("Invalid email or password")
	}

	token, err := uc.JWT.GenerateToken(user)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return res.AuthResponse{}, err
	}

	return res.AuthResponse{
		UserResponse: res.NewUserResponse(user),
		Token:        token,
	}, nil
}
