package usecase

import (
	"context"
	"time"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
	"go.uber.org/zap"
)

// UserUseCase handles user profiles.
type UserUseCase struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
	now      Clock
}

func NewUserUseCase(userRepo repository.UserRepository, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, logger: logger, now: time.Now}
}

func (u *UserUseCase) List(ctx context.Context, filter dto.UserFilter) ([]*entity.User, error) {
	users, err := u.userRepo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("failed to list users", err)
	}
	return users, nil
}

func (u *UserUseCase) Create(ctx context.Context, req *dto.CreateUserRequest) (*entity.User, error) {
	user := entity.NewUser(req.Nombre, req.Email, req.Rol, u.now())
	user.Posicion = req.Posicion
	user.Altura = req.Altura
	user.Ciudad = req.Ciudad
	user.HighlightsURL = req.HighlightsURL
	user.Bio = req.Bio
	user.Foto = req.Foto
	if req.DisponibilidadViajar != nil {
		user.DisponibilidadViajar = *req.DisponibilidadViajar
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("failed to create user", err)
	}

	u.logger.Info("User created", zap.String("user_id", user.ID), zap.String("rol", string(user.Rol)))
	return user, nil
}
