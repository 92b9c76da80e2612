package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/napat-dev/lending-service/identity/internal/model"
	"github.com/napat-dev/lending-service/identity/internal/repository"
	"github.com/napat-dev/lending-service/pkg/auth"
)

const bcryptCost = 10

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) RegisterUser(ctx context.Context, req model.UserCreateRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}
	role := req.Role
	if role == "" {
		role = auth.RoleBorrower
	}
	return s.repo.CreateUser(ctx, model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	})
}

func (s *Service) GetUser(ctx context.Context, username string) (model.User, error) {
	return s.repo.GetUser(ctx, username)
}
