package handler

import (
	"context"

	"github.com/napat-dev/lending-service/identity/internal/model"
	"github.com/napat-dev/lending-service/identity/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type AuthService interface {
	RegisterUser(ctx context.Context, req model.UserCreateRequest) error
	GetUser(ctx context.Context, username string) (model.User, error)
}

var _ AuthService = (*service.Service)(nil)
