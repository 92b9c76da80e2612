package handler

import (
	"context"

	"github.com/napat-dev/lending-service/notifier/internal/service"
	"github.com/napat-dev/lending-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type NotifierService interface {
	Record(ctx context.Context, event kafka.LendingEvent) error
	ReadAndClear(recipient string) int
}

var _ NotifierService = (*service.Service)(nil)
