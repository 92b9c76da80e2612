package handler

import (
	"context"

	"github.com/napat-dev/lending-service/lending/internal/model"
	"github.com/napat-dev/lending-service/lending/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type LendingService interface {
	CreateBorrowRequest(ctx context.Context, borrower string, req model.CreateBorrowRequest) (model.Request, error)
	ApproveRequest(ctx context.Context, requestID int, lender string) (model.RequestRef, error)
	RejectRequest(ctx context.Context, requestID int, lender string) (model.RequestRef, error)
	RequestReturn(ctx context.Context, requestID int, borrower string) (model.RequestRef, error)
	ConfirmReturn(ctx context.Context, requestID int, staff string) (model.RequestRef, error)
	DisableAsset(ctx context.Context, assetID int) error
	EnableAsset(ctx context.Context, assetID int) error

	GetAssetView(ctx context.Context, borrower string) ([]model.AssetView, error)
	GetBorrowerStatus(ctx context.Context, borrower string) ([]model.RequestDetail, error)
	GetBorrowerHistory(ctx context.Context, borrower string) ([]model.RequestDetail, error)
	PendingRequests(ctx context.Context) ([]model.RequestDetail, error)
	RequestedReturns(ctx context.Context) ([]model.RequestDetail, error)

	CreateAsset(ctx context.Context, req model.CreateAssetRequest) (model.Asset, error)
	UpdateAsset(ctx context.Context, assetID int, req model.UpdateAssetRequest) error
	DeleteAsset(ctx context.Context, assetID int) error
	ListAssets(ctx context.Context) ([]model.Asset, error)
}

var _ LendingService = (*service.Service)(nil)
