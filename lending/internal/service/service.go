package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/napat-dev/lending-service/lending/internal/errs"
	"github.com/napat-dev/lending-service/lending/internal/model"
	"github.com/napat-dev/lending-service/lending/internal/repository"
)

type Config struct {
	// DailyQuota limits a borrower to one borrow request per calendar day,
	// on top of the one-active-request rule that always holds.
	DailyQuota bool `envconfig:"BORROW_DAILY_QUOTA" default:"true"`
	// LoanDays is the default loan length when the caller omits returnDate.
	LoanDays int `envconfig:"BORROW_LOAN_DAYS" default:"1"`
}

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	cfg  Config
}

func NewService(repo repository.Repository, log *zap.Logger, cfg Config) *Service {
	return &Service{
		log:  log,
		repo: repo,
		cfg:  cfg,
	}
}

func (s *Service) CreateBorrowRequest(ctx context.Context, borrower string, req model.CreateBorrowRequest) (model.Request, error) {
	now := time.Now()
	borrowDate := now
	if req.BorrowDate != "" {
		d, err := time.Parse(time.DateOnly, req.BorrowDate)
		if err != nil {
			return model.Request{}, fmt.Errorf("%w: borrowDate: %v", errs.ErrInvalidInput, err)
		}
		borrowDate = d
	}
	returnDate := borrowDate.AddDate(0, 0, s.cfg.LoanDays)
	if req.ReturnDate != "" {
		d, err := time.Parse(time.DateOnly, req.ReturnDate)
		if err != nil {
			return model.Request{}, fmt.Errorf("%w: returnDate: %v", errs.ErrInvalidInput, err)
		}
		returnDate = d
	}
	if returnDate.Before(borrowDate) {
		return model.Request{}, fmt.Errorf("%w: returnDate before borrowDate", errs.ErrInvalidInput)
	}

	return s.repo.CreateBorrowRequest(ctx, model.BorrowParams{
		Borrower:   borrower,
		AssetID:    req.AssetID,
		BorrowDate: borrowDate,
		ReturnDate: returnDate,
		DailyQuota: s.cfg.DailyQuota,
	})
}

func (s *Service) ApproveRequest(ctx context.Context, requestID int, lender string) (model.RequestRef, error) {
	return s.repo.ApproveRequest(ctx, requestID, lender)
}

func (s *Service) RejectRequest(ctx context.Context, requestID int, lender string) (model.RequestRef, error) {
	return s.repo.RejectRequest(ctx, requestID, lender)
}

func (s *Service) RequestReturn(ctx context.Context, requestID int, borrower string) (model.RequestRef, error) {
	return s.repo.RequestReturn(ctx, requestID, borrower)
}

func (s *Service) ConfirmReturn(ctx context.Context, requestID int, staff string) (model.RequestRef, error) {
	return s.repo.ConfirmReturn(ctx, requestID, staff)
}

func (s *Service) DisableAsset(ctx context.Context, assetID int) error {
	return s.repo.DisableAsset(ctx, assetID)
}

func (s *Service) EnableAsset(ctx context.Context, assetID int) error {
	return s.repo.EnableAsset(ctx, assetID)
}

// GetAssetView lists every asset with its derived display status. When
// borrower is non-empty only that borrower's own active request is attached;
// an empty borrower means a privileged (staff/lender) view with every active
// request visible.
func (s *Service) GetAssetView(ctx context.Context, borrower string) ([]model.AssetView, error) {
	items, err := s.repo.GetAssets(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.AssetView, 0, len(items))
	for _, item := range items {
		view := model.AssetView{
			Asset:         item.Asset,
			DerivedStatus: model.DeriveStatus(item.Status, item.ActiveRequest),
		}
		if item.ActiveRequest != nil &&
			(borrower == "" || item.ActiveRequest.Borrower == borrower) {
			view.ActiveRequest = item.ActiveRequest
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) GetBorrowerStatus(ctx context.Context, borrower string) ([]model.RequestDetail, error) {
	return s.repo.GetBorrowerStatus(ctx, borrower)
}

func (s *Service) GetBorrowerHistory(ctx context.Context, borrower string) ([]model.RequestDetail, error) {
	return s.repo.GetBorrowerHistory(ctx, borrower)
}

func (s *Service) PendingRequests(ctx context.Context) ([]model.RequestDetail, error) {
	return s.repo.PendingRequests(ctx)
}

func (s *Service) RequestedReturns(ctx context.Context) ([]model.RequestDetail, error) {
	return s.repo.RequestedReturns(ctx)
}

func (s *Service) CreateAsset(ctx context.Context, req model.CreateAssetRequest) (model.Asset, error) {
	return s.repo.CreateAsset(ctx, req)
}

func (s *Service) UpdateAsset(ctx context.Context, assetID int, req model.UpdateAssetRequest) error {
	if req.Name == nil && req.Description == nil && req.Image == nil {
		return fmt.Errorf("%w: nothing to update", errs.ErrInvalidInput)
	}
	return s.repo.UpdateAsset(ctx, assetID, req)
}

func (s *Service) DeleteAsset(ctx context.Context, assetID int) error {
	return s.repo.DeleteAsset(ctx, assetID)
}

func (s *Service) ListAssets(ctx context.Context) ([]model.Asset, error) {
	return s.repo.ListAssets(ctx)
}
