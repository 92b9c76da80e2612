package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/napat-dev/lending-service/lending/internal/errs"
	"github.com/napat-dev/lending-service/lending/internal/model"
	"github.com/napat-dev/lending-service/lending/internal/service"
)

// fakeRepo is an in-memory store with the same guard semantics as the SQL
// repository, so full lifecycle sequences can run without a database.
type fakeRepo struct {
	assets   map[int]*model.Asset
	requests map[int]*model.Request
	nextID   int
}

func newFakeRepo(assets ...model.Asset) *fakeRepo {
	r := &fakeRepo{
		assets:   make(map[int]*model.Asset),
		requests: make(map[int]*model.Request),
		nextID:   1,
	}
	for i := range assets {
		a := assets[i]
		r.assets[a.ID] = &a
	}
	return r
}

func (r *fakeRepo) activeFor(borrower string, sameDay *time.Time) bool {
	for _, req := range r.requests {
		if req.Borrower != borrower || !req.Active() {
			continue
		}
		if sameDay == nil || req.BorrowDate.Format(time.DateOnly) == sameDay.Format(time.DateOnly) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateBorrowRequest(_ context.Context, p model.BorrowParams) (model.Request, error) {
	a, ok := r.assets[p.AssetID]
	if !ok || a.Status != model.AssetAvailable {
		return model.Request{}, errs.ErrAssetUnavailable
	}
	if r.activeFor(p.Borrower, nil) {
		return model.Request{}, errs.ErrQuotaExceeded
	}
	if p.DailyQuota && r.activeFor(p.Borrower, &p.BorrowDate) {
		return model.Request{}, errs.ErrQuotaExceeded
	}
	a.Status = model.AssetPending
	req := &model.Request{
		ID:         r.nextID,
		Borrower:   p.Borrower,
		AssetID:    p.AssetID,
		BorrowDate: p.BorrowDate,
		ReturnDate: p.ReturnDate,
		Approval:   model.ApprovalPending,
		Return:     model.ReturnNotReturned,
	}
	r.nextID++
	r.requests[req.ID] = req
	return *req, nil
}

func (r *fakeRepo) ApproveRequest(_ context.Context, requestID int, lender string) (model.RequestRef, error) {
	req, ok := r.requests[requestID]
	if !ok || req.Approval != model.ApprovalPending {
		return model.RequestRef{}, errs.ErrNotPending
	}
	req.Approval = model.ApprovalApproved
	req.Lender = &lender
	r.assets[req.AssetID].Status = model.AssetBorrowed
	return model.RequestRef{RequestID: requestID, AssetID: req.AssetID, Borrower: req.Borrower}, nil
}

func (r *fakeRepo) RejectRequest(_ context.Context, requestID int, lender string) (model.RequestRef, error) {
	req, ok := r.requests[requestID]
	if !ok || req.Approval != model.ApprovalPending {
		return model.RequestRef{}, errs.ErrNotPending
	}
	req.Approval = model.ApprovalRejected
	req.Lender = &lender
	r.assets[req.AssetID].Status = model.AssetAvailable
	return model.RequestRef{RequestID: requestID, AssetID: req.AssetID, Borrower: req.Borrower}, nil
}

func (r *fakeRepo) RequestReturn(_ context.Context, requestID int, borrower string) (model.RequestRef, error) {
	req, ok := r.requests[requestID]
	if !ok || req.Borrower != borrower ||
		req.Approval != model.ApprovalApproved || req.Return != model.ReturnNotReturned {
		return model.RequestRef{}, errs.ErrNotApproved
	}
	req.Return = model.ReturnRequestedReturn
	return model.RequestRef{RequestID: requestID, AssetID: req.AssetID, Borrower: borrower}, nil
}

func (r *fakeRepo) ConfirmReturn(_ context.Context, requestID int, staff string) (model.RequestRef, error) {
	req, ok := r.requests[requestID]
	if !ok || req.Approval != model.ApprovalApproved || req.Return != model.ReturnRequestedReturn {
		return model.RequestRef{}, errs.ErrNotAwaitingReturn
	}
	now := time.Now()
	req.Return = model.ReturnReturned
	req.Staff = &staff
	req.ActualReturnDate = &now
	r.assets[req.AssetID].Status = model.AssetAvailable
	return model.RequestRef{RequestID: requestID, AssetID: req.AssetID, Borrower: req.Borrower}, nil
}

func (r *fakeRepo) DisableAsset(_ context.Context, assetID int) error {
	a, ok := r.assets[assetID]
	if !ok {
		return errs.ErrNotFound
	}
	if a.Status == model.AssetBorrowed {
		return errs.ErrAssetBorrowed
	}
	a.Status = model.AssetDisabled
	for _, req := range r.requests {
		if req.AssetID == assetID && req.Approval == model.ApprovalPending {
			req.Approval = model.ApprovalRejected
		}
	}
	return nil
}

func (r *fakeRepo) EnableAsset(_ context.Context, assetID int) error {
	a, ok := r.assets[assetID]
	if !ok {
		return errs.ErrNotFound
	}
	if a.Status == model.AssetDisabled {
		a.Status = model.AssetAvailable
	}
	return nil
}

func (r *fakeRepo) GetAssets(_ context.Context) ([]model.AssetWithRequest, error) {
	items := make([]model.AssetWithRequest, 0, len(r.assets))
	for _, a := range r.assets {
		item := model.AssetWithRequest{Asset: *a}
		for _, req := range r.requests {
			if req.AssetID == a.ID && req.Active() {
				cp := *req
				item.ActiveRequest = &cp
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeRepo) GetBorrowerStatus(_ context.Context, borrower string) ([]model.RequestDetail, error) {
	var items []model.RequestDetail
	for _, req := range r.requests {
		if req.Borrower == borrower && req.Active() {
			items = append(items, model.RequestDetail{Request: *req, AssetName: r.assets[req.AssetID].Name})
		}
	}
	return items, nil
}

func (r *fakeRepo) GetBorrowerHistory(_ context.Context, borrower string) ([]model.RequestDetail, error) {
	var items []model.RequestDetail
	for _, req := range r.requests {
		if req.Borrower == borrower && !req.Active() {
			items = append(items, model.RequestDetail{Request: *req, AssetName: r.assets[req.AssetID].Name})
		}
	}
	return items, nil
}

func (r *fakeRepo) PendingRequests(_ context.Context) ([]model.RequestDetail, error) {
	var items []model.RequestDetail
	for _, req := range r.requests {
		if req.Approval == model.ApprovalPending {
			items = append(items, model.RequestDetail{Request: *req, AssetName: r.assets[req.AssetID].Name})
		}
	}
	return items, nil
}

func (r *fakeRepo) RequestedReturns(_ context.Context) ([]model.RequestDetail, error) {
	var items []model.RequestDetail
	for _, req := range r.requests {
		if req.Approval == model.ApprovalApproved && req.Return == model.ReturnRequestedReturn {
			items = append(items, model.RequestDetail{Request: *req, AssetName: r.assets[req.AssetID].Name})
		}
	}
	return items, nil
}

func (r *fakeRepo) CreateAsset(_ context.Context, req model.CreateAssetRequest) (model.Asset, error) {
	a := &model.Asset{ID: r.nextID, Name: req.Name, Description: req.Description, Image: req.Image, Status: model.AssetAvailable}
	r.nextID++
	r.assets[a.ID] = a
	return *a, nil
}

func (r *fakeRepo) UpdateAsset(_ context.Context, assetID int, req model.UpdateAssetRequest) error {
	a, ok := r.assets[assetID]
	if !ok {
		return errs.ErrNotFound
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Image != nil {
		a.Image = *req.Image
	}
	return nil
}

func (r *fakeRepo) DeleteAsset(_ context.Context, assetID int) error {
	if _, ok := r.assets[assetID]; !ok {
		return errs.ErrNotFound
	}
	for _, req := range r.requests {
		if req.AssetID == assetID {
			return errs.ErrAssetInUse
		}
	}
	delete(r.assets, assetID)
	return nil
}

func (r *fakeRepo) ListAssets(_ context.Context) ([]model.Asset, error) {
	assets := make([]model.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		assets = append(assets, *a)
	}
	return assets, nil
}

func assetStatus(t *testing.T, repo *fakeRepo, assetID int) model.AssetStatus {
	t.Helper()
	a, ok := repo.assets[assetID]
	require.True(t, ok)
	return a.Status
}

func TestService_BorrowRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(
		model.Asset{ID: 1, Name: "drill", Status: model.AssetAvailable},
		model.Asset{ID: 2, Name: "ladder", Status: model.AssetAvailable},
	)
	svc := service.NewService(repo, zap.NewNop(), service.Config{DailyQuota: true, LoanDays: 1})
	ctx := context.Background()
	today := time.Now().Format(time.DateOnly)

	req, err := svc.CreateBorrowRequest(ctx, "alice", model.CreateBorrowRequest{AssetID: 1, BorrowDate: today})
	require.NoError(t, err)
	require.Equal(t, model.ApprovalPending, req.Approval)
	require.Equal(t, model.AssetPending, assetStatus(t, repo, 1))

	// the asset is held and alice's quota is used
	_, err = svc.CreateBorrowRequest(ctx, "bob", model.CreateBorrowRequest{AssetID: 1, BorrowDate: today})
	require.ErrorIs(t, err, errs.ErrAssetUnavailable)
	_, err = svc.CreateBorrowRequest(ctx, "alice", model.CreateBorrowRequest{AssetID: 2, BorrowDate: today})
	require.ErrorIs(t, err, errs.ErrQuotaExceeded)

	_, err = svc.ApproveRequest(ctx, req.ID, "lena")
	require.NoError(t, err)
	require.Equal(t, model.AssetBorrowed, assetStatus(t, repo, 1))

	_, err = svc.ApproveRequest(ctx, req.ID, "lena")
	require.ErrorIs(t, err, errs.ErrNotPending)

	views, err := svc.GetAssetView(ctx, "")
	require.NoError(t, err)
	for _, v := range views {
		if v.ID == 1 {
			require.Equal(t, "Borrowed", v.DerivedStatus)
		}
	}

	_, err = svc.RequestReturn(ctx, req.ID, "bob")
	require.ErrorIs(t, err, errs.ErrNotApproved)
	_, err = svc.RequestReturn(ctx, req.ID, "alice")
	require.NoError(t, err)
	_, err = svc.RequestReturn(ctx, req.ID, "alice")
	require.ErrorIs(t, err, errs.ErrNotApproved)

	views, err = svc.GetAssetView(ctx, "")
	require.NoError(t, err)
	for _, v := range views {
		if v.ID == 1 {
			require.Equal(t, "Pending Return", v.DerivedStatus)
		}
	}

	_, err = svc.ConfirmReturn(ctx, req.ID, "sam")
	require.NoError(t, err)
	require.Equal(t, model.AssetAvailable, assetStatus(t, repo, 1))

	done := repo.requests[req.ID]
	require.Equal(t, model.ReturnReturned, done.Return)
	require.NotNil(t, done.ActualReturnDate)
	require.NotNil(t, done.Staff)

	_, err = svc.ConfirmReturn(ctx, req.ID, "sam")
	require.ErrorIs(t, err, errs.ErrNotAwaitingReturn)

	history, err := svc.GetBorrowerHistory(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
	status, err := svc.GetBorrowerStatus(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, status)

	// the completed round trip frees the asset and the quota, same day included
	again, err := svc.CreateBorrowRequest(ctx, "alice", model.CreateBorrowRequest{AssetID: 1, BorrowDate: today})
	require.NoError(t, err)
	require.Equal(t, model.ApprovalPending, again.Approval)
	require.Equal(t, model.AssetPending, assetStatus(t, repo, 1))
}

func TestService_RejectRestoresAvailability(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(model.Asset{ID: 1, Name: "drill", Status: model.AssetAvailable})
	svc := service.NewService(repo, zap.NewNop(), service.Config{DailyQuota: true, LoanDays: 1})
	ctx := context.Background()
	today := time.Now().Format(time.DateOnly)

	req, err := svc.CreateBorrowRequest(ctx, "alice", model.CreateBorrowRequest{AssetID: 1, BorrowDate: today})
	require.NoError(t, err)

	_, err = svc.RejectRequest(ctx, req.ID, "lena")
	require.NoError(t, err)
	require.Equal(t, model.AssetAvailable, assetStatus(t, repo, 1))
	require.Equal(t, model.ApprovalRejected, repo.requests[req.ID].Approval)

	_, err = svc.RejectRequest(ctx, req.ID, "lena")
	require.ErrorIs(t, err, errs.ErrNotPending)

	// a rejected request does not hold the quota
	_, err = svc.CreateBorrowRequest(ctx, "alice", model.CreateBorrowRequest{AssetID: 1, BorrowDate: today})
	require.NoError(t, err)
}

func TestService_DisableWithPendingRequest(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(model.Asset{ID: 1, Name: "drill", Status: model.AssetAvailable})
	svc := service.NewService(repo, zap.NewNop(), service.Config{DailyQuota: true, LoanDays: 1})
	ctx := context.Background()

	req, err := svc.CreateBorrowRequest(ctx, "alice", model.CreateBorrowRequest{AssetID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DisableAsset(ctx, 1))
	require.Equal(t, model.AssetDisabled, assetStatus(t, repo, 1))
	require.Equal(t, model.ApprovalRejected, repo.requests[req.ID].Approval)

	_, err = svc.ApproveRequest(ctx, req.ID, "lena")
	require.ErrorIs(t, err, errs.ErrNotPending)

	_, err = svc.CreateBorrowRequest(ctx, "bob", model.CreateBorrowRequest{AssetID: 1})
	require.ErrorIs(t, err, errs.ErrAssetUnavailable)

	require.NoError(t, svc.EnableAsset(ctx, 1))
	require.Equal(t, model.AssetAvailable, assetStatus(t, repo, 1))

	_, err = svc.CreateBorrowRequest(ctx, "bob", model.CreateBorrowRequest{AssetID: 1})
	require.NoError(t, err)
}
