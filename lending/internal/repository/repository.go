package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/napat-dev/lending-service/lending/internal/errs"
	"github.com/napat-dev/lending-service/lending/internal/model"

	sq "github.com/Masterminds/squirrel"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

type Repository interface {
	CreateBorrowRequest(ctx context.Context, p model.BorrowParams) (model.Request, error)
	ApproveRequest(ctx context.Context, requestID int, lender string) (model.RequestRef, error)
	RejectRequest(ctx context.Context, requestID int, lender string) (model.RequestRef, error)
	RequestReturn(ctx context.Context, requestID int, borrower string) (model.RequestRef, error)
	ConfirmReturn(ctx context.Context, requestID int, staff string) (model.RequestRef, error)
	DisableAsset(ctx context.Context, assetID int) error
	EnableAsset(ctx context.Context, assetID int) error

	GetAssets(ctx context.Context) ([]model.AssetWithRequest, error)
	GetBorrowerStatus(ctx context.Context, borrower string) ([]model.RequestDetail, error)
	GetBorrowerHistory(ctx context.Context, borrower string) ([]model.RequestDetail, error)
	PendingRequests(ctx context.Context) ([]model.RequestDetail, error)
	RequestedReturns(ctx context.Context) ([]model.RequestDetail, error)

	CreateAsset(ctx context.Context, req model.CreateAssetRequest) (model.Asset, error)
	UpdateAsset(ctx context.Context, assetID int, req model.UpdateAssetRequest) error
	DeleteAsset(ctx context.Context, assetID int) error
	ListAssets(ctx context.Context) ([]model.Asset, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	assetTableName      = `asset`
	requestLogTableName = `request_log`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// execGuarded is the conditional-update-as-optimistic-lock primitive: the
// WHERE clause re-asserts the precondition, and zero affected rows means the
// guard no longer holds (lost race or already-processed row), reported as
// errGuard, never as success.
func execGuarded(ctx context.Context, tx sqlx.ExtContext, q string, errGuard error, args ...any) error {
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errGuard
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func (r *repository) CreateBorrowRequest(ctx context.Context, p model.BorrowParams) (model.Request, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Request{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `
	update asset set asset_status = 'Pending'
	where asset_id = $1 and asset_status = 'Available'`
	if err := execGuarded(ctx, tx, q, errs.ErrAssetUnavailable, p.AssetID); err != nil {
		return model.Request{}, err
	}

	// The NOT EXISTS guard enforces the one-active-borrow rule; the same-day
	// clause is the configurable calendar quota layered on top of it. Both
	// count only active rows: a returned or rejected borrow frees the quota
	// again, same day included.
	quota := `
		select 1 from request_log
		where borrower = $1
		  and approval_status in ('Pending', 'Approved')
		  and return_status in ('Not Returned', 'Requested Return')`
	if p.DailyQuota {
		quota += `
		union all
		select 1 from request_log
		where borrower = $1 and borrow_date = $3::date
		  and approval_status in ('Pending', 'Approved')
		  and return_status in ('Not Returned', 'Requested Return')`
	}

	insert := `
	insert into request_log (borrower, asset_id, borrow_date, return_date, approval_status, return_status)
	select $1, $2, $3::date, $4::date, 'Pending', 'Not Returned'
	where not exists (` + quota + `)
	returning request_id, borrower, asset_id, lender, staff, borrow_date, return_date, actual_return_date, approval_status, return_status`

	var req model.Request
	err = tx.QueryRowxContext(ctx, insert,
		p.Borrower, p.AssetID, p.BorrowDate.Format(time.DateOnly), p.ReturnDate.Format(time.DateOnly)).
		StructScan(&req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return model.Request{}, errs.ErrQuotaExceeded
		}
		r.log.Error("CreateBorrowRequest", zap.Error(err))
		return model.Request{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Request{}, err
	}
	return req, nil
}

func (r *repository) ApproveRequest(ctx context.Context, requestID int, lender string) (model.RequestRef, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.RequestRef{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `
	update request_log set approval_status = 'Approved', lender = $1
	where request_id = $2 and approval_status = 'Pending'
	returning asset_id, borrower`

	ref := model.RequestRef{RequestID: requestID}
	if err := tx.QueryRowContext(ctx, q, lender, requestID).Scan(&ref.AssetID, &ref.Borrower); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RequestRef{}, errs.ErrNotPending
		}
		return model.RequestRef{}, err
	}

	q = `
	update asset set asset_status = 'Borrowed'
	where asset_id = $1 and asset_status = 'Pending'`
	if err := execGuarded(ctx, tx, q, errs.ErrConflict, ref.AssetID); err != nil {
		return model.RequestRef{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.RequestRef{}, err
	}
	return ref, nil
}

func (r *repository) RejectRequest(ctx context.Context, requestID int, lender string) (model.RequestRef, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.RequestRef{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `
	update request_log set approval_status = 'Rejected', lender = $1
	where request_id = $2 and approval_status = 'Pending'
	returning asset_id, borrower`

	ref := model.RequestRef{RequestID: requestID}
	if err := tx.QueryRowContext(ctx, q, lender, requestID).Scan(&ref.AssetID, &ref.Borrower); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RequestRef{}, errs.ErrNotPending
		}
		return model.RequestRef{}, err
	}

	q = `
	update asset set asset_status = 'Available'
	where asset_id = $1 and asset_status = 'Pending'`
	if err := execGuarded(ctx, tx, q, errs.ErrConflict, ref.AssetID); err != nil {
		return model.RequestRef{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.RequestRef{}, err
	}
	return ref, nil
}

// RequestReturn touches request_log only; the asset stays Borrowed until
// staff confirms the physical return.
func (r *repository) RequestReturn(ctx context.Context, requestID int, borrower string) (model.RequestRef, error) {
	q := `
	update request_log set return_status = 'Requested Return'
	where request_id = $1 and borrower = $2
	  and approval_status = 'Approved' and return_status = 'Not Returned'
	returning asset_id`

	ref := model.RequestRef{RequestID: requestID, Borrower: borrower}
	if err := r.db.QueryRowContext(ctx, q, requestID, borrower).Scan(&ref.AssetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RequestRef{}, errs.ErrNotApproved
		}
		return model.RequestRef{}, err
	}
	return ref, nil
}

func (r *repository) ConfirmReturn(ctx context.Context, requestID int, staff string) (model.RequestRef, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.RequestRef{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `
	update request_log set return_status = 'Returned', staff = $1, actual_return_date = now()
	where request_id = $2
	  and approval_status = 'Approved' and return_status = 'Requested Return'
	returning asset_id, borrower`

	ref := model.RequestRef{RequestID: requestID}
	if err := tx.QueryRowContext(ctx, q, staff, requestID).Scan(&ref.AssetID, &ref.Borrower); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RequestRef{}, errs.ErrNotAwaitingReturn
		}
		return model.RequestRef{}, err
	}

	q = `
	update asset set asset_status = 'Available'
	where asset_id = $1 and asset_status = 'Borrowed'`
	if err := execGuarded(ctx, tx, q, errs.ErrConflict, ref.AssetID); err != nil {
		return model.RequestRef{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.RequestRef{}, err
	}
	return ref, nil
}

// DisableAsset takes the asset out of circulation and rejects any Pending
// request on it in the same transaction. A Borrowed asset cannot be disabled.
func (r *repository) DisableAsset(ctx context.Context, assetID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var status model.AssetStatus
	q := `select asset_status from asset where asset_id = $1 for update`
	if err := tx.QueryRowContext(ctx, q, assetID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	if status == model.AssetBorrowed {
		return errs.ErrAssetBorrowed
	}

	q = `
	update asset set asset_status = 'Disabled'
	where asset_id = $1 and asset_status <> 'Borrowed'`
	if err := execGuarded(ctx, tx, q, errs.ErrAssetBorrowed, assetID); err != nil {
		return err
	}

	q = `
	update request_log set approval_status = 'Rejected'
	where asset_id = $1 and approval_status = 'Pending'`
	if _, err := tx.ExecContext(ctx, q, assetID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) EnableAsset(ctx context.Context, assetID int) error {
	q := `
	update asset set asset_status = 'Available'
	where asset_id = $1 and asset_status = 'Disabled'`
	res, err := r.db.ExecContext(ctx, q, assetID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`select exists(select 1 from asset where asset_id = $1)`, assetID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errs.ErrNotFound
	}
	// not disabled in the first place: enabling is a no-op
	return nil
}

type assetRequestRow struct {
	model.Asset
	RequestID        *int                  `db:"request_id"`
	Borrower         *string               `db:"borrower"`
	Lender           *string               `db:"lender"`
	Staff            *string               `db:"staff"`
	BorrowDate       *time.Time            `db:"borrow_date"`
	ReturnDate       *time.Time            `db:"return_date"`
	ActualReturnDate *time.Time            `db:"actual_return_date"`
	Approval         *model.ApprovalStatus `db:"approval_status"`
	Return           *model.ReturnStatus   `db:"return_status"`
}

// GetAssets returns every asset with its active request, if any. The active
// request is unique per asset, so the join cannot fan out.
func (r *repository) GetAssets(ctx context.Context) ([]model.AssetWithRequest, error) {
	q := `
	select a.asset_id, a.asset_name, a.description, a.image, a.asset_status,
	       r.request_id, r.borrower, r.lender, r.staff,
	       r.borrow_date, r.return_date, r.actual_return_date,
	       r.approval_status, r.return_status
	from asset a
	left join request_log r
	    on a.asset_id = r.asset_id
	   and r.approval_status in ('Pending', 'Approved')
	   and r.return_status in ('Not Returned', 'Requested Return')
	order by a.asset_id`

	var rows []assetRequestRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}

	items := make([]model.AssetWithRequest, 0, len(rows))
	for _, row := range rows {
		item := model.AssetWithRequest{Asset: row.Asset}
		if row.RequestID != nil {
			item.ActiveRequest = &model.Request{
				ID:               *row.RequestID,
				Borrower:         *row.Borrower,
				AssetID:          row.Asset.ID,
				Lender:           row.Lender,
				Staff:            row.Staff,
				BorrowDate:       *row.BorrowDate,
				ReturnDate:       *row.ReturnDate,
				ActualReturnDate: row.ActualReturnDate,
				Approval:         *row.Approval,
				Return:           *row.Return,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

const requestDetailColumns = `r.request_id, r.borrower, r.asset_id, r.lender, r.staff,
	       r.borrow_date, r.return_date, r.actual_return_date,
	       r.approval_status, r.return_status,
	       a.asset_name, a.image`

func (r *repository) GetBorrowerStatus(ctx context.Context, borrower string) ([]model.RequestDetail, error) {
	q := `
	select ` + requestDetailColumns + `
	from request_log r
	join asset a on r.asset_id = a.asset_id
	where r.borrower = $1
	  and r.approval_status in ('Pending', 'Approved')
	  and r.return_status in ('Not Returned', 'Requested Return')
	order by r.request_id desc`

	var items []model.RequestDetail
	if err := r.db.SelectContext(ctx, &items, q, borrower); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetBorrowerHistory(ctx context.Context, borrower string) ([]model.RequestDetail, error) {
	q := `
	select ` + requestDetailColumns + `
	from request_log r
	join asset a on r.asset_id = a.asset_id
	where r.borrower = $1
	  and (r.approval_status = 'Rejected' or r.return_status = 'Returned')
	order by r.borrow_date desc, r.request_id desc`

	var items []model.RequestDetail
	if err := r.db.SelectContext(ctx, &items, q, borrower); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) PendingRequests(ctx context.Context) ([]model.RequestDetail, error) {
	q := `
	select ` + requestDetailColumns + `
	from request_log r
	join asset a on r.asset_id = a.asset_id
	where r.approval_status = 'Pending'
	order by r.request_id`

	var items []model.RequestDetail
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) RequestedReturns(ctx context.Context) ([]model.RequestDetail, error) {
	q := `
	select ` + requestDetailColumns + `
	from request_log r
	join asset a on r.asset_id = a.asset_id
	where r.approval_status = 'Approved' and r.return_status = 'Requested Return'
	order by r.request_id`

	var items []model.RequestDetail
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}
