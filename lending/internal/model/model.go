package model

import (
	"time"
)

type AssetStatus string

const (
	AssetAvailable AssetStatus = "Available"
	AssetPending   AssetStatus = "Pending"
	AssetBorrowed  AssetStatus = "Borrowed"
	AssetDisabled  AssetStatus = "Disabled"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

type ReturnStatus string

const (
	ReturnNotReturned     ReturnStatus = "Not Returned"
	ReturnRequestedReturn ReturnStatus = "Requested Return"
	ReturnReturned        ReturnStatus = "Returned"
)

type Asset struct {
	ID          int         `json:"assetId" db:"asset_id"`
	Name        string      `json:"name" db:"asset_name"`
	Description string      `json:"description" db:"description"`
	Image       string      `json:"image" db:"image"`
	Status      AssetStatus `json:"status" db:"asset_status"`
}

// Request is one borrow transaction against an asset. A request is active
// while approval is Pending/Approved and return is Not Returned/Requested
// Return; at most one active request exists per asset and per borrower.
type Request struct {
	ID               int            `json:"requestId" db:"request_id"`
	Borrower         string         `json:"borrower" db:"borrower"`
	AssetID          int            `json:"assetId" db:"asset_id"`
	Lender           *string        `json:"lender,omitempty" db:"lender"`
	Staff            *string        `json:"staff,omitempty" db:"staff"`
	BorrowDate       time.Time      `json:"borrowDate" db:"borrow_date"`
	ReturnDate       time.Time      `json:"returnDate" db:"return_date"`
	ActualReturnDate *time.Time     `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	Approval         ApprovalStatus `json:"approvalStatus" db:"approval_status"`
	Return           ReturnStatus   `json:"returnStatus" db:"return_status"`
}

// RequestRef identifies the rows touched by a lifecycle transition.
type RequestRef struct {
	RequestID int
	AssetID   int
	Borrower  string
}

// RequestDetail is a request joined with its asset's display fields.
type RequestDetail struct {
	Request
	AssetName string `json:"assetName" db:"asset_name"`
	Image     string `json:"image" db:"image"`
}

// AssetWithRequest pairs an asset with its active request, if one exists.
type AssetWithRequest struct {
	Asset
	ActiveRequest *Request
}

type AssetView struct {
	Asset
	DerivedStatus string   `json:"derivedStatus"`
	ActiveRequest *Request `json:"activeRequest,omitempty"`
}

type BorrowParams struct {
	Borrower   string
	AssetID    int
	BorrowDate time.Time
	ReturnDate time.Time
	// DailyQuota additionally blocks a second borrow on the same calendar day.
	DailyQuota bool
}

type CreateBorrowRequest struct {
	AssetID    int    `json:"assetId" validate:"required"`
	BorrowDate string `json:"borrowDate,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`
}

type CreateAssetRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

type UpdateAssetRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// DeriveStatus recomputes the human-facing asset status from the active
// request instead of trusting the cached asset_status alone. Disabled wins
// over everything.
func DeriveStatus(assetStatus AssetStatus, req *Request) string {
	if assetStatus == AssetDisabled {
		return string(AssetDisabled)
	}
	if req == nil {
		return string(assetStatus)
	}
	switch {
	case req.Return == ReturnRequestedReturn:
		return "Pending Return"
	case req.Return == ReturnReturned || req.Approval == ApprovalRejected:
		return string(AssetAvailable)
	case req.Approval == ApprovalApproved:
		return string(AssetBorrowed)
	default:
		return string(AssetPending)
	}
}

// Active reports whether the request still holds its asset.
func (r *Request) Active() bool {
	return (r.Approval == ApprovalPending || r.Approval == ApprovalApproved) &&
		(r.Return == ReturnNotReturned || r.Return == ReturnRequestedReturn)
}
