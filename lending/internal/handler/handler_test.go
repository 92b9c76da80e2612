package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/napat-dev/lending-service/lending/internal/errs"
	"github.com/napat-dev/lending-service/lending/internal/handler"
	"github.com/napat-dev/lending-service/lending/internal/model"
	"github.com/napat-dev/lending-service/pkg/auth"
	"github.com/napat-dev/lending-service/pkg/kafka"
	"github.com/napat-dev/lending-service/pkg/validate"

	service_mocks "github.com/napat-dev/lending-service/lending/internal/handler/mocks"
)

type testEnv struct {
	e        *echo.Echo
	svc      *service_mocks.MockLendingService
	enqueuer *service_mocks.MockEnqueuer
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)

	svc := service_mocks.NewMockLendingService(c)
	enqueuer := service_mocks.NewMockEnqueuer(c)
	h := handler.New(svc, enqueuer, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/v1/assets", h.GetAssets)
	e.POST("/api/v1/borrow", h.CreateBorrowRequest)
	e.POST("/api/v1/borrow/:requestId/return", h.RequestReturn)
	e.PUT("/api/v1/lender/requests/:requestId/approve", h.ApproveRequest)
	e.PUT("/api/v1/lender/requests/:requestId/reject", h.RejectRequest)
	e.PUT("/api/v1/staff/returns/:requestId", h.ConfirmReturn)
	e.PUT("/api/v1/staff/assets/:assetId/disable", h.DisableAsset)
	e.PUT("/api/v1/staff/assets/:assetId/enable", h.EnableAsset)
	e.POST("/api/v1/staff/assets", h.CreateAsset)
	e.DELETE("/api/v1/staff/assets/:assetId", h.DeleteAsset)

	return testEnv{e: e, svc: svc, enqueuer: enqueuer}
}

func doRequest(env testEnv, method, target, body, username, role string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r = r.WithContext(auth.SetAuthContext(r.Context(), username, role))
	w := httptest.NewRecorder()
	env.e.ServeHTTP(w, r)
	return w
}

func TestHandler_CreateBorrowRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		bodyContains string
	}
	type mockBehavior func(env testEnv)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "created",
			body: `{"assetId":7}`,
			mockBehavior: func(env testEnv) {
				env.svc.EXPECT().
					CreateBorrowRequest(gomock.Any(), "alice", model.CreateBorrowRequest{AssetID: 7}).
					Return(model.Request{ID: 1, Borrower: "alice", AssetID: 7,
						Approval: model.ApprovalPending, Return: model.ReturnNotReturned}, nil)
				env.enqueuer.EXPECT().Enqueue(kafka.LendingTopic, gomock.Any()).Return(nil)
			},
			response: response{expectedCode: http.StatusCreated, bodyContains: `"requestId":1`},
		},
		{
			name:         "missing assetId",
			body:         `{}`,
			mockBehavior: func(env testEnv) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "asset unavailable",
			body: `{"assetId":7}`,
			mockBehavior: func(env testEnv) {
				env.svc.EXPECT().
					CreateBorrowRequest(gomock.Any(), "alice", gomock.Any()).
					Return(model.Request{}, errs.ErrAssetUnavailable)
			},
			response: response{expectedCode: http.StatusConflict},
		},
		{
			name: "quota exceeded",
			body: `{"assetId":7}`,
			mockBehavior: func(env testEnv) {
				env.svc.EXPECT().
					CreateBorrowRequest(gomock.Any(), "alice", gomock.Any()).
					Return(model.Request{}, errs.ErrQuotaExceeded)
			},
			response: response{expectedCode: http.StatusConflict},
		},
		{
			name: "broker down still succeeds",
			body: `{"assetId":7}`,
			mockBehavior: func(env testEnv) {
				env.svc.EXPECT().
					CreateBorrowRequest(gomock.Any(), "alice", gomock.Any()).
					Return(model.Request{ID: 1, Borrower: "alice", AssetID: 7}, nil)
				env.enqueuer.EXPECT().
					Enqueue(kafka.LendingTopic, gomock.Any()).
					Return(errors.New("kafka: broker down"))
			},
			response: response{expectedCode: http.StatusCreated},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			tt.mockBehavior(env)

			w := doRequest(env, http.MethodPost, "/api/v1/borrow", tt.body, "alice", auth.RoleBorrower)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			}
		})
	}
}

func TestHandler_ApproveRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
	}
	type mockBehavior func(env testEnv)

	ref := model.RequestRef{RequestID: 5, AssetID: 7, Borrower: "alice"}

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/api/v1/lender/requests/5/approve",
			mockBehavior: func(env testEnv) {
				env.svc.EXPECT().ApproveRequest(gomock.Any(), 5, "lena").Return(ref, nil)
				env.enqueuer.EXPECT().Enqueue(kafka.LendingTopic, gomock.Any()).Return(nil)
			},
			response: response{expectedCode: http.StatusOK},
		},
		{
			name:   "already processed",
			target: "/api/v1/lender/requests/5/approve",
			mockBehavior: func(env testEnv) {
				env.svc.EXPECT().ApproveRequest(gomock.Any(), 5, "lena").
					Return(model.RequestRef{}, errs.ErrNotPending)
			},
			response: response{expectedCode: http.StatusConflict},
		},
		{
			name:         "bad request id",
			target:       "/api/v1/lender/requests/abc/approve",
			mockBehavior: func(env testEnv) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			tt.mockBehavior(env)

			w := doRequest(env, http.MethodPut, tt.target, "", "lena", auth.RoleLender)
			require.Equal(t, tt.response.expectedCode, w.Code)
		})
	}
}

func TestHandler_ReturnFlow(t *testing.T) {
	t.Parallel()

	t.Run("borrower requests return", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		ref := model.RequestRef{RequestID: 5, AssetID: 7, Borrower: "alice"}
		env.svc.EXPECT().RequestReturn(gomock.Any(), 5, "alice").Return(ref, nil)
		env.enqueuer.EXPECT().Enqueue(kafka.LendingTopic, gomock.Any()).Return(nil)

		w := doRequest(env, http.MethodPost, "/api/v1/borrow/5/return", "", "alice", auth.RoleBorrower)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("return on foreign request conflicts", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().RequestReturn(gomock.Any(), 5, "bob").
			Return(model.RequestRef{}, errs.ErrNotApproved)

		w := doRequest(env, http.MethodPost, "/api/v1/borrow/5/return", "", "bob", auth.RoleBorrower)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("staff confirms return", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		ref := model.RequestRef{RequestID: 5, AssetID: 7, Borrower: "alice"}
		env.svc.EXPECT().ConfirmReturn(gomock.Any(), 5, "sam").Return(ref, nil)
		env.enqueuer.EXPECT().Enqueue(kafka.LendingTopic, gomock.Any()).Return(nil)

		w := doRequest(env, http.MethodPut, "/api/v1/staff/returns/5", "", "sam", auth.RoleStaff)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("confirm without requested return conflicts", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().ConfirmReturn(gomock.Any(), 5, "sam").
			Return(model.RequestRef{}, errs.ErrNotAwaitingReturn)

		w := doRequest(env, http.MethodPut, "/api/v1/staff/returns/5", "", "sam", auth.RoleStaff)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_GetAssets(t *testing.T) {
	t.Parallel()

	views := []model.AssetView{
		{Asset: model.Asset{ID: 1, Name: "drill", Status: model.AssetBorrowed}, DerivedStatus: "Borrowed"},
	}

	t.Run("borrower scoped to own requests", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().GetAssetView(gomock.Any(), "alice").Return(views, nil)

		w := doRequest(env, http.MethodGet, "/api/v1/assets", "", "alice", auth.RoleBorrower)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"derivedStatus":"Borrowed"`)
	})

	t.Run("staff gets privileged view", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().GetAssetView(gomock.Any(), "").Return(views, nil)

		w := doRequest(env, http.MethodGet, "/api/v1/assets", "", "sam", auth.RoleStaff)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_AssetAdmin(t *testing.T) {
	t.Parallel()

	t.Run("disable", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().DisableAsset(gomock.Any(), 7).Return(nil)

		w := doRequest(env, http.MethodPut, "/api/v1/staff/assets/7/disable", "", "sam", auth.RoleStaff)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"status":"Disabled"`)
	})

	t.Run("disable borrowed asset conflicts", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().DisableAsset(gomock.Any(), 7).Return(errs.ErrAssetBorrowed)

		w := doRequest(env, http.MethodPut, "/api/v1/staff/assets/7/disable", "", "sam", auth.RoleStaff)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("enable missing asset", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().EnableAsset(gomock.Any(), 99).Return(errs.ErrNotFound)

		w := doRequest(env, http.MethodPut, "/api/v1/staff/assets/99/enable", "", "sam", auth.RoleStaff)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create asset", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().
			CreateAsset(gomock.Any(), model.CreateAssetRequest{Name: "drill", Description: "cordless"}).
			Return(model.Asset{ID: 7, Name: "drill", Description: "cordless", Status: model.AssetAvailable}, nil)

		w := doRequest(env, http.MethodPost, "/api/v1/staff/assets",
			`{"name":"drill","description":"cordless"}`, "sam", auth.RoleStaff)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("create asset without name", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		w := doRequest(env, http.MethodPost, "/api/v1/staff/assets",
			`{"description":"cordless"}`, "sam", auth.RoleStaff)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete referenced asset conflicts", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.svc.EXPECT().DeleteAsset(gomock.Any(), 7).Return(errs.ErrAssetInUse)

		w := doRequest(env, http.MethodDelete, "/api/v1/staff/assets/7", "", "sam", auth.RoleStaff)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
