package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/napat-dev/lending-service/identity/internal/errs"
	"github.com/napat-dev/lending-service/identity/internal/handler"
	"github.com/napat-dev/lending-service/identity/internal/model"
	"github.com/napat-dev/lending-service/pkg/auth"
	"github.com/napat-dev/lending-service/pkg/validate"

	service_mocks "github.com/napat-dev/lending-service/identity/internal/handler/mocks"
)

func newAuthRouter(t *testing.T) (*echo.Echo, *service_mocks.MockAuthService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)

	svc := service_mocks.NewMockAuthService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/api/v1/register", h.Register)
	e.POST("/api/v1/authorize", h.Authorize)
	return e, svc
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
	}{
		{
			name: "created",
			body: `{"username":"alice","email":"alice@example.com","password":"secret1","repassword":"secret1","role":"borrower"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					RegisterUser(gomock.Any(), model.UserCreateRequest{
						Username:   "alice",
						Email:      "alice@example.com",
						Password:   "secret1",
						RePassword: "secret1",
						Role:       "borrower",
					}).
					Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "password mismatch",
			body:         `{"username":"alice","email":"alice@example.com","password":"secret1","repassword":"secret2"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown role",
			body:         `{"username":"alice","email":"alice@example.com","password":"secret1","repassword":"secret1","role":"admin"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","email":"alice@example.com","password":"secret1","repassword":"secret1"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(errs.ErrAlreadyExists)
			},
			expectedCode: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newAuthRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_Authorize(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := model.User{
		ID:       1,
		Username: "alice",
		Email:    "alice@example.com",
		Password: string(hash),
		Role:     auth.RoleBorrower,
	}

	t.Run("token carries username and role", func(t *testing.T) {
		t.Parallel()
		e, svc := newAuthRouter(t)
		svc.EXPECT().GetUser(gomock.Any(), "alice").Return(user, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
			strings.NewReader(`{"username":"alice","password":"secret1"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp model.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.AccessToken)

		claims := &auth.Claims{}
		token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
		require.Equal(t, "alice", claims.Profile.Username)
		require.Equal(t, auth.RoleBorrower, claims.Profile.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		e, svc := newAuthRouter(t)
		svc.EXPECT().GetUser(gomock.Any(), "alice").Return(user, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
			strings.NewReader(`{"username":"alice","password":"wrong"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		e, svc := newAuthRouter(t)
		svc.EXPECT().GetUser(gomock.Any(), "ghost").Return(model.User{}, errs.ErrNotFound)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
			strings.NewReader(`{"username":"ghost","password":"secret1"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
