package wallets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"busline/internal/shared/middleware"
	"busline/internal/shared/session"
	"busline/internal/users"
	"busline/pkg/money"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetBalance(ctx context.Context, userID uuid.UUID) (*Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Wallet), args.Error(1)
}

func (m *MockService) TopUp(ctx context.Context, userID uuid.UUID, amount money.Amount) (*Wallet, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Wallet), args.Error(1)
}

func setupRouter(svc Service, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, session.Context{UserID: userID, SessionID: "s1", Role: users.RoleUser})
	})
	ctrl := NewController(svc)
	r.GET("/add_money/", ctrl.GetBalance)
	r.POST("/add_money/", ctrl.TopUp)
	return r
}

func TestController_TopUp(t *testing.T) {
	userID := uuid.New()
	svc := new(MockService)
	svc.On("TopUp", mock.Anything, userID, money.MustParse("250.75")).
		Return(&Wallet{UserID: userID, Balance: money.MustParse("1250.75")}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add_money/", strings.NewReader(`{"amount": 250.75}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc, userID).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data TopUpResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, money.MustParse("1250.75"), body.Data.Balance)
	assert.Equal(t, "/ticket_booking/", body.Data.Redirect)
}

func TestController_TopUp_MissingAmount(t *testing.T) {
	svc := new(MockService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add_money/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc, uuid.New()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "TopUp", mock.Anything, mock.Anything, mock.Anything)
}
