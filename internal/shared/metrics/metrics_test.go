package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandlerExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Middleware())
	engine.GET("/metrics", Handler())

	BookingCommit(OutcomeConfirmed, 3)
	BookingCommit(OutcomeInsufficientFunds, 3)
	WalletTopUp()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `busline_booking_commits_total{outcome="confirmed"}`)
	assert.Contains(t, body, `busline_booking_commits_total{outcome="insufficient_funds"}`)
	assert.Contains(t, body, "busline_tickets_sold_total 3")
	assert.Contains(t, body, "busline_wallet_topups_total 1")
}
