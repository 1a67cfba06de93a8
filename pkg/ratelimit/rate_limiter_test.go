package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRateLimitType(t *testing.T) {
	tests := map[string]RateLimitType{
		"/health":                       RateLimitTypeHealth,
		"/metrics":                      RateLimitTypeHealth,
		"/admin_dashboard/":             RateLimitTypeAdmin,
		"/add_bus/":                     RateLimitTypeAdmin,
		"/login/":                       RateLimitTypeAuth,
		"/token/refresh/":               RateLimitTypeAuth,
		"/confirm_booking/:bus_id/":     RateLimitTypeBookingCritical,
		"/add_money/":                   RateLimitTypeBookingCritical,
		"/passenger_details/:bus_id/":   RateLimitTypeBooking,
		"/booking_success/:booking_id/": RateLimitTypeBooking,
		"/ticket_booking/":              RateLimitTypePublic,
		"/":                             RateLimitTypePublic,
		"/swagger/*any":                 RateLimitTypeDefault,
	}
	for path, want := range tests {
		assert.Equal(t, want, getRateLimitType(path), path)
	}
}

func TestIsAllowed_DisabledAndWhitelisted(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cfg := &Config{
		Enabled:        false,
		WindowDuration: time.Minute,
		AuthRequests:   10,
		WhitelistedIPs: []string{"10.0.0.1"},
	}
	limiter := NewRateLimiter(client, cfg)

	result, err := limiter.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypeAuth)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 10, result.Limit)

	cfg.Enabled = true
	result, err = limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeAuth)
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	// Neither path touches Redis
	assert.NoError(t, mock.ExpectationsWereMet())
}
