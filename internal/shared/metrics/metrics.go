package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commit outcomes
const (
	OutcomeConfirmed         = "confirmed"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeSoldOut           = "sold_out"
	OutcomeIncomplete        = "incomplete"
	OutcomeFailed            = "failed"
)

var (
	bookingCommits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "busline_booking_commits_total",
		Help: "Booking commit attempts by outcome",
	}, []string{"outcome"})

	ticketsSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "busline_tickets_sold_total",
		Help: "The total number of tickets sold",
	})

	walletTopUps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "busline_wallet_topups_total",
		Help: "The total number of successful wallet top ups",
	})

	eventPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "busline_booking_event_publish_errors_total",
		Help: "The total number of booking events that failed to publish",
	})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "busline_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func BookingCommit(outcome string, tickets int) {
	bookingCommits.WithLabelValues(outcome).Inc()
	if outcome == OutcomeConfirmed {
		ticketsSold.Add(float64(tickets))
	}
}

func WalletTopUp() {
	walletTopUps.Inc()
}

func EventPublishFailed() {
	eventPublishErrors.Inc()
}

// Middleware records request latency by route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
