package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_created_total",
			Help: "Total number of quotes persisted",
		},
	)

	QuoteLineItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_line_items_total",
			Help: "Total number of priced service line items",
		},
		[]string{"service_type", "classification"},
	)

	QuoteAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_amount_dollars",
			Help:    "Total amount of created quotes in dollars",
			Buckets: []float64{250, 500, 1000, 2500, 5000, 7500, 10000, 15000, 25000},
		},
	)

	QuoteNotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_notification_failures_total",
			Help: "Total number of quote confirmations that could not be sent",
		},
	)
)
