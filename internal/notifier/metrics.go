package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "notifier",
		Name:      "notifications_sent_total",
		Help:      "Total number of order notifications delivered to Telegram.",
	})

	notificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "notifier",
		Name:      "notifications_failed_total",
		Help:      "Total number of order notifications that failed to deliver.",
	})

	notificationsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "notifier",
		Name:      "notifications_dropped_total",
		Help:      "Total number of order notifications dropped because the queue was full.",
	})
)
