package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "accepted_total",
		Help:      "Total number of orders persisted successfully.",
	})

	ordersRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "rejected_total",
		Help:      "Total number of submissions rejected before persistence.",
	})

	ordersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "failed_total",
		Help:      "Total number of submissions that failed at the store.",
	})
)
