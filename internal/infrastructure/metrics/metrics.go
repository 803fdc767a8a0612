package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ContractTransitions counts successful lifecycle transitions by action
// (send_for_signatures, sign, activate, terminate, renew, cancel, expire).
var ContractTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "leaseflow",
	Subsystem: "contracts",
	Name:      "transitions_total",
	Help:      "Successful contract lifecycle transitions by action.",
}, []string{"action"})

// HTTPRequests counts handled HTTP requests by route and status class.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "leaseflow",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by method, route and status code.",
}, []string{"method", "route", "status"})
