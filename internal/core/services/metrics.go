package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	claimsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hc_claims_submitted_total",
		Help: "Total number of claims submitted.",
	})

	claimsReviewedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hc_claims_reviewed_total",
		Help: "Total number of review decisions by resulting status.",
	}, []string{"status"})

	approvedAmountCoercionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hc_approved_amount_coercions_total",
		Help: "Approved amounts that could not be parsed and were defaulted to zero.",
	})
)
