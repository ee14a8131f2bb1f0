// Package prometheus exposes queue operation reports as prometheus metrics.
package prometheus

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/x4b1/sqsqueue"
)

// Outcomes of a queue operation.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeAuthentication  = "authentication"
	OutcomeNoTransport     = "no_transport"
	OutcomeError           = "error"
)

var _ sqsqueue.Reporter = (*Reporter)(nil)

// NewReporter creates the queue metrics and registers them in reg.
func NewReporter(reg prometheus.Registerer) (*Reporter, error) {
	r := &Reporter{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqsqueue",
			Name:      "operations_total",
			Help:      "Total queue operations by outcome.",
		}, []string{"operation", "outcome"}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqsqueue",
			Name:      "messages_total",
			Help:      "Total messages sent or received.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sqsqueue",
			Name:      "operation_duration_seconds",
			Help:      "Histogram of queue operation duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{r.operations, r.messages, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering queue metrics: %w", err)
		}
	}

	return r, nil
}

// Reporter is a prometheus implementation of sqsqueue.Reporter.
type Reporter struct {
	operations *prometheus.CounterVec
	messages   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// Report implements sqsqueue.Reporter.
func (r *Reporter) Report(_ context.Context, rep sqsqueue.Report) {
	op := string(rep.Operation)

	r.operations.WithLabelValues(op, Outcome(rep.Err)).Inc()
	r.messages.WithLabelValues(op).Add(float64(rep.Messages))
	r.duration.WithLabelValues(op).Observe(rep.Duration.Seconds())
}

// Outcome classifies an operation error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, sqsqueue.ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, sqsqueue.ErrAuthentication):
		return OutcomeAuthentication
	case errors.Is(err, sqsqueue.ErrNoTransport):
		return OutcomeNoTransport
	default:
		return OutcomeError
	}
}
