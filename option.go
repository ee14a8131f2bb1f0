package sqsqueue

import (
	"github.com/x4b1/sqsqueue/log"
)

// Option configures optional behaviour of a Queue.
type Option interface {
	applyQueue(*Queue)
}

// WithLogger returns an option to log queue operations at debug level.
func WithLogger(l log.Logger) LoggerOption {
	return LoggerOption{l}
}

// LoggerOption is an option type for setting the Queue logger.
type LoggerOption struct {
	l log.Logger
}

func (o LoggerOption) applyQueue(q *Queue) {
	if o.l == nil {
		return
	}
	q.logger = o.l
}

// WithReporter returns an option to receive a Report after each queue operation.
func WithReporter(r Reporter) ReporterOption {
	return ReporterOption{r}
}

// ReporterOption is an option type for setting the Queue reporter.
type ReporterOption struct {
	r Reporter
}

func (o ReporterOption) applyQueue(q *Queue) {
	if o.r == nil {
		return
	}
	q.reporter = o.r
}

// Long poll limits accepted by AWS.
const (
	MinWaitTimeSeconds = 0
	MaxWaitTimeSeconds = 20
)

// WithWaitTimeSeconds returns an option to long poll for up to waitSec seconds when receiving.
// Values outside 0-20 are clamped to the nearest limit.
func WithWaitTimeSeconds(waitSec int) WaitTimeSecondsOption {
	return WaitTimeSecondsOption(waitSec)
}

// WaitTimeSecondsOption is an option type for setting the receive wait time.
type WaitTimeSecondsOption int

func (w WaitTimeSecondsOption) applyQueue(q *Queue) {
	q.waitSeconds = int32(min(max(int(w), MinWaitTimeSeconds), MaxWaitTimeSeconds)) //nolint: gosec // clamped
}
