package sqsqueue

import (
	"context"
	"time"
)

// Operation names a queue operation in a Report.
type Operation string

// Queue operations.
const (
	OperationSend    Operation = "send"
	OperationReceive Operation = "receive"
)

// Report describes the result of a single queue operation.
type Report struct {
	// Operation executed.
	Operation Operation
	// Number of messages sent or received.
	Messages int
	// Time spent in the operation, including the call to AWS.
	Duration time.Duration
	// Error returned to the caller, nil on success.
	Err error
}

// Reporter receives a Report after every queue operation.
type Reporter interface {
	Report(ctx context.Context, r Report)
}

type noopReporter struct{}

func (noopReporter) Report(context.Context, Report) {}
