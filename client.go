// Package sqsqueue provides a small client for a single AWS SQS (Simple Queue Service) queue.
// A Queue sends opaque string messages and receives a bounded number of messages,
// validating inputs before calling AWS and normalizing credential rejections into
// a single error kind that callers can tell apart from any other transport failure.
package sqsqueue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

//go:generate go tool moq -pkg sqsqueue_test -stub -out client_mock_test.go . Client Reporter

// Client defines the AWS SQS methods used by the Queue. *sqs.Client satisfies it.
type Client interface {
	SendMessage(
		context.Context,
		*sqs.SendMessageInput,
		...func(*sqs.Options),
	) (*sqs.SendMessageOutput, error)
	ReceiveMessage(
		context.Context,
		*sqs.ReceiveMessageInput,
		...func(*sqs.Options),
	) (*sqs.ReceiveMessageOutput, error)
}

var _ Client = (*sqs.Client)(nil)
