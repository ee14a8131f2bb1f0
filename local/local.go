// Package local provides an in memory implementation of the SQS methods used by sqsqueue.Queue.
package local

import (
	"context"
	"crypto/md5" //nolint: gosec // SQS digests bodies with md5
	"encoding/hex"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/x4b1/sqsqueue"
)

// CodeNonExistentQueue is the error code returned for unknown queue urls, same as AWS.
const CodeNonExistentQueue = "AWS.SimpleQueueService.NonExistentQueue"

var _ sqsqueue.Client = (*Queue)(nil)

// Option configures a local Queue.
type Option func(*Queue)

// WithRejectedCredentials makes every request fail as AWS does for an invalid access key.
func WithRejectedCredentials() Option {
	return func(q *Queue) {
		q.rejectCredentials = true
	}
}

// New returns an in memory queue service holding the given queue urls.
func New(queueURLs []string, opts ...Option) *Queue {
	q := Queue{
		queues: make(map[string][]types.Message, len(queueURLs)),
	}

	for _, u := range queueURLs {
		q.queues[u] = nil
	}

	for _, opt := range opts {
		opt(&q)
	}

	return &q
}

// Queue keeps messages in memory by queue url. Received messages are removed,
// there is no visibility timeout. It is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	queues map[string][]types.Message

	rejectCredentials bool
}

// SendMessage implements sqsqueue.Client.
func (q *Queue) SendMessage(
	_ context.Context,
	in *sqs.SendMessageInput,
	_ ...func(*sqs.Options),
) (*sqs.SendMessageOutput, error) {
	if err := q.authenticate(); err != nil {
		return nil, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	url := aws.ToString(in.QueueUrl)
	msgs, ok := q.queues[url]
	if !ok {
		return nil, nonExistentQueue()
	}

	body := aws.ToString(in.MessageBody)
	msg := types.Message{
		MessageId:     aws.String(uuid.NewString()),
		ReceiptHandle: aws.String(uuid.NewString()),
		Body:          aws.String(body),
		MD5OfBody:     aws.String(digest(body)),
	}
	q.queues[url] = append(msgs, msg)

	return &sqs.SendMessageOutput{
		MessageId:        msg.MessageId,
		MD5OfMessageBody: msg.MD5OfBody,
	}, nil
}

// ReceiveMessage implements sqsqueue.Client.
func (q *Queue) ReceiveMessage(
	_ context.Context,
	in *sqs.ReceiveMessageInput,
	_ ...func(*sqs.Options),
) (*sqs.ReceiveMessageOutput, error) {
	if err := q.authenticate(); err != nil {
		return nil, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	url := aws.ToString(in.QueueUrl)
	msgs, ok := q.queues[url]
	if !ok {
		return nil, nonExistentQueue()
	}

	n := max(int(in.MaxNumberOfMessages), 1)
	n = min(n, len(msgs))

	out := make([]types.Message, n)
	copy(out, msgs[:n])
	q.queues[url] = msgs[n:]

	return &sqs.ReceiveMessageOutput{Messages: out}, nil
}

// Len returns the number of messages waiting in the queue.
func (q *Queue) Len(queueURL string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.queues[queueURL])
}

func (q *Queue) authenticate() error {
	if !q.rejectCredentials {
		return nil
	}

	return &smithy.GenericAPIError{
		Code:    sqsqueue.CodeInvalidClientTokenID,
		Message: "The security token included in the request is invalid.",
		Fault:   smithy.FaultClient,
	}
}

func nonExistentQueue() error {
	return &smithy.GenericAPIError{
		Code:    CodeNonExistentQueue,
		Message: "The specified queue does not exist.",
		Fault:   smithy.FaultClient,
	}
}

func digest(body string) string {
	sum := md5.Sum([]byte(body)) //nolint: gosec // SQS digests bodies with md5
	return hex.EncodeToString(sum[:])
}
