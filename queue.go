package sqsqueue

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/x4b1/sqsqueue/log"
)

// Limits of the number of messages returned by a single receive.
const (
	MinReceiveMessages = 1
	MaxReceiveMessages = 10
)

// Config holds the queue identity and the credentials used to reach it.
type Config struct {
	// URL of the queue, required.
	QueueURL string
	// AWS region of the queue, ex: us-west-2.
	Region string
	// AWS access key id.
	AccessID string
	// AWS secret access key.
	SecretKey string
	// Optional endpoint replacing the AWS one, ex: a LocalStack url.
	Endpoint string
}

func (c Config) validate() error {
	for _, f := range []struct{ name, value string }{
		{"queue url", c.QueueURL},
		{"region", c.Region},
		{"access id", c.AccessID},
		{"secret key", c.SecretKey},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, f.name)
		}
	}

	return nil
}

// New returns a Queue bound to the configured region and static credentials.
// No request is made, so bad credentials are only reported by the first Send or Receive.
func New(ctx context.Context, cfg Config, opts ...Option) (*Queue, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessID, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	cli := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewWithClient(cli, cfg.QueueURL, opts...), nil
}

// Open returns a Queue using the default AWS configuration chain
// (environment, shared config files, instance roles).
func Open(ctx context.Context, queueURL string, opts ...Option) (*Queue, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws config from default: %w", err)
	}

	return NewWithClient(sqs.NewFromConfig(awsCfg), queueURL, opts...), nil
}

// NewWithClient returns a Queue that sends its requests through the given client.
func NewWithClient(cli Client, queueURL string, opts ...Option) *Queue {
	q := Queue{
		cli:      cli,
		url:      queueURL,
		logger:   log.NewNop(),
		reporter: noopReporter{},
	}

	for _, opt := range opts {
		opt.applyQueue(&q)
	}

	return &q
}

// NewIdentity returns a Queue that only carries its url.
// Send, Receive and ReceiveOne fail with ErrNoTransport.
func NewIdentity(queueURL string) *Queue {
	return NewWithClient(nil, queueURL)
}

// Queue is a handle to a single SQS queue.
// It keeps no state between calls, so it is safe for concurrent use when its client is.
type Queue struct {
	// sqs service instance, nil for identity only queues
	cli Client
	// queue url, never changes after construction
	url string
	// seconds to long poll on receive
	waitSeconds int32

	logger   log.Logger
	reporter Reporter
}

// URL returns the queue url given at construction.
func (q *Queue) URL() string {
	return q.url
}

// Send sends body as is to the queue.
func (q *Queue) Send(ctx context.Context, body string) (Receipt, error) {
	start := time.Now()

	rec, err := q.send(ctx, body)

	q.reporter.Report(ctx, Report{
		Operation: OperationSend,
		Messages:  sentCount(err),
		Duration:  time.Since(start),
		Err:       err,
	})

	return rec, err
}

func (q *Queue) send(ctx context.Context, body string) (Receipt, error) {
	if q.cli == nil {
		return Receipt{}, ErrNoTransport
	}

	out, err := q.cli.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.url),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return Receipt{}, normalize(err)
	}

	rec := newReceipt(out)
	q.logger.Debug(ctx, "message sent", "queue_url", q.url, "message_id", rec.MessageID)

	return rec, nil
}

// Receive returns up to maxCount messages, maxCount must be between 1 and 10.
// An empty result means no message was available at the moment of the call,
// it does not guarantee the queue is empty.
func (q *Queue) Receive(ctx context.Context, maxCount int) ([]Message, error) {
	start := time.Now()

	msgs, err := q.receive(ctx, maxCount)

	q.reporter.Report(ctx, Report{
		Operation: OperationReceive,
		Messages:  len(msgs),
		Duration:  time.Since(start),
		Err:       err,
	})

	return msgs, err
}

func (q *Queue) receive(ctx context.Context, maxCount int) ([]Message, error) {
	if maxCount < MinReceiveMessages || maxCount > MaxReceiveMessages {
		return nil, fmt.Errorf(
			"%w: max count must be between %d and %d, got %d",
			ErrInvalidArgument, MinReceiveMessages, MaxReceiveMessages, maxCount,
		)
	}

	if q.cli == nil {
		return nil, ErrNoTransport
	}

	out, err := q.cli.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.url),
		MaxNumberOfMessages: int32(maxCount), //nolint: gosec // bounded above
		WaitTimeSeconds:     q.waitSeconds,
	})
	if err != nil {
		return nil, normalize(err)
	}

	msgs := make([]Message, 0, maxCount)
	if out != nil {
		// never hand back more than asked, whatever the client returns
		for _, m := range out.Messages[:min(len(out.Messages), maxCount)] {
			msgs = append(msgs, newMessage(m))
		}
	}

	q.logger.Debug(ctx, "messages received", "queue_url", q.url, "count", len(msgs))

	return msgs, nil
}

// ReceiveOne receives a single message. It returns nil without error when no message is available.
func (q *Queue) ReceiveOne(ctx context.Context) (*Message, error) {
	msgs, err := q.Receive(ctx, 1)
	if err != nil {
		return nil, err
	}

	if len(msgs) == 0 {
		return nil, nil //nolint: nilnil // absent message is not an error
	}

	return &msgs[0], nil
}

func sentCount(err error) int {
	if err != nil {
		return 0
	}

	return 1
}
