// Package testhelpers starts the containers needed by integration tests.
package testhelpers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

// LocalStack test settings. LocalStack accepts any credentials.
const (
	Region    = "eu-west-1"
	AccessID  = "test"
	SecretKey = "test"

	localStackImage = "localstack/localstack:3.0.2"
)

var _ testcontainers.Container = (*LocalStackContainer)(nil)

// LocalStackContainer is a running LocalStack with SQS enabled.
type LocalStackContainer struct {
	// SQSEndpoint is the url where SQS is exposed.
	SQSEndpoint string
	// Config to reach the container.
	Config aws.Config

	*localstack.LocalStackContainer
}

// CreateLocalStackContainer starts a LocalStack container with only SQS enabled.
func CreateLocalStackContainer(ctx context.Context) (*LocalStackContainer, error) {
	lsContainer, err := localstack.Run(ctx, localStackImage,
		testcontainers.WithEnv(map[string]string{"SERVICES": "sqs"}),
	)
	if err != nil {
		return nil, err
	}

	endpoint, err := lsContainer.PortEndpoint(ctx, "4566/tcp", "http")
	if err != nil {
		return nil, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(AccessID, SecretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return &LocalStackContainer{
		SQSEndpoint:         endpoint,
		Config:              awsCfg,
		LocalStackContainer: lsContainer,
	}, nil
}

// CreateQueue creates a queue and returns its url.
func (c *LocalStackContainer) CreateQueue(ctx context.Context, name string) (string, error) {
	cli := sqs.NewFromConfig(c.Config, func(o *sqs.Options) {
		o.BaseEndpoint = aws.String(c.SQSEndpoint)
	})

	out, err := cli.CreateQueue(ctx, &sqs.CreateQueueInput{QueueName: aws.String(name)})
	if err != nil {
		return "", fmt.Errorf("creating queue %s: %w", name, err)
	}

	return aws.ToString(out.QueueUrl), nil
}
