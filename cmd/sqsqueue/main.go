package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/x4b1/sqsqueue"
	"github.com/x4b1/sqsqueue/config"
	"github.com/x4b1/sqsqueue/local"
	"github.com/x4b1/sqsqueue/log"
)

const maxConcurrentSends = 10

// opener builds the queue used by the commands.
type opener func(ctx context.Context, cfg config.Config, logger *zap.Logger) (*sqsqueue.Queue, error)

// openAWS builds a queue against AWS, or an in memory one when inMemory is set.
func openAWS(inMemory bool) opener {
	return func(ctx context.Context, cfg config.Config, logger *zap.Logger) (*sqsqueue.Queue, error) {
		opts := []sqsqueue.Option{
			sqsqueue.WithLogger(log.NewZap(logger)),
			sqsqueue.WithWaitTimeSeconds(cfg.WaitTimeSeconds),
		}

		if inMemory {
			return sqsqueue.NewWithClient(newLocal(cfg.QueueURL), cfg.QueueURL, opts...), nil
		}

		qCfg, err := cfg.Queue()
		if err != nil {
			return nil, err
		}

		return sqsqueue.New(ctx, qCfg, opts...)
	}
}

func newLocal(queueURL string) *local.Queue {
	return local.New([]string{queueURL})
}

func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return newApp(nil, stdin, stdout, stderr).RunContext(ctx, args)
}

// newApp returns the command line app. When open is nil the queue is built from the flags.
func newApp(open opener, stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	var (
		queue  *sqsqueue.Queue
		logger *zap.Logger
	)

	return &cli.App{
		Name:      "sqsqueue",
		Usage:     "Send and receive messages from an AWS SQS queue",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    "conf",
				Aliases: []string{"c"},
				Usage:   "yaml configuration file",
			},
			&cli.StringFlag{
				Name:    "queue-url",
				Aliases: []string{"q"},
				Usage:   "queue url, overrides the configuration",
			},
			&cli.BoolFlag{
				Name:  "local",
				Usage: "dry run against an empty in memory queue, discarded when the command exits",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.Path("conf"))
			if err != nil {
				return err
			}
			if c.IsSet("queue-url") {
				cfg.QueueURL = c.String("queue-url")
			}

			if logger, err = log.NewProduction(cfg.LogLevel); err != nil {
				return err
			}

			if open == nil {
				open = openAWS(c.Bool("local"))
			}

			queue, err = open(c.Context, cfg, logger)

			return err
		},
		After: func(*cli.Context) error {
			if logger == nil {
				return nil
			}
			_ = logger.Sync()

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "send",
				Usage:     "send every argument as a message",
				ArgsUsage: "MESSAGE...",
				Action: func(c *cli.Context) error {
					return send(c.Context, queue, c.Args().Slice(), c.App.Writer)
				},
			},
			{
				Name:  "receive",
				Usage: "receive up to --max messages",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max",
						Aliases: []string{"n"},
						Value:   sqsqueue.MaxReceiveMessages,
					},
				},
				Action: func(c *cli.Context) error {
					msgs, err := queue.Receive(c.Context, c.Int("max"))
					if err != nil {
						return err
					}

					for _, m := range msgs {
						pretty.Fprintf(c.App.Writer, "%# v\n", m)
					}

					return nil
				},
			},
			{
				Name:  "receive-one",
				Usage: "receive a single message",
				Action: func(c *cli.Context) error {
					msg, err := queue.ReceiveOne(c.Context)
					if err != nil {
						return err
					}

					if msg == nil {
						fmt.Fprintln(c.App.Writer, "no messages available")
						return nil
					}

					pretty.Fprintf(c.App.Writer, "%# v\n", *msg)

					return nil
				},
			},
		},
	}
}

// send sends every message on its own request, concurrently.
func send(ctx context.Context, q *sqsqueue.Queue, msgs []string, w io.Writer) error {
	if len(msgs) == 0 {
		return fmt.Errorf("%w: at least one message is required", sqsqueue.ErrInvalidArgument)
	}

	ids := make([]string, len(msgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSends)

	for i, m := range msgs {
		g.Go(func() error {
			rec, err := q.Send(ctx, m)
			if err != nil {
				return err
			}
			ids[i] = rec.MessageID

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(w, id)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	if errors.Is(err, sqsqueue.ErrAuthentication) {
		fmt.Fprintf(os.Stderr, "error: credentials rejected by AWS, check the access id and secret key: %s\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
	stop()
	os.Exit(1)
}
