package sqsqueue

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Receipt is the confirmation returned by AWS after a message is sent.
// A send succeeded only when MessageID is not empty.
type Receipt struct {
	// Identifier assigned by AWS to the message.
	MessageID string
	// MD5 digest of the message body, as computed by AWS.
	MD5OfBody string
	// Sequence number, only set by FIFO queues.
	SequenceNumber string
}

func newReceipt(out *sqs.SendMessageOutput) Receipt {
	if out == nil {
		return Receipt{}
	}

	return Receipt{
		MessageID:      aws.ToString(out.MessageId),
		MD5OfBody:      aws.ToString(out.MD5OfMessageBody),
		SequenceNumber: aws.ToString(out.SequenceNumber),
	}
}

// Message is a message received from the queue. Its body is not interpreted.
type Message struct {
	// Identifier assigned by AWS to the message.
	ID string
	// Message payload.
	Body string
	// Handle needed to delete the message or change its visibility.
	ReceiptHandle string
	// MD5 digest of the message body.
	MD5OfBody string
	// System attributes returned by AWS, ex: SentTimestamp.
	Attributes map[string]string
	// String values of the message attributes set by the sender.
	MessageAttributes map[string]string
}

func newMessage(msg types.Message) Message {
	m := Message{
		ID:            aws.ToString(msg.MessageId),
		Body:          aws.ToString(msg.Body),
		ReceiptHandle: aws.ToString(msg.ReceiptHandle),
		MD5OfBody:     aws.ToString(msg.MD5OfBody),
		Attributes:    msg.Attributes,
	}

	if len(msg.MessageAttributes) > 0 {
		m.MessageAttributes = make(map[string]string, len(msg.MessageAttributes))
		for k, v := range msg.MessageAttributes {
			m.MessageAttributes[k] = aws.ToString(v.StringValue)
		}
	}

	return m
}
