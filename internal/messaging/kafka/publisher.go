package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Message is the transport-agnostic envelope services hand to the publisher.
type Message struct {
	Topic     string
	Key       string
	EventType string
	Payload   []byte
}

type publisher struct {
	writer *kafkago.Writer
}

// NewPublisher builds a writer shared by all topics; the topic is set per
// message, same as the producer side of the outbox relay used to do.
func NewPublisher(brokers []string) Publisher {
	return &publisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Balancer: &kafkago.LeastBytes{},
		},
	}
}

func (p *publisher) Publish(ctx context.Context, msg Message) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(msg.EventType)},
		},
	})
}

func (p *publisher) Close() error {
	return p.writer.Close()
}
