package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/oneservice/config"
	"github.com/segmentio/kafka-go"
)

// Handler processes one message. A returned error stops consumption and the
// message is left uncommitted.
type Handler func(ctx context.Context, msg kafka.Message) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads one topic as a member of the configured group and commits
// each offset only after its handler succeeded.
type Consumer struct {
	reader messageReader
}

func NewConsumer(cfg config.KafkaConfig, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.GroupID,
			Topic:             topic,
			StartOffset:       kafka.FirstOffset,
			MaxWait:           time.Second,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks until ctx is canceled, which returns nil, or until fetching,
// handling or committing fails.
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		if err := handler(ctx, msg); err != nil {
			return fmt.Errorf("handle %s[%d]@%d: %w", msg.Topic, msg.Partition, msg.Offset, err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit %s[%d]@%d: %w", msg.Topic, msg.Partition, msg.Offset, err)
		}
	}
}

// BookingEventHandler decodes booking events and passes them to fn.
// Undecodable messages are logged and skipped.
func BookingEventHandler(fn func(context.Context, BookingEvent) error) Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var event BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("skip undecodable event at %s[%d]@%d: %v", msg.Topic, msg.Partition, msg.Offset, err)
			return nil
		}
		return fn(ctx, event)
	}
}
