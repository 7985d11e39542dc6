package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// KafkaPublisher публикует события в топик Kafka с ключом по короткому коду
type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewKafkaPublisher создает синхронный writer: ошибка доставки возвращается из Publish
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func newKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		now:    time.Now,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, name string, payload map[string]any) error {
	data, err := Encode(name, payload, p.now())
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   partitionKey(payload),
		Value: data,
		Headers: []kafka.Header{
			{Key: FieldEvent, Value: []byte(name)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write event %s to kafka: %w", name, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// KafkaConsumer читает события из топика и пишет их в лог
type KafkaConsumer struct {
	reader     messageReader
	logger     *zap.Logger
	retryDelay time.Duration
}

func NewKafkaConsumer(brokers []string, topic, groupID string, logger *zap.Logger) *KafkaConsumer {
	return newKafkaConsumer(kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	}), logger)
}

func newKafkaConsumer(reader messageReader, logger *zap.Logger) *KafkaConsumer {
	return &KafkaConsumer{
		reader:     reader,
		logger:     logger,
		retryDelay: time.Second,
	}
}

// Run читает сообщения до отмены ctx
func (c *KafkaConsumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			c.logger.Error("kafka read failed", zap.Error(err))

			select {
			case <-ctx.Done():
				return
			case <-time.After(c.retryDelay):
			}
			continue
		}

		event, err := Decode(msg.Value)
		if err != nil {
			c.logger.Warn("skipping malformed event",
				zap.String("key", string(msg.Key)),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		c.logger.Info("Received event",
			zap.Any("event", event[FieldEvent]),
			zap.String("key", string(msg.Key)),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Any("payload", event),
		)
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
