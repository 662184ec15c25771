package refreshbus

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Publisher отправляет события обновления снапшота
type Publisher struct {
	writer MessageWriter
	log    Logger
}

// NewWriter создает синхронный kafka.Writer для топика обновлений
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

// NewPublisher создает издателя поверх writer
func NewPublisher(writer MessageWriter, log Logger) *Publisher {
	return &Publisher{writer: writer, log: log}
}

// Publish отправляет событие, ключ сообщения источник снапшота
func (p *Publisher) Publish(ctx context.Context, event RefreshEvent) error {
	payload, err := event.encode()
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPublish, err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Source),
		Value: payload,
		Time:  event.GeneratedAt,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.log.Info("Refresh event published: source=%s, venues=%d", event.Source, event.Venues)
	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}
