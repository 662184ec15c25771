package refreshbus

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
)

const defaultPollTimeout = 5 * time.Second

// Consumer читает события обновления и перезагружает снапшот.
// Ошибка перезагрузки не останавливает чтение: в работе остается прежний индекс.
type Consumer struct {
	reader   MessageReader
	reloader Reloader
	log      Logger
	poll     time.Duration
}

// NewReader создает kafka.Reader группы потребителей
func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 1e6,
		MaxWait:  500 * time.Millisecond,
	})
}

// NewConsumer создает потребителя событий
func NewConsumer(reader MessageReader, reloader Reloader, log Logger) *Consumer {
	return &Consumer{
		reader:   reader,
		reloader: reloader,
		log:      log,
		poll:     defaultPollTimeout,
	}
}

// Run читает события до отмены ctx или закрытия reader
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("Refresh consumer started")
	defer c.log.Info("Refresh consumer stopped")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fetchCtx, cancel := context.WithTimeout(ctx, c.poll)
		msg, err := c.reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			switch {
			case errors.Is(err, context.DeadlineExceeded):
				continue
			case errors.Is(err, context.Canceled):
				if ctx.Err() != nil {
					return ctx.Err()
				}
				continue
			case errors.Is(err, io.EOF), errors.Is(err, io.ErrClosedPipe), errors.Is(err, kafka.ErrGroupClosed):
				return nil
			}
			c.log.Error("Refresh consumer: fetch failed: %v", err)
			continue
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.log.Error("Refresh consumer: commit failed: offset=%d, error=%v", msg.Offset, err)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg kafka.Message) {
	event, err := decodeEvent(msg.Value)
	if err != nil {
		c.log.Warn("Refresh consumer: skipping offset=%d: %v", msg.Offset, err)
		return
	}

	c.log.Info("Refresh consumer: event received: source=%s, venues=%d, generated_at=%s",
		event.Source, event.Venues, event.GeneratedAt.Format(time.RFC3339))

	if err := c.reloader.Reload(ctx); err != nil {
		c.log.Error("Refresh consumer: reload failed, keeping previous snapshot: %v", err)
	}
}

// Close закрывает reader
func (c *Consumer) Close() error {
	return c.reader.Close()
}
