package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/ports"

	"github.com/segmentio/kafka-go"
)

// reader — то, что консьюмеру нужно от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer — обёртка над kafka.Reader, декодирует события FileProcessed и передаёт их в use case.
type Consumer struct {
	r   reader
	uc  ports.IProcessorUseCase
	log *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IProcessorUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Message — сообщение из Kafka (ключ, тело, топик, партиция, offset).
type Message = kafka.Message

// Run в цикле читает сообщения, декодирует JSON в domain.FileReport, вызывает uc.HandleFileEvent и коммитит при успехе.
// Нечитаемое сообщение коммитится и пропускается; ошибка обработчика — без коммита, сообщение придёт снова.
// Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var ev domain.FileReport
		if err := json.Unmarshal(msg.Value, &ev); err != nil || ev.Key == "" {
			c.log.Warn("kafka undecodable event, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.r.CommitMessages(ctx, msg)
			continue
		}

		if err := c.uc.HandleFileEvent(ctx, ev); err != nil {
			c.log.Warn("kafka handle error, will redeliver", "error", err, "key", ev.Key, "partition", msg.Partition, "offset", msg.Offset)
			continue
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
