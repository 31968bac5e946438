package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"fibCalc/internal/domain"
	"fibCalc/internal/ports"
)

const (
	retryBaseDelay = 200 * time.Millisecond
	retryMaxDelay  = 30 * time.Second
)

// reader — часть kafka.Reader, которой пользуется консьюмер.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ reader = (*kafka.Reader)(nil)

// Consumer — обёртка над kafka.Reader, декодирует сообщения в domain.Calculation и вызывает use case.
type Consumer struct {
	r         reader
	uc        ports.IFibonacciUseCase
	log       *slog.Logger
	baseDelay time.Duration
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IFibonacciUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// retryBackoff — пауза перед попыткой attempt (с 1): baseDelay, 2*baseDelay, ... не больше retryMaxDelay.
func retryBackoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = retryBaseDelay
	}
	if attempt < 1 {
		attempt = 1
	}
	delay := base
	for i := 1; i < attempt && delay < retryMaxDelay; i++ {
		delay *= 2
	}
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay
}

// Run в цикле читает сообщения, декодирует JSON в domain.Calculation, вызывает uc.HandleCalculationEvent и коммитит при успехе.
// Сообщение, которое не удалось обработать, повторяется с паузой, пока не обработается;
// следующее сообщение не читается и не коммитится раньше. Выход по отмене ctx или при ошибке чтения.
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

		for attempt := 1; !c.handle(ctx, msg); attempt++ {
			delay := retryBackoff(c.baseDelay, attempt)
			c.log.Warn("kafka handle retry", "offset", msg.Offset, "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
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

// handle обрабатывает одно сообщение и сообщает, можно ли его коммитить.
// Битое сообщение коммитится и пропускается; при ошибке обработки возвращает false.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) bool {
	var calc domain.Calculation
	if err := json.Unmarshal(msg.Value, &calc); err != nil {
		c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		return true
	}

	if err := c.uc.HandleCalculationEvent(ctx, calc); err != nil {
		c.log.Warn("kafka handle error", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		return false
	}
	return true
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
