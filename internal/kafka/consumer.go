package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/metrics"
	"github.com/Gunvolt24/foodcart/pkg/validate"
	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=consumer.go -destination=mocks/mock_consumer.go -package=mocks

// Проверка, что Consumer удовлетворяет интерфейсу ports.MessageConsumer.
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что нужно от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageSaver — регистрация заказа из сырой заявки (разбор, проверка, сохранение).
type messageSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// verdict — что делать с оффсетом после обработки заявки.
type verdict int

const (
	verdictCommit verdict = iota // заказ зарегистрирован
	verdictSkip                  // заявка битая, повтор бесполезен: коммит без заказа
	verdictRetry                 // временная ошибка: повтор той же заявки, без коммита
)

// Consumer — приём заявок на заказ из топика партнёров (at-least-once).
type Consumer struct {
	reader         reader
	service        messageSaver
	log            ports.Logger
	processTimeout time.Duration
	fetchBackoff   *backoff.ExponentialBackOff
	retryBackoff   *backoff.ExponentialBackOff
	closeOnce      sync.Once
}

// NewConsumer — нулевые таймауты заменяются значениями по умолчанию.
func NewConsumer(cfg *ConsumerConfig, service messageSaver, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	return &Consumer{
		reader:         kafka.NewReader(c.ReaderConfig()),
		service:        service,
		log:            log,
		processTimeout: c.ProcessTimeout,
		fetchBackoff:   newBackoff(c.RetryInitial, c.RetryMax),
		retryBackoff:   newBackoff(c.RetryInitial, c.RetryMax),
	}
}

// Run — читает заявки до отмены контекста. Оффсет коммитится только после
// регистрации заказа или признания заявки битой; временные ошибки повторяются на месте.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "order intake started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			pause := c.fetchBackoff.NextBackOff()
			c.log.Warnf(ctx, "fetch failed: %v (retry in %s)", err, pause)
			if !sleep(ctx, pause) {
				return ctx.Err()
			}
			continue
		}
		c.fetchBackoff.Reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.settle(ctx, rc.Topic, &msg); err != nil {
			return err
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		}
	}
}

// settle — повторяет обработку той же заявки, пока она не зарегистрирована или не признана битой.
// Следующая заявка не читается раньше: коммит её оффсета перекрыл бы незарегистрированную.
// Ошибка только при отмене контекста, оффсет тогда не коммитится.
func (c *Consumer) settle(ctx context.Context, topic string, msg *kafka.Message) error {
	defer c.retryBackoff.Reset()
	for c.process(ctx, topic, msg) == verdictRetry {
		if !sleep(ctx, c.retryBackoff.NextBackOff()) {
			return ctx.Err()
		}
	}
	return nil
}

// process — регистрирует заказ из одной заявки с отдельным таймаутом.
func (c *Consumer) process(ctx context.Context, topic string, msg *kafka.Message) verdict {
	pctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()

	err := c.service.SaveFromMessage(pctx, msg.Value)
	v := classify(err)
	switch v {
	case verdictCommit:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
	case verdictSkip:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "order request rejected partition=%d offset=%d key=%q bytes=%d: %v",
			msg.Partition, msg.Offset, msg.Key, len(msg.Value), err)
	case verdictRetry:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "order registration failed partition=%d offset=%d key=%q: %v (not committed)",
			msg.Partition, msg.Offset, msg.Key, err)
	}
	return v
}

// classify — битые данные (json, поля, неизвестный товар) пропускаются, остальное повторяется.
func classify(err error) verdict {
	switch {
	case err == nil:
		return verdictCommit
	case errors.Is(err, validate.ErrInvalidOrder):
		return verdictSkip
	default:
		return verdictRetry
	}
}

// Close — закрывает reader; повторный вызов безопасен.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
