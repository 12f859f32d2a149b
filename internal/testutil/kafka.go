//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/segmentio/kafka-go"
)

var reTopicUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// UniqueTopicAndGroup — свежие topic и group для одного теста; name очищается до допустимых символов.
func UniqueTopicAndGroup(base, name string) (topic, group string) {
	topic = fmt.Sprintf("%s-%s-%s", base, reTopicUnsafe.ReplaceAllString(name, "-"), UniqSuffix())
	return topic, topic + "-group"
}

// EnsureTopic — создаёт топик с одной партицией и ждёт его появления в метаданных.
func EnsureTopic(ctx context.Context, brokers []string, topic string) error {
	client := &kafka.Client{Addr: kafka.TCP(brokers...), Timeout: 10 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	if tErr := resp.Errors[topic]; tErr != nil && !errors.Is(tErr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", topic, tErr)
	}

	deadline := time.Now().Add(10 * time.Second)
	for {
		meta, mErr := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if mErr == nil && len(meta.Topics) == 1 && meta.Topics[0].Error == nil && len(meta.Topics[0].Partitions) > 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("topic %s not ready: %v", topic, mErr)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// PublishOrderRequests — пишет заявки партнёра в топик; ключ сообщения — key.
func PublishOrderRequests(ctx context.Context, brokers []string, topic, key string, payloads ...[]byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(payloads))
	for _, p := range payloads {
		msgs = append(msgs, kafka.Message{Key: []byte(key), Value: p})
	}
	return w.WriteMessages(ctx, msgs...)
}
