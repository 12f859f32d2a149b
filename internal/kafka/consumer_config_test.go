package kafka_test

import (
	"slices"
	"strings"
	"testing"
	"time"

	mykafka "github.com/Gunvolt24/foodcart/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
)

func TestConsumerConfig_readerConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startOffset string
		wantOffset  int64
	}{
		{"first lower", "first", kafkago.FirstOffset},
		{"first upper", "FIRST", kafkago.FirstOffset},
		{"first spaced", " FiRsT \n", kafkago.FirstOffset},
		{"first tabs", "\tFiRsT\t", kafkago.FirstOffset},
		{"empty -> last", "", kafkago.LastOffset},
		{"explicit last -> last", "last", kafkago.LastOffset},
		{"LAST -> last", "LAST", kafkago.LastOffset},
		{"unknown -> last", "unknown", kafkago.LastOffset},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := mykafka.ConsumerConfig{
				Brokers:     []string{"k1:9092", "k2:9092"},
				Topic:       "partner-orders",
				GroupID:     "group-1",
				StartOffset: tt.startOffset,

				// Эти поля в ReaderConfig не участвуют
				ProcessTimeout: 3 * time.Second,
				RetryInitial:   1 * time.Second,
				RetryMax:       5 * time.Second,
			}

			rc := cfg.ReaderConfig()

			// 1) StartOffset нормализован
			if rc.StartOffset != tt.wantOffset {
				t.Fatalf("StartOffset: want %d, got %d", tt.wantOffset, rc.StartOffset)
			}

			// 2) Прокинулись базовые поля
			if !slices.Equal(rc.Brokers, cfg.Brokers) {
				t.Fatalf("Brokers: want %v, got %v", cfg.Brokers, rc.Brokers)
			}
			if rc.Topic != cfg.Topic {
				t.Fatalf("Topic: want %s, got %s", cfg.Topic, rc.Topic)
			}
			if rc.GroupID != cfg.GroupID {
				t.Fatalf("GroupID: want %s, got %s", cfg.GroupID, rc.GroupID)
			}
			// 3) Ручной коммит
			if rc.CommitInterval != 0 {
				t.Fatalf("CommitInterval: want 0, got %v", rc.CommitInterval)

			}
		})
	}

}

func TestConsumerConfig_Validate(t *testing.T) {
	ok := mykafka.ConsumerConfig{Brokers: []string{"k:9092"}, Topic: "partner-orders", GroupID: "foodcart"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := mykafka.ConsumerConfig{Topic: "  "}
	err := empty.Validate()
	if err == nil {
		t.Fatal("want error for empty config")
	}
	for _, part := range []string{"brokers", "topic", "group id"} {
		if !strings.Contains(err.Error(), part) {
			t.Fatalf("error %q does not mention %s", err, part)
		}
	}
}

func TestConsumerConfig_ReaderConfigMaxBytes(t *testing.T) {
	cfg := mykafka.ConsumerConfig{Brokers: []string{"k:9092"}, Topic: "t", GroupID: "g"}
	if rc := cfg.ReaderConfig(); rc.MaxBytes != 1<<20 {
		t.Fatalf("MaxBytes: want 1MiB, got %d", rc.MaxBytes)
	}
}
