// Worker ships domain events from Kafka to Loki.
// Set KAFKA_BROKERS, TELEMETRY_KAFKA_TOPIC, KAFKA_GROUP_ID and LOKI_URL.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"contract-mgmt/backend/internal/config"
	"contract-mgmt/backend/internal/logger"
	"contract-mgmt/backend/internal/telemetry/loki"
)

const pushTimeout = 10 * time.Second

// messageReader is the subset of *kafka.Reader the loop needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// pusher is the subset of *loki.Client the loop needs.
type pusher interface {
	PushEventJSON(ctx context.Context, raw []byte) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.Component(logger.New(os.Stderr, logger.Options{Level: cfg.LogLevel, Production: cfg.IsProduction()}), "worker")

	brokers := cfg.TelemetryKafkaBrokersList()
	if len(brokers) == 0 {
		log.Error("KAFKA_BROKERS is required")
		os.Exit(2)
	}
	client, err := loki.NewClient(cfg.LokiURL, nil)
	if err != nil {
		log.Error("LOKI_URL is required", "error", err)
		os.Exit(2)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    cfg.TelemetryKafkaTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("consuming", "topic", cfg.TelemetryKafkaTopic, "group", cfg.KafkaGroupID, "loki", cfg.LokiURL)
	if err := consume(ctx, reader, client, log); err != nil {
		log.Error("worker failed", "error", err)
		os.Exit(1)
	}
	log.Info("stopped")
}

// consume pushes each message and commits it afterwards, so a crash replays at most the
// in-flight message. A failed push is logged and committed; Loki outages do not stall the topic.
func consume(ctx context.Context, r messageReader, p pusher, log *slog.Logger) error {
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			log.Warn("kafka fetch failed", "error", err)
			continue
		}

		pushCtx, cancel := context.WithTimeout(ctx, pushTimeout)
		if err := p.PushEventJSON(pushCtx, msg.Value); err != nil {
			log.Warn("loki push failed", "partition", msg.Partition, "offset", msg.Offset, "error", err)
		}
		cancel()

		if err := r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}
