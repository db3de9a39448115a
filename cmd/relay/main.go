package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/murkotick/sales-record-service/internal/pkg/clock"
	"github.com/murkotick/sales-record-service/internal/pkg/kafka"
	"github.com/murkotick/sales-record-service/internal/relay"
)

// The relay drains committed outbox rows to Kafka. It runs beside the
// server as a separate process so a broker outage never blocks writes.
func main() {
	spannerDB := env("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/test-db")
	brokers := env("KAFKA_BROKERS", "localhost:9092")
	batchSize := envInt("RELAY_BATCH_SIZE", 100)
	interval := envDuration("RELAY_INTERVAL", 2*time.Second)

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutdown signal received")
		cancel()
	}()

	kafkaClient := kafka.NewClient(brokers)
	if !kafkaClient.Enabled() {
		log.Error("no kafka brokers configured")
		os.Exit(1)
	}

	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		log.Error("spanner client", "error", err)
		os.Exit(1)
	}
	defer spannerClient.Close()

	source := relay.NewSpannerSource(spannerClient, clock.RealClock{})
	publisher := relay.NewKafkaPublisher(kafkaClient.NewWriter())
	defer publisher.Close()
	metrics := relay.NewMetrics(prometheus.NewRegistry())

	r := relay.New(source, publisher, metrics, log, batchSize, interval)

	log.Info("relay started", "batch_size", batchSize, "interval", interval.String())
	if err := r.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("relay stopped", "error", err)
		os.Exit(1)
	}
	log.Info("relay stopped")
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
