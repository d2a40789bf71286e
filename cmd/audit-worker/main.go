package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoadapter "github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/mongo"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/rabbit"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/config"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdownOtel, err := observability.SetupOTel(context.Background(), cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to setup otel: %v", err)
	}
	defer shutdownOtel()

	logger := observability.NewLogger()

	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	audit := mongoadapter.NewAuditLogger(mongoClient.Database(cfg.MongoDatabase), logger)

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer conn.Close()
	consumer, err := rabbit.NewConsumer(conn, "audit.q", "#")
	if err != nil {
		log.Fatalf("failed to create consumer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := NewAuditWorker(consumer, audit, logger)
	go worker.Run(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("Shutdown audit worker")
}

type AuditWorker struct {
	consumer *rabbit.Consumer
	audit    *mongoadapter.AuditLogger
	logger   observability.Logger
}

func NewAuditWorker(consumer *rabbit.Consumer, audit *mongoadapter.AuditLogger, logger observability.Logger) *AuditWorker {
	return &AuditWorker{consumer: consumer, audit: audit, logger: logger}
}

func (w *AuditWorker) Run(ctx context.Context) {
	deliveries, err := w.consumer.Consume(ctx)
	if err != nil {
		w.logger.Error("failed to start consuming", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			if err := w.record(ctx, d); err != nil {
				w.logger.WithField("routing_key", d.RoutingKey).Error("failed to record audit entry", err)
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}

func (w *AuditWorker) record(ctx context.Context, d amqp.Delivery) error {
	data := map[string]interface{}{}
	if err := json.Unmarshal(d.Body, &data); err != nil {
		// Malformed payloads are still recorded, just raw.
		data = map[string]interface{}{"raw": string(d.Body)}
	}
	return w.audit.Append(ctx, d.RoutingKey, data)
}
