package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoadapter "github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/mongo"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/config"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/reconcile"
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
	db := mongoClient.Database(cfg.MongoDatabase)

	events := mongoadapter.NewEventsRepository(db, logger)
	bookings := mongoadapter.NewBookingsRepository(db, logger)

	worker := reconcile.NewReconciler(events, bookings, cfg.ReconcileRepair, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.Run(ctx, cfg.ReconcileInterval)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("Shutdown reconciler")
}
