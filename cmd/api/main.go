package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	redisclient "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoadapter "github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/mongo"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/rabbit"
	redisadapter "github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/redis"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/analytics"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/auth"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/booking"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/config"
	httphandler "github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/http"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/idempotency"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/rateLimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdown, err := observability.SetupOTel(context.Background(), cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to setup otel: %v", err)
	}
	defer shutdown()

	logger := observability.NewLogger()

	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.MongoDatabase)

	visitors := mongoadapter.NewVisitorsRepository(db, logger)
	events := mongoadapter.NewEventsRepository(db, logger)
	bookings := mongoadapter.NewBookingsRepository(db, logger)
	attractions := mongoadapter.NewAttractionsRepository(db, logger)

	redisClient := redisclient.NewClient(&redisclient.Options{Addr: cfg.RedisAddr})
	cache := redisadapter.NewCache(redisClient)
	idemp := idempotency.NewIdempotency(redisadapter.NewIdempotency(redisClient), time.Hour)
	rl := rateLimit.NewRateLimiter(cache)

	rabbitConn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer rabbitConn.Close()
	pub, err := rabbit.NewPublisher(rabbitConn)
	if err != nil {
		log.Fatalf("failed to create publisher: %v", err)
	}

	authn := auth.New(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenTTL)
	bookingSvc := booking.NewService(events, bookings, visitors, pub, logger)
	analyticsSvc := analytics.NewService(visitors, bookings, events, cache, cfg.AnalyticsCacheTTL, logger)

	handlers := httphandler.NewHandlers(authn, bookingSvc, analyticsSvc, visitors, events, bookings, attractions, idemp, pub, logger)
	r := httphandler.SetupRouter(handlers, authn, logger, rl)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	logger.Info("Server exiting")
}
