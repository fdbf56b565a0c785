package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/oneservice/config"
	"github.com/Domenick1991/oneservice/internal/bootstrap"
	"github.com/Domenick1991/oneservice/internal/cache"
	"github.com/Domenick1991/oneservice/internal/kafka"
	"github.com/Domenick1991/oneservice/internal/repository"
	"github.com/Domenick1991/oneservice/internal/service/booking"
	"github.com/Domenick1991/oneservice/internal/service/catalog"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := repository.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect mongodb: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Printf("disconnect mongodb: %v", err)
		}
	}()

	db := client.Database(cfg.Database.Name)

	var servicesCache catalog.Cache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Cache.ServicesTTL())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unavailable, listings are served uncached until it recovers: %v", err)
		}
		servicesCache = redisCache
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	serviceService := catalog.NewCatalogService(repository.NewServiceRepository(db), servicesCache)
	bookingService := booking.NewBookingService(
		repository.NewBookingRepository(db),
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	health := func(ctx context.Context) error {
		return repository.Ping(ctx, client, 2*time.Second)
	}

	handler := bootstrap.NewHandler(serviceService, bookingService, health)
	if err := bootstrap.Run(ctx, cfg, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
