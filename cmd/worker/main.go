package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/oneservice/config"
	"github.com/Domenick1991/oneservice/internal/email"
	"github.com/Domenick1991/oneservice/internal/kafka"
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

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatalf("kafka brokers are not configured")
	}
	topic := cfg.Kafka.NotificationsTopic
	if topic == "" {
		topic = cfg.Kafka.BookingTopic
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka, topic)
	defer consumer.Close()

	emailSender := email.NewSender()

	log.Printf("worker consuming %s", topic)
	if err := consumer.Consume(ctx, kafka.BookingEventHandler(emailSender.Send)); err != nil {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Printf("worker shutting down")
}
