package config

import (
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Database
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
	// RelayWorkerStop if set will be called during Shutdown to gracefully stop
	// the contact relay worker
	RelayWorkerStop func()
	// NoticeBusStop cancels pending notice expiry timers
	NoticeBusStop func()
}

func (b *Bootstrap) Shutdown() error {
	if b.RelayWorkerStop != nil {
		b.RelayWorkerStop()
		log.Println("Successfully stopped contact relay worker")
	}

	if b.NoticeBusStop != nil {
		b.NoticeBusStop()
		log.Println("Successfully stopped notice bus")
	}

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
