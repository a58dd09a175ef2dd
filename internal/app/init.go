package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/rabbitmq"
	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository/cache"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository/cloud"
	"github.com/niktin06sash/PhotoAlbum_service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AlbumApplication struct {
	config        configs.Config
	metricsserver *http.Server
	Albums        *service.AlbumService
	Photos        *service.PhotoService
	Users         *service.UserService
	Tokens        *service.TokenService
}

func NewAlbumApplication(config configs.Config) *AlbumApplication {
	return &AlbumApplication{config: config}
}

// Start wires the storage backends, brokers and services and blocks until
// a termination signal arrives.
func (a *AlbumApplication) Start() error {
	defer func() {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Count of active goroutines: %v", runtime.NumGoroutine())
	}()
	pg, err := repository.NewDatabaseConnection(a.config.Database)
	if err != nil {
		return err
	}
	defer pg.Close()
	mega, err := cloud.NewMegaConnection(a.config.Mega)
	if err != nil {
		return err
	}
	defer mega.Close()
	redis, err := cache.NewRedisConnection(a.config.Redis)
	if err != nil {
		return err
	}
	defer redis.Close()
	kafkaProducer := kafka.NewKafkaProducer(a.config.Kafka)
	defer kafkaProducer.Close()
	defer kafkaProducer.LogClose()
	metrics.Start()
	defer metrics.Stop()

	albumrepo := repository.NewAlbumPostgresRepo(pg)
	photorepo := repository.NewPhotoPostgresRepo(pg)
	userrepo := repository.NewUserPostgresRepo(pg)
	tokencache := cache.NewTokenCache(redis)
	photocloud := cloud.NewPhotoCloud(mega)

	rabbitProducer, err := rabbitmq.NewRabbitProducer(a.config.RabbitMQ, kafkaProducer)
	if err != nil {
		return err
	}
	defer rabbitProducer.Close()

	photoService := service.NewPhotoService(photorepo, albumrepo, photocloud, rabbitProducer, kafkaProducer)
	defer photoService.StopWorkers()
	a.Photos = photoService
	a.Albums = service.NewAlbumService(albumrepo, photorepo, userrepo, photoService, kafkaProducer, a.config.App.NestingAlbumsAllowed)
	a.Users = service.NewUserService(userrepo, albumrepo, photorepo, photoService, kafkaProducer)
	a.Tokens = service.NewTokenService(userrepo, tokencache, kafkaProducer, a.config.JWT)

	rabbitConsumer, err := rabbitmq.NewRabbitConsumer(a.config.RabbitMQ, kafkaProducer, photoService)
	if err != nil {
		return err
	}
	defer rabbitConsumer.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	a.metricsserver = &http.Server{Addr: ":" + a.config.Server.MetricsPort, Handler: mux}
	kafkaProducer.LogStart()
	serverError := make(chan error, 1)
	go func() {
		if err := a.metricsserver.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
		close(serverError)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Printf("[DEBUG] [PhotoAlbum-Service] Server shutting down with signal: %v", sig)
	case err := <-serverError:
		log.Printf("[DEBUG] [PhotoAlbum-Service] Server startup failed: %v", err)
		return err
	}

	return a.Stop()
}
func (a *AlbumApplication) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.GracefulShutdown)
	defer cancel()
	log.Println("[DEBUG] [PhotoAlbum-Service] Server is shutting down...")
	if err := a.metricsserver.Shutdown(ctx); err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Server shutdown error: %v", err)
		return err
	}
	log.Println("[DEBUG] [PhotoAlbum-Service] Server has shutted down successfully")
	return nil
}
