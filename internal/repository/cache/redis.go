package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/redis/go-redis/v9"
)

type CacheObject struct {
	connect *redis.Client
}

func NewRedisConnection(cfg configs.RedisConfig) (*CacheObject, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		client.Close()
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to establish Redis-Client connection: %v", err)
		return nil, err
	}
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful connect to Redis-Client")
	return &CacheObject{connect: client}, nil
}
func (c *CacheObject) Close() {
	c.connect.Close()
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful close Redis-Client")
}
