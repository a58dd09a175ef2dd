package rabbitmq

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/streadway/amqp"
)

type RabbitProducer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	config      configs.RabbitMQConfig
	logproducer LogProducer
	context     context.Context
	cancel      context.CancelFunc
}
type LogProducer interface {
	NewAlbumLog(level, place, traceid, msg string)
}

func NewRabbitProducer(config configs.RabbitMQConfig, kafkaprod LogProducer) (*RabbitProducer, error) {
	connString := fmt.Sprintf("amqp://%s:%s@%s:%s/", config.Name, config.Password, config.Host, strconv.Itoa(config.Port))
	conn, err := amqp.Dial(connString)
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to connect to Rabbit-Producer: %v", err)
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to open a channel to Rabbit-Producer: %v", err)
		return nil, err
	}
	_, err = channel.QueueDeclare(
		config.RequestQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to declare a queue to Rabbit-Producer: %v", err)
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful connect to Rabbit-Producer")
	return &RabbitProducer{conn: conn, channel: channel, config: config, logproducer: kafkaprod, context: ctx, cancel: cancel}, nil
}
func (rp *RabbitProducer) Close() {
	rp.channel.Close()
	rp.cancel()
	rp.conn.Close()
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful close Rabbit-Producer")
}
