package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"github.com/niktin06sash/PhotoAlbum_service/internal/service"
	"github.com/streadway/amqp"
)

type PhotoTagger interface {
	ApplyTag(ctx context.Context, photoid string, tag string) *service.ServiceResponse
}
type RabbitConsumer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	queue       amqp.Queue
	config      configs.RabbitMQConfig
	logproducer LogProducer
	photoback   PhotoTagger
	wg          *sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewRabbitConsumer(config configs.RabbitMQConfig, kafkaprod LogProducer, tagger PhotoTagger) (*RabbitConsumer, error) {
	connString := fmt.Sprintf("amqp://%s:%s@%s:%s/", config.Name, config.Password, config.Host, strconv.Itoa(config.Port))
	conn, err := amqp.Dial(connString)
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to connect to Rabbit-Consumer: %v", err)
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to open a channel to Rabbit-Consumer: %v", err)
		return nil, err
	}
	queue, err := channel.QueueDeclare(
		config.ResponseQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to declare a queue to Rabbit-Consumer: %v", err)
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	consumer := &RabbitConsumer{
		conn:        conn,
		channel:     channel,
		queue:       queue,
		config:      config,
		logproducer: kafkaprod,
		photoback:   tagger,
		wg:          &sync.WaitGroup{},
		ctx:         ctx,
		cancel:      cancel,
	}
	consumer.wg.Add(1)
	go consumer.readEvent()
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful connect to Rabbit-Consumer")
	return consumer, nil
}
func (rc *RabbitConsumer) Close() {
	rc.cancel()
	rc.channel.Close()
	rc.wg.Wait()
	rc.conn.Close()
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful close Rabbit-Consumer")
}

// readEvent consumes tag results produced by the tagging service. A message
// that cannot be parsed or names a blank photo or tag is dropped without
// requeue, the queue holds responses for every service so poison messages
// must not loop.
func (rc *RabbitConsumer) readEvent() {
	const place = "RabbitConsumer-ReadEvent"
	defer rc.wg.Done()
	msgs, err := rc.channel.Consume(
		rc.queue.Name,
		rc.config.ConsumerTag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to consume messages: %v", err)
		return
	}
	for {
		select {
		case <-rc.ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				rc.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, "", "Rabbit's channel closed, stopping worker")
				return
			}
			var newmsg model.TaggingResponse
			err := json.Unmarshal(msg.Body, &newmsg)
			if err != nil {
				rc.logproducer.NewAlbumLog(kafka.LogLevelError, place, newmsg.TraceID, fmt.Sprintf("Failed to unmarshal message: %v", err))
				msg.Nack(false, false)
				continue
			}
			if newmsg.PhotoID == "" || strings.TrimSpace(newmsg.Tag) == "" {
				rc.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, newmsg.TraceID, "Received tagging response without photo id or tag, dropping")
				msg.Nack(false, false)
				continue
			}
			metrics.AlbumRabbitConsumedTotal.WithLabelValues(rc.queue.Name).Inc()
			rc.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, newmsg.TraceID, fmt.Sprintf("Received tag %q for photo %s", newmsg.Tag, newmsg.PhotoID))
			ctx := context.WithValue(rc.ctx, "traceID", newmsg.TraceID)
			resp := rc.photoback.ApplyTag(ctx, newmsg.PhotoID, newmsg.Tag)
			if resp.Errors != nil && resp.Errors.Type == erro.ServerErrorType {
				msg.Nack(false, true)
				continue
			}
			err = msg.Ack(false)
			if err != nil {
				rc.logproducer.NewAlbumLog(kafka.LogLevelError, place, newmsg.TraceID, fmt.Sprintf("Failed to acknowledge message: %v", err))
			}
		}
	}
}
