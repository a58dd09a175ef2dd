package kafka

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
	"github.com/segmentio/kafka-go"
)

const (
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

type KafkaProducer struct {
	writer  *kafka.Writer
	logchan chan AlbumLog
	topics  []string
	wg      *sync.WaitGroup
	context context.Context
	cancel  context.CancelFunc
}
type KafkaProducerService interface {
	NewAlbumLog(level, place, traceid, msg string)
}

func NewKafkaProducer(config configs.KafkaConfig) *KafkaProducer {
	brokersString := config.BootstrapServers
	brokers := strings.Split(brokersString, ",")
	var acks kafka.RequiredAcks
	switch config.Acks {
	case "0":
		acks = kafka.RequireNone
	case "1":
		acks = kafka.RequireOne
	case "all":
		acks = kafka.RequireAll
	default:
		acks = kafka.RequireAll
	}
	w := &kafka.Writer{
		Addr:            kafka.TCP(brokers...),
		Topic:           "",
		WriteTimeout:    10 * time.Second,
		WriteBackoffMin: time.Duration(config.RetryBackoffMs) * time.Millisecond,
		WriteBackoffMax: 5 * time.Second,
		BatchSize:       config.BatchSize,
		RequiredAcks:    acks,
	}
	ctx, cancel := context.WithCancel(context.Background())
	logs := make(chan AlbumLog, 1000)
	producer := &KafkaProducer{
		writer:  w,
		logchan: logs,
		topics: []string{
			"photoalbum-info-log-topic",
			"photoalbum-warn-log-topic",
			"photoalbum-error-log-topic",
		},
		wg:      &sync.WaitGroup{},
		context: ctx,
		cancel:  cancel,
	}
	for i := 1; i <= 3; i++ {
		producer.wg.Add(1)
		go producer.sendLogs(i)
	}
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful connect to Kafka-Producer")
	return producer
}
func (kf *KafkaProducer) Close() {
	close(kf.logchan)
	kf.cancel()
	kf.wg.Wait()
	kf.writer.Close()
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful close Kafka-Producer")
}
func (kf *KafkaProducer) sendLogs(num int) {
	defer kf.wg.Done()
	for {
		select {
		case <-kf.context.Done():
			log.Printf("[DEBUG] [PhotoAlbum-Service] [Worker: %v] Context canceled, stopping Kafka-worker...", num)
			return
		case logg, ok := <-kf.logchan:
			if !ok {
				log.Printf("[INFO] [PhotoAlbum-Service] [Worker: %v] Log channel closed, stopping worker", num)
				return
			}
			ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
			topic := "photoalbum-" + strings.ToLower(logg.Level) + "-log-topic"
			data, err := json.Marshal(logg)
			if err != nil {
				log.Printf("[ERROR] [PhotoAlbum-Service] [Worker: %v] Failed to marshal log: %v", num, err)
				cancel()
				continue
			}
		label:
			for i := 0; i < 3; i++ {
				select {
				case <-ctx.Done():
					log.Printf("[WARN] [PhotoAlbum-Service] [Worker: %v] Context canceled or expired, dropping log: %v", num, logg)
					break label
				default:
					err = kf.writer.WriteMessages(ctx, kafka.Message{
						Topic: topic,
						Key:   []byte(logg.TraceID),
						Value: data,
					})
					if err == nil {
						metrics.AlbumKafkaProducerMessagesSent.WithLabelValues(topic).Inc()
						break label
					}
					log.Printf("[WARN] [PhotoAlbum-Service] [Worker: %v] Retry %d failed to send log: %v", num, i+1, err)
					time.Sleep(1 * time.Second)
				}
			}
			cancel()
			if err != nil {
				metrics.AlbumKafkaProducerErrorsTotal.WithLabelValues(topic).Inc()
				log.Printf("[ERROR] [PhotoAlbum-Service] [Worker: %v] Failed to send log after all retries: %v, (%v)", num, err, logg)
			}
		}
	}
}
