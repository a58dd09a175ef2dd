package kafka

import (
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type AlbumLog struct {
	Level     string `json:"-"`
	Service   string `json:"service"`
	Place     string `json:"place"`
	TraceID   string `json:"trace_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func (kf *KafkaProducer) NewAlbumLog(level, place, traceid, msg string) {
	newlog := AlbumLog{
		Level:     level,
		Service:   "PhotoAlbum-Service",
		Place:     place,
		TraceID:   traceid,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   msg,
	}
	select {
	case <-kf.context.Done():
		log.Printf("[WARN] [PhotoAlbum-Service] Producer closing, dropping log: %+v", newlog)
		return
	case kf.logchan <- newlog:
	default:
		log.Printf("[WARN] [PhotoAlbum-Service] Log channel is full, dropping log: %+v", newlog)
	}
}

type serviceLog struct {
	Message string `json:"service_log"`
}

const logStartService = "PhotoAlbum-Service has started"
const logCloseService = "PhotoAlbum-Service has stopped"

func (kf *KafkaProducer) LogStart() {
	kf.sendServiceLog(serviceLog{Message: logStartService})
}
func (kf *KafkaProducer) LogClose() {
	kf.sendServiceLog(serviceLog{Message: logCloseService})
}
func (kf *KafkaProducer) sendServiceLog(logg serviceLog) {
	for _, topic := range kf.topics {
		select {
		case <-kf.context.Done():
			log.Printf("[DEBUG] [PhotoAlbum-Service] Context canceled or expired before send Service Log")
			return
		default:
			data, err := json.Marshal(logg)
			if err != nil {
				log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to marshal log: %v", err)
				return
			}
			err = kf.writer.WriteMessages(kf.context, kafka.Message{
				Topic: topic,
				Value: data,
			})
			if err != nil {
				log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to send Service Log(%v): %v", logg, err)
			}
		}
	}
}
