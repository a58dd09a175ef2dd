package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"github.com/streadway/amqp"
)

const NewTaggingRequest = "RabbitProducer-NewTaggingRequest"

// NewTaggingRequest publishes the photo id to the tagging request queue.
// Delivery is best effort: the caller treats a publish failure as a lost
// tagging opportunity, not a failed upload.
func (rp *RabbitProducer) NewTaggingRequest(photoid string, traceid string) error {
	const place = NewTaggingRequest
	body, err := json.Marshal(&model.TaggingRequest{PhotoID: photoid, TraceID: traceid})
	if err != nil {
		rp.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erroMarshal, err))
		return err
	}
	for attempt := 1; attempt <= 3; attempt++ {
		select {
		case <-rp.context.Done():
			rp.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, "RabbitProducer's context was canceled")
			return rp.context.Err()
		default:
			err = rp.channel.Publish(
				"",
				rp.config.RequestQueue,
				false,
				false,
				amqp.Publishing{
					ContentType: "application/json",
					Body:        body,
				},
			)
			if err == nil {
				metrics.AlbumRabbitPublishedTotal.WithLabelValues(rp.config.RequestQueue).Inc()
				rp.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Tagging request for photo %s was published on attempt %d", photoid, attempt))
				return nil
			}
			rp.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Attempt %d failed to publish tagging request: %v", attempt, err))
			time.Sleep(time.Second)
		}
	}
	return err
}

const erroMarshal = "Failed to marshal message: %v"
