package metrics

import (
	"log"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AlbumTotalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photoalbum_service_requests_total",
	Help: "Total number of requests to PhotoAlbum-Service",
}, []string{"operation"})
var AlbumErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photoalbum_service_errors_total",
	Help: "Total number of errors encountered by the PhotoAlbum-Service",
}, []string{"error_type"})
var AlbumDBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photoalbum_service_db_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the database",
	Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1},
}, []string{"query_type"})
var AlbumDBQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photoalbum_service_db_queries_total",
	Help: "Total number of queries executed on the database",
}, []string{"query_type"})
var AlbumDBErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photoalbum_service_db_errors_total",
	Help: "Total number of errors encountered when interacting with the database",
}, []string{"error_type", "query_type"})
var AlbumKafkaProducerMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photoalbum_service_kafka_producer_messages_sent_total",
	Help: "Total number of messages sent to Kafka by PhotoAlbum-Service",
}, []string{"topic"})
var AlbumKafkaProducerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photoalbum_service_kafka_producer_send_errors_total",
	Help: "Total number of errors encountered while sending messages to Kafka by PhotoAlbum-Service",
}, []string{"topic"})
var AlbumRabbitPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photoalbum_service_rabbit_published_total",
	Help: "Total number of tagging requests published to RabbitMQ",
}, []string{"queue"})
var AlbumRabbitConsumedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photoalbum_service_rabbit_consumed_total",
	Help: "Total number of tagging responses consumed from RabbitMQ",
}, []string{"queue"})
var AlbumUploadedBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "photoalbum_service_uploaded_bytes_total",
	Help: "Total number of photo bytes accepted for upload",
})
var AlbumMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "photoalbum_service_memory_usage_bytes",
	Help: "Current memory usage in bytes",
})
var stop = make(chan struct{})

func Start() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var memStats runtime.MemStats
				runtime.ReadMemStats(&memStats)
				AlbumMemoryUsage.Set(float64(memStats.Alloc))
			case <-stop:
				return
			}
		}
	}()
}
func Stop() {
	close(stop)
	log.Println("[INFO] [PhotoAlbum-Service] Successful close Metrics-Goroutine")
}
