package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
)

func NewDatabaseConnection(cfg configs.DatabaseConfig) (*DBObject, error) {
	dbObject := &DBObject{}
	connectionString := buildConnectionString(cfg)
	err := dbObject.Open(cfg.Driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = dbObject.Ping()
	if err != nil {
		dbObject.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	log.Println("[DEBUG] [PhotoAlbum-Service] Successful connect to Postgre-Client")
	return dbObject, nil
}

type DBObject struct {
	DB *sql.DB
}

func (db *DBObject) Open(driverName, connectionString string) error {
	var err error
	db.DB, err = sql.Open(driverName, connectionString)
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Postgre-Client-Open error: %v", err)
		return err
	}
	return nil
}

func (db *DBObject) Close() {
	db.DB.Close()
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful close Postgre-Client")
}

func (db *DBObject) Ping() error {
	err := db.DB.Ping()
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Postgre-Client-Ping error: %v", err)
		return err
	}
	return nil
}
func buildConnectionString(cfg configs.DatabaseConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
}
func DBMetrics(place string, start time.Time) {
	metrics.AlbumDBQueriesTotal.WithLabelValues(place).Inc()
	duration := time.Since(start).Seconds()
	metrics.AlbumDBQueryDuration.WithLabelValues(place).Observe(duration)
}
