package main

import (
	"github.com/niktin06sash/PhotoAlbum_service/internal/app"
	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
)

func main() {
	config := configs.LoadConfig()
	application := app.NewAlbumApplication(config)
	if err := application.Start(); err != nil {
		return
	}
}
