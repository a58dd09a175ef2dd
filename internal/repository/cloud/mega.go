package cloud

import (
	"fmt"
	"log"

	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/t3rm1n4l/go-mega"
)

type CloudObject struct {
	connect    *mega.Mega
	mainfolder *mega.Node
}

func NewMegaConnection(config configs.MegaConfig) (*CloudObject, error) {
	client := mega.New()
	err := client.Login(config.Email, config.Password)
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to establish Mega-Client connection: %v", err)
		return nil, err
	}
	node := client.FS.GetRoot()
	var targetFolder *mega.Node
	files, err := client.FS.GetChildren(node)
	if err != nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Failed to get the main directory: %v", err)
		return nil, err
	}
	for _, file := range files {
		if file.GetName() == config.MainDirectory {
			targetFolder = file
			break
		}
	}
	if targetFolder == nil {
		log.Printf("[DEBUG] [PhotoAlbum-Service] Main directory %q was not found in the cloud", config.MainDirectory)
		return nil, fmt.Errorf("main directory %q was not found in the cloud", config.MainDirectory)
	}
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful connect to Mega-Client")
	return &CloudObject{
		connect:    client,
		mainfolder: targetFolder,
	}, nil
}
func (c *CloudObject) Close() {
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful close Mega-Client")
}
