package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
)

const cloudDeleteTimeout = 30 * time.Second

func (use *PhotoService) startWorkers() {
	for i := 1; i <= 3; i++ {
		use.wg.Add(1)
		go use.taskWorker(i)
	}
}

// StopWorkers drains the task queue and waits for the in-flight cloud
// deletions to finish.
func (use *PhotoService) StopWorkers() {
	close(use.task_queue)
	use.wg.Wait()
	log.Println("[DEBUG] [PhotoAlbum-Service] Successful stop PhotoService-workers")
}
func (use *PhotoService) taskWorker(num int) {
	defer use.wg.Done()
	for task := range use.task_queue {
		task()
	}
	log.Printf("[DEBUG] [PhotoAlbum-Service] [Worker: %v] Task queue closed, stopping worker", num)
}

// enqueueBlobDelete schedules removal of an unreferenced blob from the
// content store. A full queue only delays the deletion, the blob stays
// orphaned in the cloud until a later release converges.
func (use *PhotoService) enqueueBlobDelete(blobid string, traceid string) {
	const place = DeleteBlobCloud
	select {
	case use.task_queue <- func() {
		taskctx, cancel := context.WithTimeout(context.Background(), cloudDeleteTimeout)
		defer cancel()
		use.deleteBlobCloud(taskctx, blobid, traceid)
	}:
	default:
		use.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, erro.ErrorOverflowTaskQ)
	}
}
func (use *PhotoService) deleteBlobCloud(ctx context.Context, blobid string, traceid string) {
	const place = DeleteBlobCloud
	cloudresponse := use.cloud.DeleteFile(ctx, blobid)
	if !cloudresponse.Success && cloudresponse.Errors != nil {
		use.logproducer.NewAlbumLog(kafka.LogLevelError, cloudresponse.Place, traceid, cloudresponse.Errors.Message)
		return
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The blob(id = %s) has been successfully deleted from cloud", blobid))
}
