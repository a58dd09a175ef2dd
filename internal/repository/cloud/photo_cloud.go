package cloud

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository"
	"github.com/t3rm1n4l/go-mega"
)

type PhotoCloud struct {
	cloudclient *CloudObject
}

func NewPhotoCloud(cl *CloudObject) *PhotoCloud {
	return &PhotoCloud{
		cloudclient: cl,
	}
}

const UploadFile = "Repository-UploadFile"
const DownloadFile = "Repository-DownloadFile"
const DeleteFile = "Repository-DeleteFile"

// UploadFile stores the local file in the main cloud directory under the
// blob id. Blob ids already carry the extension so the stored name is the
// id itself.
func (client *PhotoCloud) UploadFile(ctx context.Context, localfilepath string, blobid string) *repository.RepositoryResponse {
	const place = UploadFile
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	default:
	}
	progresschan := make(chan int)
	donechan := make(chan int)
	go func() {
		totalbytes := 0
		for data := range progresschan {
			totalbytes += data
		}
		donechan <- totalbytes
	}()
	_, err := client.cloudclient.connect.UploadFile(localfilepath, client.cloudclient.mainfolder, blobid, &progresschan)
	if err != nil {
		fmterr := fmt.Sprintf("File upload with id = %s error: %v", blobid, err)
		return repository.BadResponse(erro.ServerError(fmterr), place)
	}
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	case tb := <-donechan:
		return &repository.RepositoryResponse{Success: true,
			Place:          place,
			SuccessMessage: fmt.Sprintf("Blob was successfully uploaded to the cloud (%v bytes uploaded)", tb),
		}
	}
}

// DownloadFile fetches the blob into a temp file and returns its local path.
// The caller owns the temp file and removes it after streaming.
func (client *PhotoCloud) DownloadFile(ctx context.Context, blobid string) *repository.RepositoryResponse {
	const place = DownloadFile
	file, err := client.findFileByName(ctx, client.cloudclient.mainfolder, blobid)
	if err != nil {
		return repository.BadResponse(erro.NotFound(erro.NonExistentBlob), place)
	}
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	default:
	}
	localpath := filepath.Join(os.TempDir(), blobid)
	err = client.cloudclient.connect.DownloadFile(file, localpath, nil)
	if err != nil {
		os.Remove(localpath)
		fmterr := fmt.Sprintf("File download with id = %s error: %v", blobid, err)
		return repository.BadResponse(erro.ServerError(fmterr), place)
	}
	return repository.SuccessResponse(repository.Data{LocalPath: localpath}, place, "Blob was successfully downloaded from cloud")
}
func (client *PhotoCloud) DeleteFile(ctx context.Context, blobid string) *repository.RepositoryResponse {
	const place = DeleteFile
	file, err := client.findFileByName(ctx, client.cloudclient.mainfolder, blobid)
	if err != nil {
		fmterr := fmt.Sprintf("Error when receiving a file with id = %s: %v", blobid, err)
		return repository.BadResponse(erro.ServerError(fmterr), place)
	}
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	default:
	}
	err = client.cloudclient.connect.Delete(file, true)
	if err != nil {
		fmterr := fmt.Sprintf("Error file deleted with id = %s: %v", blobid, err)
		return repository.BadResponse(erro.ServerError(fmterr), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Blob was successfully deleted from cloud", Place: place}
}
func (client *PhotoCloud) findFileByName(ctx context.Context, node *mega.Node, name string) (*mega.Node, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf(erro.ContextCanceled)
	default:
	}
	children, err := client.cloudclient.connect.FS.GetChildren(node)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if child.GetName() == name {
			return child, nil
		}
	}
	return nil, fmt.Errorf("blob file was not found in directory")
}
