package service

import (
	"context"
	"io"
	"time"

	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository"
)

type DBAlbumRepos interface {
	CreateAlbum(ctx context.Context, album *model.Album) *repository.RepositoryResponse
	GetAlbum(ctx context.Context, albumid string) *repository.RepositoryResponse
	GetRootAlbum(ctx context.Context, ownerid string) *repository.RepositoryResponse
	GetChildAlbums(ctx context.Context, parentid string) *repository.RepositoryResponse
	GetAlbumsByOwner(ctx context.Context, ownerid string) *repository.RepositoryResponse
	GetSharedAlbums(ctx context.Context, userid string) *repository.RepositoryResponse
	UpdateAlbumName(ctx context.Context, albumid string, name string, path string, oldpath string) *repository.RepositoryResponse
	UpdateAlbumParent(ctx context.Context, albumid string, parentid string, path string, oldpath string) *repository.RepositoryResponse
	DeleteAlbum(ctx context.Context, albumid string) *repository.RepositoryResponse
	AddAlbumAccess(ctx context.Context, albumid string, userid string, role string) *repository.RepositoryResponse
	UpdateAlbumAccess(ctx context.Context, albumid string, userid string, role string) *repository.RepositoryResponse
	DeleteAlbumAccess(ctx context.Context, albumid string, userid string) *repository.RepositoryResponse
	UpdateAlbumCover(ctx context.Context, albumid string, photoid string) *repository.RepositoryResponse
	AddPhotoCount(ctx context.Context, albumid string, delta int64) *repository.RepositoryResponse
	CountAlbums(ctx context.Context) *repository.RepositoryResponse
	DeleteAlbumsByOwner(ctx context.Context, ownerid string) *repository.RepositoryResponse
}
type DBPhotoRepos interface {
	CreatePhoto(ctx context.Context, photo *model.Photo) *repository.RepositoryResponse
	GetPhoto(ctx context.Context, photoid string) *repository.RepositoryResponse
	GetPhotosByAlbum(ctx context.Context, albumid string) *repository.RepositoryResponse
	GetPhotosByUser(ctx context.Context, userid string) *repository.RepositoryResponse
	GetPhotosByTag(ctx context.Context, userid string, tag string, albumid string) *repository.RepositoryResponse
	GetUserTags(ctx context.Context, userid string, albumid string) *repository.RepositoryResponse
	UpdatePhotoAlbum(ctx context.Context, photoid string, albumid string) *repository.RepositoryResponse
	MovePhotosToAlbum(ctx context.Context, fromalbumid string, toalbumid string) *repository.RepositoryResponse
	UpdatePhotoTags(ctx context.Context, photoid string, tags []string) *repository.RepositoryResponse
	DeletePhoto(ctx context.Context, photoid string) *repository.RepositoryResponse
	AddBlobRef(ctx context.Context, blobid string) *repository.RepositoryResponse
	ReleaseBlobRef(ctx context.Context, blobid string) *repository.RepositoryResponse
	GetUsedSpace(ctx context.Context, albumid string) *repository.RepositoryResponse
	GetAlbumSizesByOwner(ctx context.Context, ownerid string) *repository.RepositoryResponse
	CountPhotos(ctx context.Context) *repository.RepositoryResponse
}
type DBUserRepos interface {
	CreateUser(ctx context.Context, user *model.User) *repository.RepositoryResponse
	GetUserById(ctx context.Context, userid string) *repository.RepositoryResponse
	GetUserByEmail(ctx context.Context, email string) *repository.RepositoryResponse
	GetUserByUsername(ctx context.Context, username string) *repository.RepositoryResponse
	SearchUsers(ctx context.Context, fragment string) *repository.RepositoryResponse
	DeleteUser(ctx context.Context, userid string) *repository.RepositoryResponse
	CountUsers(ctx context.Context) *repository.RepositoryResponse
}
type CloudPhotoStorage interface {
	UploadFile(ctx context.Context, localfilepath string, blobid string) *repository.RepositoryResponse
	DownloadFile(ctx context.Context, blobid string) *repository.RepositoryResponse
	DeleteFile(ctx context.Context, blobid string) *repository.RepositoryResponse
}
type CacheTokenRepos interface {
	AddRevokedToken(ctx context.Context, token string, ttl time.Duration) *repository.RepositoryResponse
	IsTokenRevoked(ctx context.Context, token string) *repository.RepositoryResponse
}
type LogProducer interface {
	NewAlbumLog(level, place, traceid, msg string)
}
type TaggingProducer interface {
	NewTaggingRequest(photoid string, traceid string) error
}

type ServiceResponse struct {
	Success bool
	Data    Data
	Errors  *erro.CustomError
}
type Data struct {
	Album       *model.Album
	Albums      []*model.Album
	Photo       *model.Photo
	Photos      []*model.Photo
	User        *model.User
	Users       []*model.User
	Groups      []*model.AlbumGroup
	TagGroups   []*model.TagGroup
	Tags        []string
	Tokens      *model.TokenPair
	Content     io.ReadCloser
	Filename    string
	ContentType string
	Stats       *model.Statistics
	Sizes       map[string]int64
	UserID      string
	PhotoID     string
	Roles       []string
	Count       int64
	Space       int64
}

const MaxFileSize = 25 << 20

// requestToRepository normalizes a repository response for the caller.
// Server faults are logged with their real cause and replaced with the
// generic unavailability message so internals never leak outward.
func requestToRepository(logproducer LogProducer, response *repository.RepositoryResponse, traceid string) (*repository.RepositoryResponse, *ServiceResponse) {
	if !response.Success && response.Errors != nil {
		switch response.Errors.Type {
		case erro.ServerErrorType:
			logproducer.NewAlbumLog(kafka.LogLevelError, response.Place, traceid, response.Errors.Message)
			response.Errors.Message = erro.AlbumServiceUnavalaible
			return response, &ServiceResponse{Success: false, Errors: response.Errors}

		case erro.ClientErrorType:
			logproducer.NewAlbumLog(kafka.LogLevelWarn, response.Place, traceid, response.Errors.Message)
			return response, &ServiceResponse{Success: false, Errors: response.Errors}
		}
	}
	logproducer.NewAlbumLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
	return response, nil
}
