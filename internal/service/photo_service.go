package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
)

type PhotoService struct {
	photorepo   DBPhotoRepos
	albumrepo   DBAlbumRepos
	cloud       CloudPhotoStorage
	tagging     TaggingProducer
	logproducer LogProducer
	task_queue  chan func()
	wg          *sync.WaitGroup
}

func NewPhotoService(photorepo DBPhotoRepos, albumrepo DBAlbumRepos, cloud CloudPhotoStorage, tagging TaggingProducer, logproducer LogProducer) *PhotoService {
	service := &PhotoService{
		photorepo:   photorepo,
		albumrepo:   albumrepo,
		cloud:       cloud,
		tagging:     tagging,
		logproducer: logproducer,
		task_queue:  make(chan func(), 100),
		wg:          &sync.WaitGroup{},
	}
	service.startWorkers()
	return service
}

const UseCase_UploadPhoto = "UseCase_UploadPhoto"
const UseCase_DownloadPhoto = "UseCase_DownloadPhoto"
const UseCase_DeletePhoto = "UseCase_DeletePhoto"
const UseCase_MovePhoto = "UseCase_MovePhoto"
const UseCase_DuplicatePhoto = "UseCase_DuplicatePhoto"
const UseCase_SetTags = "UseCase_SetTags"
const UseCase_ApplyTag = "UseCase_ApplyTag"
const UseCase_GetAlbumPhotos = "UseCase_GetAlbumPhotos"
const UseCase_GetPhotosByTag = "UseCase_GetPhotosByTag"
const UseCase_GetUserTags = "UseCase_GetUserTags"
const UseCase_GetSharedView = "UseCase_GetSharedView"
const UseCase_GetTagGroups = "UseCase_GetTagGroups"
const UseCase_DeleteAlbumPhotos = "UseCase_DeleteAlbumPhotos"
const CleanupPhotos = "CleanupPhotos"
const DeleteBlobCloud = "DeleteBlobCloud"

// UploadPhoto validates the file, stores the original and a generated
// thumbnail in the content store, registers both blobs and creates the
// photo row. Tag detection is requested asynchronously and its failure
// never fails the upload.
func (use *PhotoService) UploadPhoto(ctx context.Context, userid string, albumid string, filename string, file []byte) *ServiceResponse {
	const place = UseCase_UploadPhoto
	traceid := ctx.Value("traceID").(string)
	if len(file) > MaxFileSize {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("File too large: %v bytes", len(file)))
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.LargeFile)}
	}
	contenttype, ok := contentTypeByExtension(filename)
	if !ok {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Invalid file extension: %s", filename))
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.InvalidFileFormat)}
	}
	detected := http.DetectContentType(file)
	if detected != contenttype {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("File content %s does not match extension of %s", detected, filename))
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.InvalidFileFormat)}
	}
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !CanEdit(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no edit access to album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoEditAccess)}
	}
	thumb, err := makeThumbnail(file)
	if err != nil {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, err.Error())
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.InvalidFileFormat)}
	}
	photoid := uuid.New().String()
	blobid := photoid + extensionByFilename(filename)
	thumbnailid := photoid + thumbnailSuffix
	serviceresp = use.storeBlob(ctx, blobid, file, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	serviceresp = use.storeBlob(ctx, thumbnailid, thumb, traceid)
	if serviceresp != nil {
		use.enqueueBlobDelete(blobid, traceid)
		return serviceresp
	}
	photo := &model.Photo{
		ID:          photoid,
		AlbumID:     albumid,
		UserID:      userid,
		Filename:    filename,
		ContentType: contenttype,
		Size:        int64(len(file)),
		BlobID:      blobid,
		ThumbnailID: thumbnailid,
		Tags:        []string{},
		UploadDate:  time.Now(),
	}
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.AddBlobRef(ctx, blobid), traceid)
	if serviceresp != nil {
		use.CleanupPhotoBlobs(ctx, []*model.Photo{photo}, traceid)
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.AddBlobRef(ctx, thumbnailid), traceid)
	if serviceresp != nil {
		use.CleanupPhotoBlobs(ctx, []*model.Photo{photo}, traceid)
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.CreatePhoto(ctx, photo), traceid)
	if serviceresp != nil {
		use.CleanupPhotoBlobs(ctx, []*model.Photo{photo}, traceid)
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.AddPhotoCount(ctx, albumid, 1), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	metrics.AlbumUploadedBytesTotal.Add(float64(len(file)))
	use.tagging.NewTaggingRequest(photoid, traceid)
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The photo(id = %s) has been successfully uploaded to cloud and database", photoid))
	return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
}

// DownloadPhoto streams the original blob, or the thumbnail when asked.
// The returned Content removes its backing temp file on Close.
func (use *PhotoService) DownloadPhoto(ctx context.Context, userid string, photoid string, thumbnail bool) *ServiceResponse {
	const place = UseCase_DownloadPhoto
	traceid := ctx.Value("traceID").(string)
	photo, album, serviceresp := use.getPhotoWithAlbum(ctx, photoid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !CanView(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no view access to album %s", userid, album.ID))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoViewAccess)}
	}
	blobid := photo.BlobID
	contenttype := photo.ContentType
	if thumbnail {
		blobid = photo.ThumbnailID
		contenttype = "image/jpeg"
	}
	cloudresp, serviceresp := requestToRepository(use.logproducer, use.cloud.DownloadFile(ctx, blobid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	content, err := openTempFile(cloudresp.Data.LocalPath)
	if err != nil {
		use.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to open temp file: %v", err))
		os.Remove(cloudresp.Data.LocalPath)
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AlbumServiceUnavalaible)}
	}
	return &ServiceResponse{Success: true, Data: Data{Content: content, Filename: photo.Filename, ContentType: contenttype}}
}

// DeletePhoto removes the row, fixes the album counter and releases the
// blob references. Cloud files are deleted asynchronously once their
// last reference is gone.
func (use *PhotoService) DeletePhoto(ctx context.Context, userid string, photoid string) *ServiceResponse {
	const place = UseCase_DeletePhoto
	traceid := ctx.Value("traceID").(string)
	photo, album, serviceresp := use.getPhotoWithAlbum(ctx, photoid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is not the owner of album %s", userid, album.ID))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NotAlbumOwner)}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.DeletePhoto(ctx, photoid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.AddPhotoCount(ctx, album.ID, -1), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if album.CoverPhotoID == photoid {
		_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.UpdateAlbumCover(ctx, album.ID, ""), traceid)
		if serviceresp != nil {
			return serviceresp
		}
	}
	use.CleanupPhotoBlobs(ctx, []*model.Photo{photo}, traceid)
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The photo(id = %s) has been successfully deleted", photoid))
	return &ServiceResponse{Success: true, Data: Data{PhotoID: photoid}}
}

// MovePhoto transfers the photo between two albums of the same owner.
func (use *PhotoService) MovePhoto(ctx context.Context, userid string, photoid string, toalbumid string) *ServiceResponse {
	const place = UseCase_MovePhoto
	traceid := ctx.Value("traceID").(string)
	photo, fromalbum, serviceresp := use.getPhotoWithAlbum(ctx, photoid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	toalbum, serviceresp := use.getAlbum(ctx, toalbumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(fromalbum, userid) || !IsOwner(toalbum, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s does not own both albums %s and %s", userid, fromalbum.ID, toalbumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NotAlbumOwner)}
	}
	if fromalbum.ID == toalbumid {
		return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.UpdatePhotoAlbum(ctx, photoid, toalbumid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.AddPhotoCount(ctx, fromalbum.ID, -1), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.AddPhotoCount(ctx, toalbumid, 1), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if fromalbum.CoverPhotoID == photoid {
		_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.UpdateAlbumCover(ctx, fromalbum.ID, ""), traceid)
		if serviceresp != nil {
			return serviceresp
		}
	}
	photo.AlbumID = toalbumid
	return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
}

// DuplicatePhoto creates a new photo row that shares the original's blobs.
// Both blob references are incremented so either copy can be deleted
// independently.
func (use *PhotoService) DuplicatePhoto(ctx context.Context, userid string, photoid string, toalbumid string) *ServiceResponse {
	const place = UseCase_DuplicatePhoto
	traceid := ctx.Value("traceID").(string)
	photo, fromalbum, serviceresp := use.getPhotoWithAlbum(ctx, photoid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	toalbum, serviceresp := use.getAlbum(ctx, toalbumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !CanEdit(fromalbum, userid) || !CanEdit(toalbum, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no edit access to albums %s and %s", userid, fromalbum.ID, toalbumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoEditAccess)}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.AddBlobRef(ctx, photo.BlobID), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.AddBlobRef(ctx, photo.ThumbnailID), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	copyphoto := &model.Photo{
		ID:          uuid.New().String(),
		AlbumID:     toalbumid,
		UserID:      userid,
		Filename:    photo.Filename,
		ContentType: photo.ContentType,
		Size:        photo.Size,
		BlobID:      photo.BlobID,
		ThumbnailID: photo.ThumbnailID,
		Tags:        append([]string{}, photo.Tags...),
		UploadDate:  time.Now(),
	}
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.CreatePhoto(ctx, copyphoto), traceid)
	if serviceresp != nil {
		use.CleanupPhotoBlobs(ctx, []*model.Photo{copyphoto}, traceid)
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.AddPhotoCount(ctx, toalbumid, 1), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The photo(id = %s) has been duplicated as %s", photoid, copyphoto.ID))
	return &ServiceResponse{Success: true, Data: Data{Photo: copyphoto}}
}

// SetTags replaces the photo's tags with a normalized set.
func (use *PhotoService) SetTags(ctx context.Context, userid string, photoid string, tags []string) *ServiceResponse {
	const place = UseCase_SetTags
	traceid := ctx.Value("traceID").(string)
	photo, album, serviceresp := use.getPhotoWithAlbum(ctx, photoid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is not the owner of album %s", userid, album.ID))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NotAlbumOwner)}
	}
	normalized := normalizeTags(tags)
	_, serviceresp = requestToRepository(use.logproducer, use.photorepo.UpdatePhotoTags(ctx, photoid, normalized), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	photo.Tags = normalized
	return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
}

// ApplyTag adds a single tag produced by the tagging service. A photo
// deleted before its tag arrived is not an error, the result is simply
// dropped.
func (use *PhotoService) ApplyTag(ctx context.Context, photoid string, tag string) *ServiceResponse {
	const place = UseCase_ApplyTag
	traceid := ctx.Value("traceID").(string)
	tag = strings.TrimSpace(tag)
	if tag == "" {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Received blank tag for photo %s, dropping", photoid))
		return &ServiceResponse{Success: true}
	}
	bdresponse := use.photorepo.GetPhoto(ctx, photoid)
	if !bdresponse.Success && bdresponse.Errors != nil {
		if bdresponse.Errors.Code == erro.CodeNotFound {
			use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Photo %s no longer exists, dropping tag %q", photoid, tag))
			return &ServiceResponse{Success: true}
		}
		_, serviceresp := requestToRepository(use.logproducer, bdresponse, traceid)
		return serviceresp
	}
	photo := bdresponse.Data.Photo
	if !photo.AddTag(tag) {
		use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Photo %s already has tag %q", photoid, tag))
		return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
	}
	_, serviceresp := requestToRepository(use.logproducer, use.photorepo.UpdatePhotoTags(ctx, photoid, photo.Tags), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Tag %q was applied to photo %s", tag, photoid))
	return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
}

func (use *PhotoService) GetAlbumPhotos(ctx context.Context, userid string, albumid string) *ServiceResponse {
	const place = UseCase_GetAlbumPhotos
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !CanView(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no view access to album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoViewAccess)}
	}
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhotosByAlbum(ctx, albumid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Photos: bdresponse.Data.Photos}}
}

// GetPhotosByTag filters the user's photos by tag, over all albums or
// scoped to one album.
func (use *PhotoService) GetPhotosByTag(ctx context.Context, userid string, tag string, albumid string) *ServiceResponse {
	const place = UseCase_GetPhotosByTag
	traceid := ctx.Value("traceID").(string)
	if albumid != "" {
		album, serviceresp := use.getAlbum(ctx, albumid, traceid)
		if serviceresp != nil {
			return serviceresp
		}
		if !CanView(album, userid) {
			use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no view access to album %s", userid, albumid))
			return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoViewAccess)}
		}
	}
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhotosByTag(ctx, userid, tag, albumid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Photos: bdresponse.Data.Photos}}
}

func (use *PhotoService) GetUserTags(ctx context.Context, userid string, albumid string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetUserTags(ctx, userid, albumid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Tags: bdresponse.Data.Tags}}
}

// GetSharedView groups the photos of every album shared with the user.
func (use *PhotoService) GetSharedView(ctx context.Context, userid string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.albumrepo.GetSharedAlbums(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	groups := []*model.AlbumGroup{}
	for _, album := range bdresponse.Data.Albums {
		photoresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhotosByAlbum(ctx, album.ID), traceid)
		if serviceresp != nil {
			return serviceresp
		}
		groups = append(groups, &model.AlbumGroup{AlbumID: album.ID, AlbumName: album.Name, Photos: photoresp.Data.Photos})
	}
	return &ServiceResponse{Success: true, Data: Data{Groups: groups}}
}

// GetTagGroups builds the user's photos grouped by tag and, inside each
// tag, by album.
func (use *PhotoService) GetTagGroups(ctx context.Context, userid string) *ServiceResponse {
	const place = UseCase_GetTagGroups
	traceid := ctx.Value("traceID").(string)
	tagresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetUserTags(ctx, userid, ""), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	albumnames := map[string]string{}
	taggroups := []*model.TagGroup{}
	for _, tag := range tagresp.Data.Tags {
		photoresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhotosByTag(ctx, userid, tag, ""), traceid)
		if serviceresp != nil {
			return serviceresp
		}
		byalbum := map[string]*model.AlbumGroup{}
		order := []string{}
		for _, photo := range photoresp.Data.Photos {
			group, ok := byalbum[photo.AlbumID]
			if !ok {
				name, known := albumnames[photo.AlbumID]
				if !known {
					album, serviceresp := use.getAlbum(ctx, photo.AlbumID, traceid)
					if serviceresp != nil {
						return serviceresp
					}
					name = album.Name
					albumnames[photo.AlbumID] = name
				}
				group = &model.AlbumGroup{AlbumID: photo.AlbumID, AlbumName: name}
				byalbum[photo.AlbumID] = group
				order = append(order, photo.AlbumID)
			}
			group.Photos = append(group.Photos, photo)
		}
		taggroup := &model.TagGroup{Tag: tag}
		for _, albumid := range order {
			taggroup.Albums = append(taggroup.Albums, byalbum[albumid])
		}
		taggroups = append(taggroups, taggroup)
	}
	return &ServiceResponse{Success: true, Data: Data{TagGroups: taggroups}}
}

// DeleteAlbumPhotos removes every photo of the album while keeping the
// album itself.
func (use *PhotoService) DeleteAlbumPhotos(ctx context.Context, userid string, albumid string) *ServiceResponse {
	const place = UseCase_DeleteAlbumPhotos
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is not the owner of album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NotAlbumOwner)}
	}
	photoresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhotosByAlbum(ctx, albumid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	photos := photoresp.Data.Photos
	if len(photos) == 0 {
		return &ServiceResponse{Success: true, Data: Data{Count: 0}}
	}
	for _, photo := range photos {
		_, serviceresp = requestToRepository(use.logproducer, use.photorepo.DeletePhoto(ctx, photo.ID), traceid)
		if serviceresp != nil {
			return serviceresp
		}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.AddPhotoCount(ctx, albumid, -int64(len(photos))), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if album.CoverPhotoID != "" {
		_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.UpdateAlbumCover(ctx, albumid, ""), traceid)
		if serviceresp != nil {
			return serviceresp
		}
	}
	use.CleanupPhotoBlobs(ctx, photos, traceid)
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("All %d photos of album %s have been deleted", len(photos), albumid))
	return &ServiceResponse{Success: true, Data: Data{Count: int64(len(photos))}}
}

// CleanupPhotoBlobs releases every blob reference of the given photos and
// schedules cloud deletion for blobs that reached zero references.
func (use *PhotoService) CleanupPhotoBlobs(ctx context.Context, photos []*model.Photo, traceid string) {
	const place = CleanupPhotos
	for _, photo := range photos {
		for _, blobid := range []string{photo.BlobID, photo.ThumbnailID} {
			bdresponse := use.photorepo.ReleaseBlobRef(ctx, blobid)
			if !bdresponse.Success && bdresponse.Errors != nil {
				use.logproducer.NewAlbumLog(kafka.LogLevelError, bdresponse.Place, traceid, bdresponse.Errors.Message)
				continue
			}
			use.logproducer.NewAlbumLog(kafka.LogLevelInfo, bdresponse.Place, traceid, bdresponse.SuccessMessage)
			if bdresponse.Data.RefsLeft == 0 {
				use.enqueueBlobDelete(blobid, traceid)
			}
		}
	}
}

func (use *PhotoService) getAlbum(ctx context.Context, albumid string, traceid string) (*model.Album, *ServiceResponse) {
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.albumrepo.GetAlbum(ctx, albumid), traceid)
	if serviceresp != nil {
		return nil, serviceresp
	}
	return bdresponse.Data.Album, nil
}
func (use *PhotoService) getPhotoWithAlbum(ctx context.Context, photoid string, traceid string) (*model.Photo, *model.Album, *ServiceResponse) {
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhoto(ctx, photoid), traceid)
	if serviceresp != nil {
		return nil, nil, serviceresp
	}
	photo := bdresponse.Data.Photo
	album, serviceresp := use.getAlbum(ctx, photo.AlbumID, traceid)
	if serviceresp != nil {
		return nil, nil, serviceresp
	}
	return photo, album, nil
}
func (use *PhotoService) storeBlob(ctx context.Context, blobid string, data []byte, traceid string) *ServiceResponse {
	const place = UseCase_UploadPhoto
	tempfile, err := writeTempFile(blobid, data)
	if err != nil {
		use.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to create temp file: %v", err))
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AlbumServiceUnavalaible)}
	}
	defer func() {
		if err := os.Remove(tempfile); err != nil {
			use.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to remove temp file: %v", err))
		}
	}()
	_, serviceresp := requestToRepository(use.logproducer, use.cloud.UploadFile(ctx, tempfile, blobid), traceid)
	return serviceresp
}
func normalizeTags(tags []string) []string {
	normalized := []string{}
	seen := map[string]bool{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}
