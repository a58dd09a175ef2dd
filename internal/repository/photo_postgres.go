package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
)

type PhotoPostgresRepo struct {
	Db *DBObject
}

func NewPhotoPostgresRepo(db *DBObject) *PhotoPostgresRepo {
	return &PhotoPostgresRepo{Db: db}
}

const CreatePhoto = "Repository-CreatePhoto"
const GetPhoto = "Repository-GetPhoto"
const GetPhotosByAlbum = "Repository-GetPhotosByAlbum"
const GetPhotosByUser = "Repository-GetPhotosByUser"
const GetPhotosByTag = "Repository-GetPhotosByTag"
const GetUserTags = "Repository-GetUserTags"
const UpdatePhotoAlbum = "Repository-UpdatePhotoAlbum"
const MovePhotosToAlbum = "Repository-MovePhotosToAlbum"
const UpdatePhotoTags = "Repository-UpdatePhotoTags"
const DeletePhoto = "Repository-DeletePhoto"
const AddBlobRef = "Repository-AddBlobRef"
const ReleaseBlobRef = "Repository-ReleaseBlobRef"
const GetUsedSpace = "Repository-GetUsedSpace"
const GetAlbumSizesByOwner = "Repository-GetAlbumSizesByOwner"
const CountPhotos = "Repository-CountPhotos"

const (
	photoColumns             = `photoid, albumid, userid, filename, content_type, size, blobid, thumbnailid, tags, upload_date`
	insertPhotoQuery         = `INSERT INTO photos (photoid, albumid, userid, filename, content_type, size, blobid, thumbnailid, tags, upload_date) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	selectPhotoQuery         = `SELECT ` + photoColumns + ` FROM photos WHERE photoid = $1`
	selectPhotosByAlbumQuery = `SELECT ` + photoColumns + ` FROM photos WHERE albumid = $1 ORDER BY upload_date`
	selectPhotosByUserQuery  = `SELECT ` + photoColumns + ` FROM photos WHERE userid = $1 ORDER BY upload_date`
	selectPhotosByTagQuery   = `SELECT ` + photoColumns + ` FROM photos WHERE userid = $1 AND $2 = ANY(tags) ORDER BY upload_date`
	selectByTagInAlbumQuery  = `SELECT ` + photoColumns + ` FROM photos WHERE userid = $1 AND $2 = ANY(tags) AND albumid = $3 ORDER BY upload_date`
	selectUserTagsQuery      = `SELECT DISTINCT unnest(tags) FROM photos WHERE userid = $1`
	selectUserTagsAlbumQuery = `SELECT DISTINCT unnest(tags) FROM photos WHERE userid = $1 AND albumid = $2`
	updatePhotoAlbumQuery    = `UPDATE photos SET albumid = $2 WHERE photoid = $1`
	movePhotosQuery          = `UPDATE photos SET albumid = $2 WHERE albumid = $1`
	updatePhotoTagsQuery     = `UPDATE photos SET tags = $2 WHERE photoid = $1`
	deletePhotoQuery         = `DELETE FROM photos WHERE photoid = $1`
	upsertBlobRefQuery       = `INSERT INTO blob_refs (blobid, refs) VALUES ($1, 1) ON CONFLICT (blobid) DO UPDATE SET refs = blob_refs.refs + 1`
	decrementBlobRefQuery    = `UPDATE blob_refs SET refs = refs - 1 WHERE blobid = $1 RETURNING refs`
	deleteBlobRefQuery       = `DELETE FROM blob_refs WHERE blobid = $1 AND refs <= 0`
	selectUsedSpaceQuery     = `SELECT COALESCE(SUM(size), 0) FROM photos`
	selectAlbumSpaceQuery    = `SELECT COALESCE(SUM(size), 0) FROM photos WHERE albumid = $1`
	selectOwnerSizesQuery    = `SELECT a.name, COALESCE(SUM(p.size), 0) FROM albums a LEFT JOIN photos p ON p.albumid = a.albumid WHERE a.ownerid = $1 GROUP BY a.name`
	countPhotosQuery         = `SELECT COUNT(*) FROM photos`
)

func (ph *PhotoPostgresRepo) CreatePhoto(ctx context.Context, photo *model.Photo) *RepositoryResponse {
	const place = CreatePhoto
	start := time.Now()
	defer DBMetrics(place, start)
	_, err := ph.Db.DB.ExecContext(ctx, insertPhotoQuery,
		photo.ID, photo.AlbumID, photo.UserID, photo.Filename, photo.ContentType,
		photo.Size, photo.BlobID, photo.ThumbnailID, pq.Array(photo.Tags), photo.UploadDate)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return SuccessResponse(Data{Photo: photo}, place, "Successful create photo metadata in database")
}
func (ph *PhotoPostgresRepo) GetPhoto(ctx context.Context, photoid string) *RepositoryResponse {
	const place = GetPhoto
	start := time.Now()
	defer DBMetrics(place, start)
	photo, err := scanPhoto(ph.Db.DB.QueryRowContext(ctx, selectPhotoQuery, photoid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "SELECT").Inc()
			return BadResponse(erro.NotFound(erro.NonExistentPhoto), place)
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return SuccessResponse(Data{Photo: photo}, place, "Successful get photo metadata from database")
}
func (ph *PhotoPostgresRepo) GetPhotosByAlbum(ctx context.Context, albumid string) *RepositoryResponse {
	const place = GetPhotosByAlbum
	return ph.queryPhotos(ctx, place, selectPhotosByAlbumQuery, []any{albumid}, "Successful get album photos metadata from database")
}
func (ph *PhotoPostgresRepo) GetPhotosByUser(ctx context.Context, userid string) *RepositoryResponse {
	const place = GetPhotosByUser
	return ph.queryPhotos(ctx, place, selectPhotosByUserQuery, []any{userid}, "Successful get user photos metadata from database")
}
func (ph *PhotoPostgresRepo) GetPhotosByTag(ctx context.Context, userid string, tag string, albumid string) *RepositoryResponse {
	const place = GetPhotosByTag
	if albumid != "" {
		return ph.queryPhotos(ctx, place, selectByTagInAlbumQuery, []any{userid, tag, albumid}, "Successful get tagged photos metadata from database")
	}
	return ph.queryPhotos(ctx, place, selectPhotosByTagQuery, []any{userid, tag}, "Successful get tagged photos metadata from database")
}
func (ph *PhotoPostgresRepo) GetUserTags(ctx context.Context, userid string, albumid string) *RepositoryResponse {
	const place = GetUserTags
	start := time.Now()
	defer DBMetrics(place, start)
	var rows *sql.Rows
	var err error
	if albumid != "" {
		rows, err = ph.Db.DB.QueryContext(ctx, selectUserTagsAlbumQuery, userid, albumid)
	} else {
		rows, err = ph.Db.DB.QueryContext(ctx, selectUserTagsQuery, userid)
	}
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	defer rows.Close()
	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		tags = append(tags, tag)
	}
	return SuccessResponse(Data{Tags: tags}, place, "Successful get user tags from database")
}
func (ph *PhotoPostgresRepo) UpdatePhotoAlbum(ctx context.Context, photoid string, albumid string) *RepositoryResponse {
	const place = UpdatePhotoAlbum
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ph.Db.DB.ExecContext(ctx, updatePhotoAlbumQuery, photoid, albumid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
		return BadResponse(erro.NotFound(erro.NonExistentPhoto), place)
	}
	return SuccessResponse(Data{}, place, "Successful move photo metadata in database")
}
func (ph *PhotoPostgresRepo) MovePhotosToAlbum(ctx context.Context, fromalbumid string, toalbumid string) *RepositoryResponse {
	const place = MovePhotosToAlbum
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ph.Db.DB.ExecContext(ctx, movePhotosQuery, fromalbumid, toalbumid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	moved, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return SuccessResponse(Data{Moved: moved}, place, "Successful move all album photos metadata in database")
}
func (ph *PhotoPostgresRepo) UpdatePhotoTags(ctx context.Context, photoid string, tags []string) *RepositoryResponse {
	const place = UpdatePhotoTags
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ph.Db.DB.ExecContext(ctx, updatePhotoTagsQuery, photoid, pq.Array(tags))
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
		return BadResponse(erro.NotFound(erro.NonExistentPhoto), place)
	}
	return SuccessResponse(Data{}, place, "Successful update photo tags in database")
}
func (ph *PhotoPostgresRepo) DeletePhoto(ctx context.Context, photoid string) *RepositoryResponse {
	const place = DeletePhoto
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ph.Db.DB.ExecContext(ctx, deletePhotoQuery, photoid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "DELETE").Inc()
		return BadResponse(erro.NotFound(erro.NonExistentPhoto), place)
	}
	return SuccessResponse(Data{}, place, "Successful delete photo metadata from database")
}
func (ph *PhotoPostgresRepo) AddBlobRef(ctx context.Context, blobid string) *RepositoryResponse {
	const place = AddBlobRef
	start := time.Now()
	defer DBMetrics(place, start)
	_, err := ph.Db.DB.ExecContext(ctx, upsertBlobRefQuery, blobid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqBlobRefs, err)), place)
	}
	return SuccessResponse(Data{}, place, "Successful increment blob reference in database")
}

// ReleaseBlobRef decrements the stored counter and reports how many
// references remain. A missing row counts as zero so a retried delete
// converges instead of failing.
func (ph *PhotoPostgresRepo) ReleaseBlobRef(ctx context.Context, blobid string) *RepositoryResponse {
	const place = ReleaseBlobRef
	start := time.Now()
	defer DBMetrics(place, start)
	var refs int64
	err := ph.Db.DB.QueryRowContext(ctx, decrementBlobRefQuery, blobid).Scan(&refs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SuccessResponse(Data{RefsLeft: 0}, place, "Blob reference was already released")
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqBlobRefs, err)), place)
	}
	if refs <= 0 {
		_, err = ph.Db.DB.ExecContext(ctx, deleteBlobRefQuery, blobid)
		if err != nil {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
			return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqBlobRefs, err)), place)
		}
	}
	return SuccessResponse(Data{RefsLeft: refs}, place, "Successful release blob reference in database")
}
func (ph *PhotoPostgresRepo) GetUsedSpace(ctx context.Context, albumid string) *RepositoryResponse {
	const place = GetUsedSpace
	start := time.Now()
	defer DBMetrics(place, start)
	var space int64
	var err error
	if albumid != "" {
		err = ph.Db.DB.QueryRowContext(ctx, selectAlbumSpaceQuery, albumid).Scan(&space)
	} else {
		err = ph.Db.DB.QueryRowContext(ctx, selectUsedSpaceQuery).Scan(&space)
	}
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return SuccessResponse(Data{Space: space}, place, "Successful get used space from database")
}
func (ph *PhotoPostgresRepo) GetAlbumSizesByOwner(ctx context.Context, ownerid string) *RepositoryResponse {
	const place = GetAlbumSizesByOwner
	start := time.Now()
	defer DBMetrics(place, start)
	rows, err := ph.Db.DB.QueryContext(ctx, selectOwnerSizesQuery, ownerid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	defer rows.Close()
	sizes := make(map[string]int64)
	for rows.Next() {
		var name string
		var size int64
		if err := rows.Scan(&name, &size); err != nil {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		sizes[name] = size
	}
	return SuccessResponse(Data{Sizes: sizes}, place, "Successful get album sizes by owner from database")
}
func (ph *PhotoPostgresRepo) CountPhotos(ctx context.Context) *RepositoryResponse {
	const place = CountPhotos
	start := time.Now()
	defer DBMetrics(place, start)
	var count int64
	err := ph.Db.DB.QueryRowContext(ctx, countPhotosQuery).Scan(&count)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return SuccessResponse(Data{Count: count}, place, "Successful count photos in database")
}

func scanPhoto(row rowScanner) (*model.Photo, error) {
	var photo model.Photo
	err := row.Scan(&photo.ID, &photo.AlbumID, &photo.UserID, &photo.Filename, &photo.ContentType,
		&photo.Size, &photo.BlobID, &photo.ThumbnailID, pq.Array(&photo.Tags), &photo.UploadDate)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}
func (ph *PhotoPostgresRepo) queryPhotos(ctx context.Context, place string, query string, args []any, message string) *RepositoryResponse {
	start := time.Now()
	defer DBMetrics(place, start)
	photoslice := make([]*model.Photo, 0)
	rows, err := ph.Db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	defer rows.Close()
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		photoslice = append(photoslice, photo)
	}
	return SuccessResponse(Data{Photos: photoslice}, place, message)
}
