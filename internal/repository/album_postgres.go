package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
)

type AlbumPostgresRepo struct {
	Db *DBObject
}

func NewAlbumPostgresRepo(db *DBObject) *AlbumPostgresRepo {
	return &AlbumPostgresRepo{Db: db}
}

const CreateAlbum = "Repository-CreateAlbum"
const GetAlbum = "Repository-GetAlbum"
const GetRootAlbum = "Repository-GetRootAlbum"
const GetChildAlbums = "Repository-GetChildAlbums"
const GetAlbumsByOwner = "Repository-GetAlbumsByOwner"
const GetSharedAlbums = "Repository-GetSharedAlbums"
const UpdateAlbumName = "Repository-UpdateAlbumName"
const UpdateAlbumParent = "Repository-UpdateAlbumParent"
const DeleteAlbum = "Repository-DeleteAlbum"
const AddAlbumAccess = "Repository-AddAlbumAccess"
const UpdateAlbumAccess = "Repository-UpdateAlbumAccess"
const DeleteAlbumAccess = "Repository-DeleteAlbumAccess"
const UpdateAlbumCover = "Repository-UpdateAlbumCover"
const AddPhotoCount = "Repository-AddPhotoCount"
const CountAlbums = "Repository-CountAlbums"
const DeleteAlbumsByOwner = "Repository-DeleteAlbumsByOwner"

const (
	albumColumns           = `albumid, name, COALESCE(parentid, ''), path, ownerid, COALESCE(cover_photoid, ''), isroot, photo_count, created_at`
	insertAlbumQuery       = `INSERT INTO albums (albumid, name, parentid, path, ownerid, isroot, created_at) VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`
	selectAlbumQuery       = `SELECT ` + albumColumns + ` FROM albums WHERE albumid = $1`
	selectRootAlbumQuery   = `SELECT ` + albumColumns + ` FROM albums WHERE ownerid = $1 AND isroot = TRUE`
	selectChildAlbumsQuery = `SELECT ` + albumColumns + ` FROM albums WHERE parentid = $1 ORDER BY name`
	selectOwnAlbumsQuery   = `SELECT ` + albumColumns + ` FROM albums WHERE ownerid = $1 ORDER BY path`
	selectSharedQuery      = `SELECT a.albumid, a.name, COALESCE(a.parentid, ''), a.path, a.ownerid, COALESCE(a.cover_photoid, ''), a.isroot, a.photo_count, a.created_at FROM albums a JOIN album_permissions p ON p.albumid = a.albumid WHERE p.userid = $1 ORDER BY a.path`
	selectPermissionsQuery = `SELECT userid, role FROM album_permissions WHERE albumid = $1`
	updateAlbumNameQuery   = `UPDATE albums SET name = $2, path = $3 WHERE albumid = $1`
	updateDescendantsQuery = `UPDATE albums SET path = $2 || substring(path from char_length($1) + 1) WHERE path LIKE $3`
	updateAlbumParentQuery = `UPDATE albums SET parentid = NULLIF($2, ''), path = $3 WHERE albumid = $1`
	deleteAlbumQuery       = `DELETE FROM albums WHERE albumid = $1`
	insertAccessQuery      = `INSERT INTO album_permissions (albumid, userid, role) VALUES ($1, $2, $3) ON CONFLICT (albumid, userid) DO NOTHING`
	updateAccessQuery      = `UPDATE album_permissions SET role = $3 WHERE albumid = $1 AND userid = $2`
	deleteAccessQuery      = `DELETE FROM album_permissions WHERE albumid = $1 AND userid = $2`
	updateAlbumCoverQuery  = `UPDATE albums SET cover_photoid = NULLIF($2, '') WHERE albumid = $1`
	updatePhotoCountQuery  = `UPDATE albums SET photo_count = GREATEST(photo_count + $2, 0) WHERE albumid = $1`
	countAlbumsQuery       = `SELECT COUNT(*) FROM albums`
	deleteByOwnerQuery     = `DELETE FROM albums WHERE ownerid = $1`
)

func (ar *AlbumPostgresRepo) CreateAlbum(ctx context.Context, album *model.Album) *RepositoryResponse {
	const place = CreateAlbum
	start := time.Now()
	defer DBMetrics(place, start)
	_, err := ar.Db.DB.ExecContext(ctx, insertAlbumQuery,
		album.ID, album.Name, album.ParentID, album.Path, album.OwnerID, album.IsRoot, album.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "INSERT").Inc()
			return BadResponse(erro.Conflict(erro.DuplicateAlbumName), place)
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	return SuccessResponse(Data{Album: album}, place, "Successful create album in database")
}
func (ar *AlbumPostgresRepo) GetAlbum(ctx context.Context, albumid string) *RepositoryResponse {
	const place = GetAlbum
	start := time.Now()
	defer DBMetrics(place, start)
	album, err := ar.scanAlbum(ar.Db.DB.QueryRowContext(ctx, selectAlbumQuery, albumid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "SELECT").Inc()
			return BadResponse(erro.NotFound(erro.NonExistentAlbum), place)
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	if resp := ar.loadPermissions(ctx, album, place); resp != nil {
		return resp
	}
	return SuccessResponse(Data{Album: album}, place, "Successful get album from database")
}
func (ar *AlbumPostgresRepo) GetRootAlbum(ctx context.Context, ownerid string) *RepositoryResponse {
	const place = GetRootAlbum
	start := time.Now()
	defer DBMetrics(place, start)
	album, err := ar.scanAlbum(ar.Db.DB.QueryRowContext(ctx, selectRootAlbumQuery, ownerid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "SELECT").Inc()
			return BadResponse(erro.NotFound(erro.NonExistentAlbum), place)
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	if resp := ar.loadPermissions(ctx, album, place); resp != nil {
		return resp
	}
	return SuccessResponse(Data{Album: album}, place, "Successful get root album from database")
}
func (ar *AlbumPostgresRepo) GetChildAlbums(ctx context.Context, parentid string) *RepositoryResponse {
	const place = GetChildAlbums
	return ar.queryAlbums(ctx, place, selectChildAlbumsQuery, parentid, "Successful get child albums from database")
}
func (ar *AlbumPostgresRepo) GetAlbumsByOwner(ctx context.Context, ownerid string) *RepositoryResponse {
	const place = GetAlbumsByOwner
	return ar.queryAlbums(ctx, place, selectOwnAlbumsQuery, ownerid, "Successful get albums by owner from database")
}
func (ar *AlbumPostgresRepo) GetSharedAlbums(ctx context.Context, userid string) *RepositoryResponse {
	const place = GetSharedAlbums
	return ar.queryAlbums(ctx, place, selectSharedQuery, userid, "Successful get shared albums from database")
}
func (ar *AlbumPostgresRepo) UpdateAlbumName(ctx context.Context, albumid string, name string, path string, oldpath string) *RepositoryResponse {
	const place = UpdateAlbumName
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ar.Db.DB.ExecContext(ctx, updateAlbumNameQuery, albumid, name, path)
	if err != nil {
		if isUniqueViolation(err) {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
			return BadResponse(erro.Conflict(erro.DuplicateAlbumName), place)
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
		return BadResponse(erro.NotFound(erro.NonExistentAlbum), place)
	}
	_, err = ar.Db.DB.ExecContext(ctx, updateDescendantsQuery, oldpath, path, likeSubtreePattern(oldpath))
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	return SuccessResponse(Data{}, place, "Successful update album name in database")
}
func (ar *AlbumPostgresRepo) UpdateAlbumParent(ctx context.Context, albumid string, parentid string, path string, oldpath string) *RepositoryResponse {
	const place = UpdateAlbumParent
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ar.Db.DB.ExecContext(ctx, updateAlbumParentQuery, albumid, parentid, path)
	if err != nil {
		if isUniqueViolation(err) {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
			return BadResponse(erro.Conflict(erro.DuplicateAlbumName), place)
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
		return BadResponse(erro.NotFound(erro.NonExistentAlbum), place)
	}
	_, err = ar.Db.DB.ExecContext(ctx, updateDescendantsQuery, oldpath, path, likeSubtreePattern(oldpath))
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	return SuccessResponse(Data{}, place, "Successful update album parent in database")
}
func (ar *AlbumPostgresRepo) DeleteAlbum(ctx context.Context, albumid string) *RepositoryResponse {
	const place = DeleteAlbum
	start := time.Now()
	defer DBMetrics(place, start)
	_, err := ar.Db.DB.ExecContext(ctx, deleteAlbumQuery, albumid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	return SuccessResponse(Data{}, place, "Successful delete album from database")
}
func (ar *AlbumPostgresRepo) AddAlbumAccess(ctx context.Context, albumid string, userid string, role string) *RepositoryResponse {
	const place = AddAlbumAccess
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ar.Db.DB.ExecContext(ctx, insertAccessQuery, albumid, userid, role)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPermissions, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPermissions, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "INSERT").Inc()
		return BadResponse(erro.Conflict(erro.AlreadyHasAccess), place)
	}
	return SuccessResponse(Data{}, place, "Successful add album access in database")
}
func (ar *AlbumPostgresRepo) UpdateAlbumAccess(ctx context.Context, albumid string, userid string, role string) *RepositoryResponse {
	const place = UpdateAlbumAccess
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ar.Db.DB.ExecContext(ctx, updateAccessQuery, albumid, userid, role)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPermissions, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPermissions, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
		return BadResponse(erro.NotFound(erro.NoSuchGrant), place)
	}
	return SuccessResponse(Data{}, place, "Successful update album access in database")
}
func (ar *AlbumPostgresRepo) DeleteAlbumAccess(ctx context.Context, albumid string, userid string) *RepositoryResponse {
	const place = DeleteAlbumAccess
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ar.Db.DB.ExecContext(ctx, deleteAccessQuery, albumid, userid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPermissions, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPermissions, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "DELETE").Inc()
		return BadResponse(erro.NotFound(erro.NoSuchGrant), place)
	}
	return SuccessResponse(Data{}, place, "Successful delete album access from database")
}
func (ar *AlbumPostgresRepo) UpdateAlbumCover(ctx context.Context, albumid string, photoid string) *RepositoryResponse {
	const place = UpdateAlbumCover
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ar.Db.DB.ExecContext(ctx, updateAlbumCoverQuery, albumid, photoid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "UPDATE").Inc()
		return BadResponse(erro.NotFound(erro.NonExistentAlbum), place)
	}
	return SuccessResponse(Data{}, place, "Successful update album cover in database")
}
func (ar *AlbumPostgresRepo) AddPhotoCount(ctx context.Context, albumid string, delta int64) *RepositoryResponse {
	const place = AddPhotoCount
	start := time.Now()
	defer DBMetrics(place, start)
	_, err := ar.Db.DB.ExecContext(ctx, updatePhotoCountQuery, albumid, delta)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	return SuccessResponse(Data{}, place, "Successful update album photo count in database")
}
func (ar *AlbumPostgresRepo) CountAlbums(ctx context.Context) *RepositoryResponse {
	const place = CountAlbums
	start := time.Now()
	defer DBMetrics(place, start)
	var count int64
	err := ar.Db.DB.QueryRowContext(ctx, countAlbumsQuery).Scan(&count)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	return SuccessResponse(Data{Count: count}, place, "Successful count albums in database")
}
func (ar *AlbumPostgresRepo) DeleteAlbumsByOwner(ctx context.Context, ownerid string) *RepositoryResponse {
	const place = DeleteAlbumsByOwner
	start := time.Now()
	defer DBMetrics(place, start)
	_, err := ar.Db.DB.ExecContext(ctx, deleteByOwnerQuery, ownerid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	return SuccessResponse(Data{}, place, "Successful delete albums by owner from database")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (ar *AlbumPostgresRepo) scanAlbum(row rowScanner) (*model.Album, error) {
	var album model.Album
	err := row.Scan(&album.ID, &album.Name, &album.ParentID, &album.Path, &album.OwnerID,
		&album.CoverPhotoID, &album.IsRoot, &album.PhotoCount, &album.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &album, nil
}
func (ar *AlbumPostgresRepo) loadPermissions(ctx context.Context, album *model.Album, place string) *RepositoryResponse {
	rows, err := ar.Db.DB.QueryContext(ctx, selectPermissionsQuery, album.ID)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPermissions, err)), place)
	}
	defer rows.Close()
	album.Permissions = make(map[string]string)
	for rows.Next() {
		var userid, role string
		if err := rows.Scan(&userid, &role); err != nil {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		album.Permissions[userid] = role
	}
	return nil
}
func (ar *AlbumPostgresRepo) queryAlbums(ctx context.Context, place string, query string, arg string, message string) *RepositoryResponse {
	start := time.Now()
	defer DBMetrics(place, start)
	albumslice := make([]*model.Album, 0)
	rows, err := ar.Db.DB.QueryContext(ctx, query, arg)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	defer rows.Close()
	for rows.Next() {
		album, err := ar.scanAlbum(rows)
		if err != nil {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		albumslice = append(albumslice, album)
	}
	return SuccessResponse(Data{Albums: albumslice}, place, message)
}
func isUniqueViolation(err error) bool {
	var pqerr *pq.Error
	return errors.As(err, &pqerr) && pqerr.Code == "23505"
}

// likeSubtreePattern builds the LIKE pattern matching strict descendants of
// path. Album names may contain LIKE metacharacters, those must match
// literally.
func likeSubtreePattern(path string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(path)
	return escaped + "/%"
}
