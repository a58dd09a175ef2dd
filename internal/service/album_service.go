package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
)

type PhotoCleaner interface {
	CleanupPhotoBlobs(ctx context.Context, photos []*model.Photo, traceid string)
}
type AlbumService struct {
	repo           DBAlbumRepos
	photorepo      DBPhotoRepos
	userrepo       DBUserRepos
	cleaner        PhotoCleaner
	logproducer    LogProducer
	nestingallowed bool
}

func NewAlbumService(repo DBAlbumRepos, photorepo DBPhotoRepos, userrepo DBUserRepos, cleaner PhotoCleaner, logproducer LogProducer, nestingallowed bool) *AlbumService {
	return &AlbumService{
		repo:           repo,
		photorepo:      photorepo,
		userrepo:       userrepo,
		cleaner:        cleaner,
		logproducer:    logproducer,
		nestingallowed: nestingallowed,
	}
}

const UseCase_CreateAlbum = "UseCase_CreateAlbum"
const UseCase_GetAlbum = "UseCase_GetAlbum"
const UseCase_GetOwnAlbums = "UseCase_GetOwnAlbums"
const UseCase_GetSharedAlbums = "UseCase_GetSharedAlbums"
const UseCase_GetAncestors = "UseCase_GetAncestors"
const UseCase_RenameAlbum = "UseCase_RenameAlbum"
const UseCase_MoveAlbum = "UseCase_MoveAlbum"
const UseCase_DeleteAlbum = "UseCase_DeleteAlbum"
const UseCase_GrantAccess = "UseCase_GrantAccess"
const UseCase_UpdateAccess = "UseCase_UpdateAccess"
const UseCase_RevokeAccess = "UseCase_RevokeAccess"
const UseCase_GetPermissions = "UseCase_GetPermissions"
const UseCase_SetAlbumCover = "UseCase_SetAlbumCover"
const UseCase_GetAlbumSizes = "UseCase_GetAlbumSizes"
const UseCase_GetUsedSpace = "UseCase_GetUsedSpace"

// CreateAlbum creates a sub-album under the parent. The new album belongs
// to the parent's owner no matter who created it.
func (use *AlbumService) CreateAlbum(ctx context.Context, userid string, parentid string, name string) *ServiceResponse {
	const place = UseCase_CreateAlbum
	traceid := ctx.Value("traceID").(string)
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 || strings.Contains(name, "/") {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Invalid album name: %q", name))
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.InvalidAlbumName)}
	}
	parent, serviceresp := use.getAlbum(ctx, parentid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(parent, userid) && !CanAdminister(parent, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no administer access to album %s", userid, parentid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoAdministerAccess)}
	}
	if !use.nestingallowed && !parent.IsRoot {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Album %s is not a root album", parentid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NestingNotAllowed)}
	}
	album := &model.Album{
		ID:        uuid.New().String(),
		Name:      name,
		ParentID:  parentid,
		Path:      parent.ChildPath(name),
		OwnerID:   parent.OwnerID,
		CreatedAt: time.Now(),
	}
	_, serviceresp = requestToRepository(use.logproducer, use.repo.CreateAlbum(ctx, album), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The album(id = %s) has been successfully created", album.ID))
	return &ServiceResponse{Success: true, Data: Data{Album: album}}
}

// GetAlbum returns the album together with its child albums.
func (use *AlbumService) GetAlbum(ctx context.Context, userid string, albumid string) *ServiceResponse {
	const place = UseCase_GetAlbum
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !CanView(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no view access to album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoViewAccess)}
	}
	childresp, serviceresp := requestToRepository(use.logproducer, use.repo.GetChildAlbums(ctx, albumid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Album: album, Albums: childresp.Data.Albums}}
}
// GetRootAlbum returns the user's own root album, the entry point of
// their hierarchy.
func (use *AlbumService) GetRootAlbum(ctx context.Context, userid string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.repo.GetRootAlbum(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Album: bdresponse.Data.Album}}
}
func (use *AlbumService) GetOwnAlbums(ctx context.Context, userid string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.repo.GetAlbumsByOwner(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Albums: bdresponse.Data.Albums}}
}
func (use *AlbumService) GetSharedAlbums(ctx context.Context, userid string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.repo.GetSharedAlbums(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Albums: bdresponse.Data.Albums}}
}

// GetAncestors walks the parent chain up to the root and returns it
// root-first, the breadcrumb order.
func (use *AlbumService) GetAncestors(ctx context.Context, userid string, albumid string) *ServiceResponse {
	const place = UseCase_GetAncestors
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !CanView(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no view access to album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoViewAccess)}
	}
	ancestors := []*model.Album{}
	current := album
	for current.ParentID != "" {
		parent, serviceresp := use.getAlbum(ctx, current.ParentID, traceid)
		if serviceresp != nil {
			return serviceresp
		}
		ancestors = append([]*model.Album{parent}, ancestors...)
		current = parent
	}
	return &ServiceResponse{Success: true, Data: Data{Albums: ancestors}}
}

// RenameAlbum renames the album and rewrites the materialized paths of
// its whole subtree.
func (use *AlbumService) RenameAlbum(ctx context.Context, userid string, albumid string, newname string) *ServiceResponse {
	const place = UseCase_RenameAlbum
	traceid := ctx.Value("traceID").(string)
	newname = strings.TrimSpace(newname)
	if newname == "" || len(newname) > 100 || strings.Contains(newname, "/") {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Invalid album name: %q", newname))
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.InvalidAlbumName)}
	}
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is not the owner of album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NotAlbumOwner)}
	}
	if album.IsRoot {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Album %s is a root album", albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.RootAlbumRename)}
	}
	oldpath := album.Path
	album.Rename(newname)
	_, serviceresp = requestToRepository(use.logproducer, use.repo.UpdateAlbumName(ctx, albumid, newname, album.Path, oldpath), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Album: album}}
}

// MoveAlbum reparents the album. Moving an album under itself or one of
// its descendants is rejected.
func (use *AlbumService) MoveAlbum(ctx context.Context, userid string, albumid string, newparentid string) *ServiceResponse {
	const place = UseCase_MoveAlbum
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is not the owner of album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NotAlbumOwner)}
	}
	if album.IsRoot {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Album %s is a root album", albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.RootAlbumMove)}
	}
	newparent, serviceresp := use.getAlbum(ctx, newparentid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(newparent, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is not the owner of album %s", userid, newparentid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NotAlbumOwner)}
	}
	if !use.nestingallowed && !newparent.IsRoot {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Album %s is not a root album", newparentid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NestingNotAllowed)}
	}
	if newparentid == albumid || strings.HasPrefix(newparent.Path+"/", album.Path+"/") {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Album %s cannot be moved into its own subtree", albumid))
		return &ServiceResponse{Success: false, Errors: erro.Conflict(erro.AlbumMoveIntoSubtree)}
	}
	oldpath := album.Path
	album.ParentID = newparentid
	album.Path = newparent.ChildPath(album.Name)
	_, serviceresp = requestToRepository(use.logproducer, use.repo.UpdateAlbumParent(ctx, albumid, newparentid, album.Path, oldpath), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Album: album}}
}

// DeleteAlbum removes the album. Children and photos can be moved up to
// the parent first, anything left in the subtree is deleted and its blob
// references are released.
func (use *AlbumService) DeleteAlbum(ctx context.Context, userid string, albumid string, movechildrenup bool, movephotosup bool) *ServiceResponse {
	const place = UseCase_DeleteAlbum
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !IsOwner(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is not the owner of album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NotAlbumOwner)}
	}
	if album.IsRoot {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Album %s is a root album", albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.RootAlbumDelete)}
	}
	if movephotosup {
		moveresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.MovePhotosToAlbum(ctx, albumid, album.ParentID), traceid)
		if serviceresp != nil {
			return serviceresp
		}
		if moveresp.Data.Moved > 0 {
			_, serviceresp = requestToRepository(use.logproducer, use.repo.AddPhotoCount(ctx, album.ParentID, moveresp.Data.Moved), traceid)
			if serviceresp != nil {
				return serviceresp
			}
		}
	}
	if movechildrenup {
		childresp, serviceresp := requestToRepository(use.logproducer, use.repo.GetChildAlbums(ctx, albumid), traceid)
		if serviceresp != nil {
			return serviceresp
		}
		parentpath := album.Path[:strings.LastIndex(album.Path, "/")]
		for _, child := range childresp.Data.Albums {
			_, serviceresp = requestToRepository(use.logproducer, use.repo.UpdateAlbumParent(ctx, child.ID, album.ParentID, parentpath+"/"+child.Name, child.Path), traceid)
			if serviceresp != nil {
				return serviceresp
			}
		}
	}
	doomed, serviceresp := use.collectSubtreePhotos(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.repo.DeleteAlbum(ctx, albumid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	use.cleaner.CleanupPhotoBlobs(ctx, doomed, traceid)
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The album(id = %s) has been successfully deleted", albumid))
	return &ServiceResponse{Success: true}
}

// GrantAccess shares the album with another user under the given role.
func (use *AlbumService) GrantAccess(ctx context.Context, requesterid string, albumid string, targetid string, role string) *ServiceResponse {
	const place = UseCase_GrantAccess
	traceid := ctx.Value("traceID").(string)
	if !model.IsAccessRole(role) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Invalid access role: %q", role))
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.InvalidAccessRole)}
	}
	album, serviceresp := use.administeredAlbum(ctx, requesterid, albumid, place, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if targetid == album.OwnerID {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is the owner of album %s", targetid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Conflict(erro.OwnerAccessSelf)}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.userrepo.GetUserById(ctx, targetid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.repo.AddAlbumAccess(ctx, albumid, targetid, role), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("User %s was granted %s on album %s", targetid, role, albumid))
	return &ServiceResponse{Success: true}
}

// UpdateAccess changes the role of an existing grant.
func (use *AlbumService) UpdateAccess(ctx context.Context, requesterid string, albumid string, targetid string, role string) *ServiceResponse {
	const place = UseCase_UpdateAccess
	traceid := ctx.Value("traceID").(string)
	if !model.IsAccessRole(role) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Invalid access role: %q", role))
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.InvalidAccessRole)}
	}
	album, serviceresp := use.administeredAlbum(ctx, requesterid, albumid, place, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if targetid == album.OwnerID {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is the owner of album %s", targetid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Conflict(erro.OwnerAccessSelf)}
	}
	if current, ok := album.Permissions[targetid]; ok && current == role {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s already has role %s on album %s", targetid, role, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Conflict(erro.RoleAlreadySet)}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.repo.UpdateAlbumAccess(ctx, albumid, targetid, role), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true}
}

// RevokeAccess removes a grant. Users may always revoke their own access.
func (use *AlbumService) RevokeAccess(ctx context.Context, requesterid string, albumid string, targetid string) *ServiceResponse {
	const place = UseCase_RevokeAccess
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if requesterid != targetid && !CanAdminister(album, requesterid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no administer access to album %s", requesterid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoAdministerAccess)}
	}
	if targetid == album.OwnerID {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is the owner of album %s", targetid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Conflict(erro.OwnerAccessSelf)}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.repo.DeleteAlbumAccess(ctx, albumid, targetid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true}
}
func (use *AlbumService) GetPermissions(ctx context.Context, requesterid string, albumid string) *ServiceResponse {
	const place = UseCase_GetPermissions
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.administeredAlbum(ctx, requesterid, albumid, place, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Album: album}}
}

// SetAlbumCover sets or clears the album cover. An empty photo id clears it.
func (use *AlbumService) SetAlbumCover(ctx context.Context, userid string, albumid string, photoid string) *ServiceResponse {
	const place = UseCase_SetAlbumCover
	traceid := ctx.Value("traceID").(string)
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !CanEdit(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no edit access to album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoEditAccess)}
	}
	if photoid != "" {
		photoresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhoto(ctx, photoid), traceid)
		if serviceresp != nil {
			return serviceresp
		}
		if photoresp.Data.Photo.AlbumID != albumid {
			use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Photo %s does not belong to album %s", photoid, albumid))
			return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.CoverOutsideAlbum)}
		}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.repo.UpdateAlbumCover(ctx, albumid, photoid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	album.CoverPhotoID = photoid
	return &ServiceResponse{Success: true, Data: Data{Album: album}}
}
func (use *AlbumService) GetAlbumSizes(ctx context.Context, userid string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetAlbumSizesByOwner(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Sizes: bdresponse.Data.Sizes}}
}
// GetUsedSpace reports the byte total of one album, or of every album the
// caller owns when albumid is empty. The service-wide figure is only exposed
// through the admin statistics.
func (use *AlbumService) GetUsedSpace(ctx context.Context, userid string, albumid string) *ServiceResponse {
	const place = UseCase_GetUsedSpace
	traceid := ctx.Value("traceID").(string)
	if albumid == "" {
		bdresponse, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetAlbumSizesByOwner(ctx, userid), traceid)
		if serviceresp != nil {
			return serviceresp
		}
		var total int64
		for _, size := range bdresponse.Data.Sizes {
			total += size
		}
		return &ServiceResponse{Success: true, Data: Data{Space: total}}
	}
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if !CanView(album, userid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no view access to album %s", userid, albumid))
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoViewAccess)}
	}
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetUsedSpace(ctx, albumid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Space: bdresponse.Data.Space}}
}

func (use *AlbumService) getAlbum(ctx context.Context, albumid string, traceid string) (*model.Album, *ServiceResponse) {
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.repo.GetAlbum(ctx, albumid), traceid)
	if serviceresp != nil {
		return nil, serviceresp
	}
	return bdresponse.Data.Album, nil
}
func (use *AlbumService) administeredAlbum(ctx context.Context, requesterid string, albumid string, place string, traceid string) (*model.Album, *ServiceResponse) {
	album, serviceresp := use.getAlbum(ctx, albumid, traceid)
	if serviceresp != nil {
		return nil, serviceresp
	}
	if !CanAdminister(album, requesterid) {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s has no administer access to album %s", requesterid, albumid))
		return nil, &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.NoAdministerAccess)}
	}
	return album, nil
}
func (use *AlbumService) collectSubtreePhotos(ctx context.Context, albumid string, traceid string) ([]*model.Photo, *ServiceResponse) {
	photoresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhotosByAlbum(ctx, albumid), traceid)
	if serviceresp != nil {
		return nil, serviceresp
	}
	photos := photoresp.Data.Photos
	childresp, serviceresp := requestToRepository(use.logproducer, use.repo.GetChildAlbums(ctx, albumid), traceid)
	if serviceresp != nil {
		return nil, serviceresp
	}
	for _, child := range childresp.Data.Albums {
		childphotos, serviceresp := use.collectSubtreePhotos(ctx, child.ID, traceid)
		if serviceresp != nil {
			return nil, serviceresp
		}
		photos = append(photos, childphotos...)
	}
	return photos, nil
}
