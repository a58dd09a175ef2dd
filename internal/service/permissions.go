package service

import (
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
)

// IsOwner reports whether the user owns the album. Ownership is not stored
// in the permissions map, the owner implicitly holds every capability.
func IsOwner(album *model.Album, userid string) bool {
	return album.OwnerID == userid
}

// EffectiveRole returns the user's role on the album and whether any access
// exists at all. The owner resolves to ADMINISTRATOR.
func EffectiveRole(album *model.Album, userid string) (string, bool) {
	if IsOwner(album, userid) {
		return model.RoleAdministrator, true
	}
	role, ok := album.Permissions[userid]
	return role, ok
}

func CanView(album *model.Album, userid string) bool {
	role, ok := EffectiveRole(album, userid)
	return ok && model.RoleAtLeast(role, model.RoleViewer)
}
func CanEdit(album *model.Album, userid string) bool {
	role, ok := EffectiveRole(album, userid)
	return ok && model.RoleAtLeast(role, model.RoleEditor)
}
func CanAdminister(album *model.Album, userid string) bool {
	role, ok := EffectiveRole(album, userid)
	return ok && model.RoleAtLeast(role, model.RoleAdministrator)
}
