package service

import (
	"testing"

	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestPermissions_OwnerHasEverything(t *testing.T) {
	album := &model.Album{ID: "a1", OwnerID: "owner", Permissions: map[string]string{}}
	require.True(t, IsOwner(album, "owner"))
	require.True(t, CanView(album, "owner"))
	require.True(t, CanEdit(album, "owner"))
	require.True(t, CanAdminister(album, "owner"))
}
func TestPermissions_RoleLadder(t *testing.T) {
	album := &model.Album{ID: "a1", OwnerID: "owner", Permissions: map[string]string{
		"viewer": model.RoleViewer,
		"editor": model.RoleEditor,
		"admin":  model.RoleAdministrator,
	}}
	require.True(t, CanView(album, "viewer"))
	require.False(t, CanEdit(album, "viewer"))
	require.True(t, CanEdit(album, "editor"))
	require.False(t, CanAdminister(album, "editor"))
	require.True(t, CanAdminister(album, "admin"))
	require.False(t, CanView(album, "stranger"))
}
func TestPermissions_EffectiveRole(t *testing.T) {
	album := &model.Album{ID: "a1", OwnerID: "owner", Permissions: map[string]string{"bob": model.RoleEditor}}
	role, ok := EffectiveRole(album, "owner")
	require.True(t, ok)
	require.Equal(t, model.RoleAdministrator, role)
	role, ok = EffectiveRole(album, "bob")
	require.True(t, ok)
	require.Equal(t, model.RoleEditor, role)
	_, ok = EffectiveRole(album, "stranger")
	require.False(t, ok)
}
