package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlbum_ChildPath(t *testing.T) {
	album := &Album{Name: "alice", Path: "/alice"}
	require.Equal(t, "/alice/Trip", album.ChildPath("Trip"))
}
func TestAlbum_Rename(t *testing.T) {
	album := &Album{Name: "Trip", Path: "/alice/Trip"}
	album.Rename("Vacation")
	require.Equal(t, "Vacation", album.Name)
	require.Equal(t, "/alice/Vacation", album.Path)
}
func TestPhoto_AddTag(t *testing.T) {
	photo := &Photo{Tags: []string{"beach"}}
	require.True(t, photo.AddTag("sunset"))
	require.False(t, photo.AddTag("sunset"))
	require.Equal(t, []string{"beach", "sunset"}, photo.Tags)
	require.True(t, photo.HasTag("beach"))
	require.False(t, photo.HasTag("city"))
}
func TestRoleAtLeast(t *testing.T) {
	require.True(t, RoleAtLeast(RoleAdministrator, RoleViewer))
	require.True(t, RoleAtLeast(RoleEditor, RoleEditor))
	require.False(t, RoleAtLeast(RoleViewer, RoleEditor))
	require.False(t, RoleAtLeast("UNKNOWN", RoleViewer))
}
func TestIsAccessRole(t *testing.T) {
	require.True(t, IsAccessRole(RoleViewer))
	require.True(t, IsAccessRole(RoleEditor))
	require.True(t, IsAccessRole(RoleAdministrator))
	require.False(t, IsAccessRole("OWNER"))
	require.False(t, IsAccessRole(""))
}
func TestUser_HasSystemRole(t *testing.T) {
	user := &User{Roles: []string{SystemRoleUser, SystemRoleAdmin}}
	require.True(t, user.HasSystemRole(SystemRoleAdmin))
	require.False(t, user.HasSystemRole(SystemRoleInternal))
}
