package model

import (
	"strings"
	"time"
)

const (
	RoleViewer        = "VIEWER"
	RoleEditor        = "EDITOR"
	RoleAdministrator = "ADMINISTRATOR"
)
const (
	SystemRoleUser     = "USER"
	SystemRoleAdmin    = "ADMIN"
	SystemRoleInternal = "INTERNAL_SERVICE"
)

var roleRank = map[string]int{
	RoleViewer:        1,
	RoleEditor:        2,
	RoleAdministrator: 3,
}

func IsAccessRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}
func RoleAtLeast(role, min string) bool {
	return roleRank[role] >= roleRank[min]
}

type Album struct {
	ID           string            `json:"album_id"`
	Name         string            `json:"name"`
	ParentID     string            `json:"parent_id,omitempty"`
	Path         string            `json:"path"`
	OwnerID      string            `json:"owner_id"`
	CoverPhotoID string            `json:"cover_photo_id,omitempty"`
	IsRoot       bool              `json:"is_root"`
	PhotoCount   int64             `json:"photo_count"`
	CreatedAt    time.Time         `json:"created_at"`
	Permissions  map[string]string `json:"permissions,omitempty"`
}

// ChildPath builds the materialized path for a child album with the given name.
func (a *Album) ChildPath(name string) string {
	return a.Path + "/" + name
}

// Rename replaces the album name and the last segment of its path.
func (a *Album) Rename(newname string) {
	idx := strings.LastIndex(a.Path, "/")
	a.Path = a.Path[:idx+1] + newname
	a.Name = newname
}

type Photo struct {
	ID          string    `json:"photo_id"`
	AlbumID     string    `json:"album_id"`
	UserID      string    `json:"user_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	BlobID      string    `json:"blob_id"`
	ThumbnailID string    `json:"thumbnail_id"`
	Tags        []string  `json:"tags,omitempty"`
	UploadDate  time.Time `json:"upload_date"`
}

// AddTag appends the tag and reports whether the set changed.
func (p *Photo) AddTag(tag string) bool {
	if p.HasTag(tag) {
		return false
	}
	p.Tags = append(p.Tags, tag)
	return true
}
func (p *Photo) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type User struct {
	ID        string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) HasSystemRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type RegistrationRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type TaggingRequest struct {
	PhotoID string `json:"photoId"`
	TraceID string `json:"traceid,omitempty"`
}
type TaggingResponse struct {
	PhotoID string `json:"photoId"`
	Tag     string `json:"tag"`
	TraceID string `json:"traceid,omitempty"`
}

type AlbumGroup struct {
	AlbumID   string   `json:"album_id"`
	AlbumName string   `json:"album_name"`
	Photos    []*Photo `json:"photos"`
}

type TagGroup struct {
	Tag    string        `json:"tag"`
	Albums []*AlbumGroup `json:"albums"`
}

type Statistics struct {
	Users     int64 `json:"users"`
	Albums    int64 `json:"albums"`
	Photos    int64 `json:"photos"`
	UsedSpace int64 `json:"used_space"`
}
