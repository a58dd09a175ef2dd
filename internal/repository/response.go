package repository

import (
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
)

type RepositoryResponse struct {
	Success        bool
	SuccessMessage string
	Place          string
	Data           Data
	Errors         *erro.CustomError
}
type Data struct {
	Album     *model.Album
	Albums    []*model.Album
	Photo     *model.Photo
	Photos    []*model.Photo
	User      *model.User
	Users     []*model.User
	Tags      []string
	Sizes     map[string]int64
	LocalPath string
	RefsLeft  int64
	Moved     int64
	Count     int64
	Space     int64
	Revoked   bool
}

func BadResponse(err *erro.CustomError, place string) *RepositoryResponse {
	return &RepositoryResponse{
		Success: false,
		Errors:  err,
		Place:   place,
	}
}
func SuccessResponse(data Data, place string, message string) *RepositoryResponse {
	return &RepositoryResponse{
		Success:        true,
		Data:           data,
		Place:          place,
		SuccessMessage: message,
	}
}
