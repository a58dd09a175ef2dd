package service

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository"
	mock_service "github.com/niktin06sash/PhotoAlbum_service/internal/service/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userServiceMocks struct {
	userrepo  *mock_service.MockDBUserRepos
	albumrepo *mock_service.MockDBAlbumRepos
	photorepo *mock_service.MockDBPhotoRepos
	cleaner   *fakeCleaner
}

func newUserServiceForTest(ctrl *gomock.Controller) (*UserService, userServiceMocks) {
	mocks := userServiceMocks{
		userrepo:  mock_service.NewMockDBUserRepos(ctrl),
		albumrepo: mock_service.NewMockDBAlbumRepos(ctrl),
		photorepo: mock_service.NewMockDBPhotoRepos(ctrl),
		cleaner:   &fakeCleaner{},
	}
	svc := NewUserService(mocks.userrepo, mocks.albumrepo, mocks.photorepo, mocks.cleaner, anyLogProducer(ctrl))
	return svc, mocks
}

func TestRegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newUserServiceForTest(ctrl)
	ctx := testContext()
	mocks.userrepo.EXPECT().CountUsers(gomock.Any()).Return(repository.SuccessResponse(repository.Data{Count: 5}, repository.CountUsers, "ok"))
	mocks.userrepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, repository.CreateUser, "ok"))
	mocks.albumrepo.EXPECT().CreateAlbum(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, repository.CreateAlbum, "ok"))

	resp := svc.RegisterUser(ctx, &model.RegistrationRequest{Username: "alice", Email: "alice@example.com", Password: "pass12345"})
	require.True(t, resp.Success)
	require.Equal(t, []string{model.SystemRoleUser}, resp.Data.User.Roles)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.Data.User.Password), []byte("pass12345")))
	require.Equal(t, "alice", resp.Data.Album.Name)
	require.Equal(t, "/alice", resp.Data.Album.Path)
	require.True(t, resp.Data.Album.IsRoot)
	require.Equal(t, resp.Data.User.ID, resp.Data.Album.OwnerID)
}
func TestRegisterUser_FirstUserIsAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newUserServiceForTest(ctrl)
	ctx := testContext()
	mocks.userrepo.EXPECT().CountUsers(gomock.Any()).Return(repository.SuccessResponse(repository.Data{Count: 0}, repository.CountUsers, "ok"))
	mocks.userrepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, repository.CreateUser, "ok"))
	mocks.albumrepo.EXPECT().CreateAlbum(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, repository.CreateAlbum, "ok"))

	resp := svc.RegisterUser(ctx, &model.RegistrationRequest{Username: "alice", Email: "alice@example.com", Password: "pass12345"})
	require.True(t, resp.Success)
	require.Equal(t, []string{model.SystemRoleUser, model.SystemRoleAdmin}, resp.Data.User.Roles)
}
func TestRegisterUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newUserServiceForTest(ctrl)

	resp := svc.RegisterUser(testContext(), &model.RegistrationRequest{Username: "al", Email: "not-an-email", Password: "short"})
	require.False(t, resp.Success)
	require.Equal(t, erro.InvalidRegistrationData, resp.Errors.Message)
	require.Equal(t, erro.CodeInvalidInput, resp.Errors.Code)
}
func TestRegisterUser_RootAlbumRollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newUserServiceForTest(ctrl)
	ctx := testContext()
	mocks.userrepo.EXPECT().CountUsers(gomock.Any()).Return(repository.SuccessResponse(repository.Data{Count: 3}, repository.CountUsers, "ok"))
	mocks.userrepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, repository.CreateUser, "ok"))
	mocks.albumrepo.EXPECT().CreateAlbum(gomock.Any(), gomock.Any()).Return(repository.BadResponse(erro.ServerError(erro.AlbumServiceUnavalaible), repository.CreateAlbum))
	mocks.userrepo.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, repository.DeleteUser, "ok"))

	resp := svc.RegisterUser(ctx, &model.RegistrationRequest{Username: "alice", Email: "alice@example.com", Password: "pass12345"})
	require.False(t, resp.Success)
	require.Equal(t, erro.ServerErrorType, resp.Errors.Type)
}
func TestDeleteAccount_ReleasesAllBlobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newUserServiceForTest(ctrl)
	ctx := testContext()
	uploaded := []*model.Photo{{ID: "p1", BlobID: "p1.png", ThumbnailID: "p1_thumb.jpg"}}
	albums := []*model.Album{{ID: "a1", OwnerID: "u1"}}
	inAlbum := []*model.Photo{
		{ID: "p1", BlobID: "p1.png", ThumbnailID: "p1_thumb.jpg"},
		{ID: "p2", BlobID: "p2.png", ThumbnailID: "p2_thumb.jpg"},
	}
	mocks.photorepo.EXPECT().GetPhotosByUser(gomock.Any(), "u1").Return(repository.SuccessResponse(repository.Data{Photos: uploaded}, repository.GetPhotosByUser, "ok"))
	mocks.albumrepo.EXPECT().GetAlbumsByOwner(gomock.Any(), "u1").Return(repository.SuccessResponse(repository.Data{Albums: albums}, repository.GetAlbumsByOwner, "ok"))
	mocks.photorepo.EXPECT().GetPhotosByAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Photos: inAlbum}, repository.GetPhotosByAlbum, "ok"))
	mocks.albumrepo.EXPECT().DeleteAlbumsByOwner(gomock.Any(), "u1").Return(repository.SuccessResponse(repository.Data{}, repository.DeleteAlbumsByOwner, "ok"))
	mocks.userrepo.EXPECT().DeleteUser(gomock.Any(), "u1").Return(repository.SuccessResponse(repository.Data{}, repository.DeleteUser, "ok"))

	resp := svc.DeleteAccount(ctx, "u1")
	require.True(t, resp.Success)
	require.Len(t, mocks.cleaner.photos, 2)
}
func TestStatistics_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newUserServiceForTest(ctrl)

	resp := svc.Statistics(testContext(), []string{model.SystemRoleUser})
	require.False(t, resp.Success)
	require.Equal(t, erro.AdminRoleRequired, resp.Errors.Message)
	require.Equal(t, erro.CodeForbidden, resp.Errors.Code)
}
func TestStatistics_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newUserServiceForTest(ctrl)
	ctx := testContext()
	mocks.userrepo.EXPECT().CountUsers(gomock.Any()).Return(repository.SuccessResponse(repository.Data{Count: 10}, repository.CountUsers, "ok"))
	mocks.albumrepo.EXPECT().CountAlbums(gomock.Any()).Return(repository.SuccessResponse(repository.Data{Count: 25}, repository.CountAlbums, "ok"))
	mocks.photorepo.EXPECT().CountPhotos(gomock.Any()).Return(repository.SuccessResponse(repository.Data{Count: 300}, repository.CountPhotos, "ok"))
	mocks.photorepo.EXPECT().GetUsedSpace(gomock.Any(), "").Return(repository.SuccessResponse(repository.Data{Space: 1 << 20}, repository.GetUsedSpace, "ok"))

	resp := svc.Statistics(ctx, []string{model.SystemRoleUser, model.SystemRoleAdmin})
	require.True(t, resp.Success)
	require.Equal(t, int64(10), resp.Data.Stats.Users)
	require.Equal(t, int64(25), resp.Data.Stats.Albums)
	require.Equal(t, int64(300), resp.Data.Stats.Photos)
	require.Equal(t, int64(1<<20), resp.Data.Stats.UsedSpace)
}
