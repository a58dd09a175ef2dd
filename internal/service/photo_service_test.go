package service

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository/cloud"
	mock_service "github.com/niktin06sash/PhotoAlbum_service/internal/service/mocks"
	"github.com/stretchr/testify/require"
)

type photoServiceMocks struct {
	photorepo *mock_service.MockDBPhotoRepos
	albumrepo *mock_service.MockDBAlbumRepos
	cloud     *mock_service.MockCloudPhotoStorage
	tagging   *mock_service.MockTaggingProducer
}

func newPhotoServiceForTest(ctrl *gomock.Controller) (*PhotoService, photoServiceMocks) {
	mocks := photoServiceMocks{
		photorepo: mock_service.NewMockDBPhotoRepos(ctrl),
		albumrepo: mock_service.NewMockDBAlbumRepos(ctrl),
		cloud:     mock_service.NewMockCloudPhotoStorage(ctrl),
		tagging:   mock_service.NewMockTaggingProducer(ctrl),
	}
	svc := NewPhotoService(mocks.photorepo, mocks.albumrepo, mocks.cloud, mocks.tagging, anyLogProducer(ctrl))
	return svc, mocks
}
func pngBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestUploadPhoto_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()

	resp := svc.UploadPhoto(testContext(), "u1", "a1", "big.png", make([]byte, MaxFileSize+1))
	require.False(t, resp.Success)
	require.Equal(t, erro.LargeFile, resp.Errors.Message)
	require.Equal(t, erro.CodeInvalidInput, resp.Errors.Code)
}
func TestUploadPhoto_BadExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()

	resp := svc.UploadPhoto(testContext(), "u1", "a1", "notes.txt", pngBytes(t))
	require.False(t, resp.Success)
	require.Equal(t, erro.InvalidFileFormat, resp.Errors.Message)
}
func TestUploadPhoto_ContentMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()

	resp := svc.UploadPhoto(testContext(), "u1", "a1", "cat.jpg", pngBytes(t))
	require.False(t, resp.Success)
	require.Equal(t, erro.InvalidFileFormat, resp.Errors.Message)
}
func TestUploadPhoto_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	file := pngBytes(t)
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))
	mocks.cloud.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, cloud.UploadFile, "ok")).Times(2)
	mocks.photorepo.EXPECT().AddBlobRef(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{RefsLeft: 1}, repository.AddBlobRef, "ok")).Times(2)
	mocks.photorepo.EXPECT().CreatePhoto(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, repository.CreatePhoto, "ok"))
	mocks.albumrepo.EXPECT().AddPhotoCount(gomock.Any(), "a1", int64(1)).Return(repository.SuccessResponse(repository.Data{}, repository.AddPhotoCount, "ok"))
	mocks.tagging.EXPECT().NewTaggingRequest(gomock.Any(), gomock.Any()).Return(nil)

	resp := svc.UploadPhoto(ctx, "u1", "a1", "cat.png", file)
	require.True(t, resp.Success)
	photo := resp.Data.Photo
	require.Equal(t, "a1", photo.AlbumID)
	require.Equal(t, "u1", photo.UserID)
	require.Equal(t, "image/png", photo.ContentType)
	require.Equal(t, int64(len(file)), photo.Size)
	require.True(t, strings.HasSuffix(photo.BlobID, ".png"))
	require.True(t, strings.HasSuffix(photo.ThumbnailID, "_thumb.jpg"))
}
func TestUploadPhoto_RefFailureReleasesBlobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	ctx := testContext()
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))
	mocks.cloud.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, cloud.UploadFile, "ok")).Times(2)
	mocks.photorepo.EXPECT().AddBlobRef(gomock.Any(), gomock.Any()).Return(repository.BadResponse(erro.ServerError(erro.AlbumServiceUnavalaible), repository.AddBlobRef))
	mocks.photorepo.EXPECT().ReleaseBlobRef(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{RefsLeft: 0}, repository.ReleaseBlobRef, "ok")).Times(2)
	mocks.cloud.EXPECT().DeleteFile(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, cloud.DeleteFile, "ok")).Times(2)

	resp := svc.UploadPhoto(ctx, "u1", "a1", "cat.png", pngBytes(t))
	require.False(t, resp.Success)
	require.Equal(t, erro.ServerErrorType, resp.Errors.Type)
	svc.StopWorkers()
}
func TestUploadPhoto_NoEditAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{"u2": model.RoleViewer}}
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))

	resp := svc.UploadPhoto(ctx, "u2", "a1", "cat.png", pngBytes(t))
	require.False(t, resp.Success)
	require.Equal(t, erro.NoEditAccess, resp.Errors.Message)
	require.Equal(t, erro.CodeForbidden, resp.Errors.Code)
}
func TestDeletePhoto_ReleasesBlobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1", BlobID: "p1.png", ThumbnailID: "p1_thumb.jpg"}
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))
	mocks.photorepo.EXPECT().DeletePhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{}, repository.DeletePhoto, "ok"))
	mocks.albumrepo.EXPECT().AddPhotoCount(gomock.Any(), "a1", int64(-1)).Return(repository.SuccessResponse(repository.Data{}, repository.AddPhotoCount, "ok"))
	mocks.photorepo.EXPECT().ReleaseBlobRef(gomock.Any(), "p1.png").Return(repository.SuccessResponse(repository.Data{RefsLeft: 0}, repository.ReleaseBlobRef, "ok"))
	mocks.photorepo.EXPECT().ReleaseBlobRef(gomock.Any(), "p1_thumb.jpg").Return(repository.SuccessResponse(repository.Data{RefsLeft: 0}, repository.ReleaseBlobRef, "ok"))
	mocks.cloud.EXPECT().DeleteFile(gomock.Any(), "p1.png").Return(repository.SuccessResponse(repository.Data{}, cloud.DeleteFile, "ok"))
	mocks.cloud.EXPECT().DeleteFile(gomock.Any(), "p1_thumb.jpg").Return(repository.SuccessResponse(repository.Data{}, cloud.DeleteFile, "ok"))

	resp := svc.DeletePhoto(ctx, "u1", "p1")
	require.True(t, resp.Success)
	require.Equal(t, "p1", resp.Data.PhotoID)
	svc.StopWorkers()
}
func TestDeletePhoto_SharedBlobSurvives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1", BlobID: "p1.png", ThumbnailID: "p1_thumb.jpg"}
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))
	mocks.photorepo.EXPECT().DeletePhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{}, repository.DeletePhoto, "ok"))
	mocks.albumrepo.EXPECT().AddPhotoCount(gomock.Any(), "a1", int64(-1)).Return(repository.SuccessResponse(repository.Data{}, repository.AddPhotoCount, "ok"))
	mocks.photorepo.EXPECT().ReleaseBlobRef(gomock.Any(), "p1.png").Return(repository.SuccessResponse(repository.Data{RefsLeft: 1}, repository.ReleaseBlobRef, "ok"))
	mocks.photorepo.EXPECT().ReleaseBlobRef(gomock.Any(), "p1_thumb.jpg").Return(repository.SuccessResponse(repository.Data{RefsLeft: 1}, repository.ReleaseBlobRef, "ok"))

	resp := svc.DeletePhoto(ctx, "u1", "p1")
	require.True(t, resp.Success)
	svc.StopWorkers()
}
func TestDeletePhoto_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1", BlobID: "p1.png", ThumbnailID: "p1_thumb.jpg"}
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{"u2": model.RoleEditor}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))

	resp := svc.DeletePhoto(ctx, "u2", "p1")
	require.False(t, resp.Success)
	require.Equal(t, erro.NotAlbumOwner, resp.Errors.Message)
}
func TestMovePhoto_SameAlbumNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1"}
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok")).Times(2)

	resp := svc.MovePhoto(ctx, "u1", "p1", "a1")
	require.True(t, resp.Success)
}
func TestMovePhoto_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1"}
	from := &model.Album{ID: "a1", OwnerID: "u1", CoverPhotoID: "p1", Permissions: map[string]string{}}
	to := &model.Album{ID: "a2", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: from}, repository.GetAlbum, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a2").Return(repository.SuccessResponse(repository.Data{Album: to}, repository.GetAlbum, "ok"))
	mocks.photorepo.EXPECT().UpdatePhotoAlbum(gomock.Any(), "p1", "a2").Return(repository.SuccessResponse(repository.Data{}, repository.UpdatePhotoAlbum, "ok"))
	mocks.albumrepo.EXPECT().AddPhotoCount(gomock.Any(), "a1", int64(-1)).Return(repository.SuccessResponse(repository.Data{}, repository.AddPhotoCount, "ok"))
	mocks.albumrepo.EXPECT().AddPhotoCount(gomock.Any(), "a2", int64(1)).Return(repository.SuccessResponse(repository.Data{}, repository.AddPhotoCount, "ok"))
	mocks.albumrepo.EXPECT().UpdateAlbumCover(gomock.Any(), "a1", "").Return(repository.SuccessResponse(repository.Data{}, repository.UpdateAlbumCover, "ok"))

	resp := svc.MovePhoto(ctx, "u1", "p1", "a2")
	require.True(t, resp.Success)
	require.Equal(t, "a2", resp.Data.Photo.AlbumID)
}
func TestDuplicatePhoto_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1", BlobID: "p1.png", ThumbnailID: "p1_thumb.jpg", Filename: "cat.png", ContentType: "image/png", Size: 42, Tags: []string{"cat"}}
	from := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{}}
	to := &model.Album{ID: "a2", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: from}, repository.GetAlbum, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a2").Return(repository.SuccessResponse(repository.Data{Album: to}, repository.GetAlbum, "ok"))
	mocks.photorepo.EXPECT().AddBlobRef(gomock.Any(), "p1.png").Return(repository.SuccessResponse(repository.Data{RefsLeft: 2}, repository.AddBlobRef, "ok"))
	mocks.photorepo.EXPECT().AddBlobRef(gomock.Any(), "p1_thumb.jpg").Return(repository.SuccessResponse(repository.Data{RefsLeft: 2}, repository.AddBlobRef, "ok"))
	mocks.photorepo.EXPECT().CreatePhoto(gomock.Any(), gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, repository.CreatePhoto, "ok"))
	mocks.albumrepo.EXPECT().AddPhotoCount(gomock.Any(), "a2", int64(1)).Return(repository.SuccessResponse(repository.Data{}, repository.AddPhotoCount, "ok"))

	resp := svc.DuplicatePhoto(ctx, "u1", "p1", "a2")
	require.True(t, resp.Success)
	copyphoto := resp.Data.Photo
	require.NotEqual(t, "p1", copyphoto.ID)
	require.Equal(t, "a2", copyphoto.AlbumID)
	require.Equal(t, "p1.png", copyphoto.BlobID)
	require.Equal(t, []string{"cat"}, copyphoto.Tags)
}
func TestSetTags_Normalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1", Tags: []string{}}
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))
	mocks.photorepo.EXPECT().UpdatePhotoTags(gomock.Any(), "p1", []string{"beach", "sunset"}).Return(repository.SuccessResponse(repository.Data{}, repository.UpdatePhotoTags, "ok"))

	resp := svc.SetTags(ctx, "u1", "p1", []string{" beach", "beach", "", "sunset"})
	require.True(t, resp.Success)
	require.Equal(t, []string{"beach", "sunset"}, resp.Data.Photo.Tags)
}
func TestApplyTag_PhotoGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.BadResponse(erro.NotFound(erro.NonExistentPhoto), repository.GetPhoto))

	resp := svc.ApplyTag(ctx, "p1", "beach")
	require.True(t, resp.Success)
}
func TestApplyTag_AddsTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1", Tags: []string{"beach"}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.photorepo.EXPECT().UpdatePhotoTags(gomock.Any(), "p1", []string{"beach", "sunset"}).Return(repository.SuccessResponse(repository.Data{}, repository.UpdatePhotoTags, "ok"))

	resp := svc.ApplyTag(ctx, "p1", "sunset")
	require.True(t, resp.Success)
	require.Equal(t, []string{"beach", "sunset"}, resp.Data.Photo.Tags)
}
func TestDeleteAlbumPhotos_ReleasesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	ctx := testContext()
	album := &model.Album{ID: "a1", OwnerID: "u1", CoverPhotoID: "p1", Permissions: map[string]string{}}
	photos := []*model.Photo{
		{ID: "p1", AlbumID: "a1", BlobID: "p1.png", ThumbnailID: "p1_thumb.jpg"},
		{ID: "p2", AlbumID: "a1", BlobID: "p2.png", ThumbnailID: "p2_thumb.jpg"},
	}
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))
	mocks.photorepo.EXPECT().GetPhotosByAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Photos: photos}, repository.GetPhotosByAlbum, "ok"))
	mocks.photorepo.EXPECT().DeletePhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{}, repository.DeletePhoto, "ok"))
	mocks.photorepo.EXPECT().DeletePhoto(gomock.Any(), "p2").Return(repository.SuccessResponse(repository.Data{}, repository.DeletePhoto, "ok"))
	mocks.albumrepo.EXPECT().AddPhotoCount(gomock.Any(), "a1", int64(-2)).Return(repository.SuccessResponse(repository.Data{}, repository.AddPhotoCount, "ok"))
	mocks.albumrepo.EXPECT().UpdateAlbumCover(gomock.Any(), "a1", "").Return(repository.SuccessResponse(repository.Data{}, repository.UpdateAlbumCover, "ok"))
	for _, blobid := range []string{"p1.png", "p1_thumb.jpg", "p2.png", "p2_thumb.jpg"} {
		mocks.photorepo.EXPECT().ReleaseBlobRef(gomock.Any(), blobid).Return(repository.SuccessResponse(repository.Data{RefsLeft: 0}, repository.ReleaseBlobRef, "ok"))
		mocks.cloud.EXPECT().DeleteFile(gomock.Any(), blobid).Return(repository.SuccessResponse(repository.Data{}, cloud.DeleteFile, "ok"))
	}

	resp := svc.DeleteAlbumPhotos(ctx, "u1", "a1")
	require.True(t, resp.Success)
	require.Equal(t, int64(2), resp.Data.Count)
	svc.StopWorkers()
}
func TestDeleteAlbumPhotos_EmptyAlbum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	album := &model.Album{ID: "a1", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: album}, repository.GetAlbum, "ok"))
	mocks.photorepo.EXPECT().GetPhotosByAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Photos: []*model.Photo{}}, repository.GetPhotosByAlbum, "ok"))

	resp := svc.DeleteAlbumPhotos(ctx, "u1", "a1")
	require.True(t, resp.Success)
	require.Equal(t, int64(0), resp.Data.Count)
}
func TestGetTagGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	trip := &model.Album{ID: "a1", Name: "Trip", OwnerID: "u1", Permissions: map[string]string{}}
	pets := &model.Album{ID: "a2", Name: "Pets", OwnerID: "u1", Permissions: map[string]string{}}
	mocks.photorepo.EXPECT().GetUserTags(gomock.Any(), "u1", "").Return(repository.SuccessResponse(repository.Data{Tags: []string{"beach", "cat"}}, repository.GetUserTags, "ok"))
	mocks.photorepo.EXPECT().GetPhotosByTag(gomock.Any(), "u1", "beach", "").Return(repository.SuccessResponse(repository.Data{Photos: []*model.Photo{
		{ID: "p1", AlbumID: "a1", Tags: []string{"beach"}},
		{ID: "p2", AlbumID: "a1", Tags: []string{"beach"}},
	}}, repository.GetPhotosByTag, "ok"))
	mocks.photorepo.EXPECT().GetPhotosByTag(gomock.Any(), "u1", "cat", "").Return(repository.SuccessResponse(repository.Data{Photos: []*model.Photo{
		{ID: "p3", AlbumID: "a2", Tags: []string{"cat"}},
	}}, repository.GetPhotosByTag, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a1").Return(repository.SuccessResponse(repository.Data{Album: trip}, repository.GetAlbum, "ok"))
	mocks.albumrepo.EXPECT().GetAlbum(gomock.Any(), "a2").Return(repository.SuccessResponse(repository.Data{Album: pets}, repository.GetAlbum, "ok"))

	resp := svc.GetTagGroups(ctx, "u1")
	require.True(t, resp.Success)
	require.Len(t, resp.Data.TagGroups, 2)
	require.Equal(t, "beach", resp.Data.TagGroups[0].Tag)
	require.Len(t, resp.Data.TagGroups[0].Albums, 1)
	require.Equal(t, "Trip", resp.Data.TagGroups[0].Albums[0].AlbumName)
	require.Len(t, resp.Data.TagGroups[0].Albums[0].Photos, 2)
	require.Equal(t, "cat", resp.Data.TagGroups[1].Tag)
	require.Equal(t, "Pets", resp.Data.TagGroups[1].Albums[0].AlbumName)
}
func TestApplyTag_BlankTagDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()

	resp := svc.ApplyTag(testContext(), "p1", "   ")
	require.True(t, resp.Success)
	require.Nil(t, resp.Data.Photo)
}
func TestApplyTag_TrimsWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1", Tags: []string{}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))
	mocks.photorepo.EXPECT().UpdatePhotoTags(gomock.Any(), "p1", []string{"sunset"}).Return(repository.SuccessResponse(repository.Data{}, repository.UpdatePhotoTags, "ok"))

	resp := svc.ApplyTag(ctx, "p1", "  sunset ")
	require.True(t, resp.Success)
	require.Equal(t, []string{"sunset"}, resp.Data.Photo.Tags)
}
func TestApplyTag_DuplicateIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mocks := newPhotoServiceForTest(ctrl)
	defer svc.StopWorkers()
	ctx := testContext()
	photo := &model.Photo{ID: "p1", AlbumID: "a1", Tags: []string{"beach"}}
	mocks.photorepo.EXPECT().GetPhoto(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{Photo: photo}, repository.GetPhoto, "ok"))

	resp := svc.ApplyTag(ctx, "p1", "beach")
	require.True(t, resp.Success)
}
