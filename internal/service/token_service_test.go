package service

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository/cache"
	mock_service "github.com/niktin06sash/PhotoAlbum_service/internal/service/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWTConfig = configs.JWTConfig{Secret: "testsecret", ServiceAPIKey: "tagger-key"}

func newTokenServiceForTest(ctrl *gomock.Controller) (*TokenService, *mock_service.MockDBUserRepos, *mock_service.MockCacheTokenRepos) {
	userrepo := mock_service.NewMockDBUserRepos(ctrl)
	tokencache := mock_service.NewMockCacheTokenRepos(ctrl)
	return NewTokenService(userrepo, tokencache, anyLogProducer(ctrl), testJWTConfig), userrepo, tokencache
}
func testUserWithPassword(t *testing.T, password string) *model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &model.User{ID: "u1", Username: "alice", Email: "alice@example.com", Password: string(hash), Roles: []string{model.SystemRoleUser}}
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, userrepo, _ := newTokenServiceForTest(ctrl)
	ctx := testContext()
	user := testUserWithPassword(t, "pass12345")
	userrepo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserByEmail, "ok"))

	resp := svc.Login(ctx, "alice@example.com", "pass12345")
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Tokens.AccessToken)
	require.NotEmpty(t, resp.Data.Tokens.RefreshToken)
	require.NotEqual(t, resp.Data.Tokens.AccessToken, resp.Data.Tokens.RefreshToken)
}
func TestLogin_IncorrectPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, userrepo, _ := newTokenServiceForTest(ctrl)
	ctx := testContext()
	user := testUserWithPassword(t, "pass12345")
	userrepo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserByEmail, "ok"))

	resp := svc.Login(ctx, "alice@example.com", "wrongpass")
	require.False(t, resp.Success)
	require.Equal(t, erro.IncorrectPassword, resp.Errors.Message)
	require.Equal(t, erro.CodeUnauthorized, resp.Errors.Code)
}
func TestValidateAccessToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, userrepo, tokencache := newTokenServiceForTest(ctrl)
	ctx := testContext()
	user := testUserWithPassword(t, "pass12345")
	userrepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserByEmail, "ok"))
	login := svc.Login(ctx, user.Email, "pass12345")
	require.True(t, login.Success)

	tokencache.EXPECT().IsTokenRevoked(gomock.Any(), login.Data.Tokens.AccessToken).Return(repository.SuccessResponse(repository.Data{Revoked: false}, cache.IsTokenRevoked, "ok"))
	resp := svc.ValidateAccessToken(ctx, login.Data.Tokens.AccessToken)
	require.True(t, resp.Success)
	require.Equal(t, "u1", resp.Data.UserID)
	require.Equal(t, []string{model.SystemRoleUser}, resp.Data.Roles)
}
func TestValidateAccessToken_RefreshRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, userrepo, _ := newTokenServiceForTest(ctrl)
	ctx := testContext()
	user := testUserWithPassword(t, "pass12345")
	userrepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserByEmail, "ok"))
	login := svc.Login(ctx, user.Email, "pass12345")
	require.True(t, login.Success)

	resp := svc.ValidateAccessToken(ctx, login.Data.Tokens.RefreshToken)
	require.False(t, resp.Success)
	require.Equal(t, erro.InvalidToken, resp.Errors.Message)
}
func TestValidateAccessToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _ := newTokenServiceForTest(ctrl)

	resp := svc.ValidateAccessToken(testContext(), "not-a-token")
	require.False(t, resp.Success)
	require.Equal(t, erro.InvalidToken, resp.Errors.Message)
	require.Equal(t, erro.CodeUnauthorized, resp.Errors.Code)
}
func TestRefreshTokens_Rotation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, userrepo, tokencache := newTokenServiceForTest(ctrl)
	ctx := testContext()
	user := testUserWithPassword(t, "pass12345")
	userrepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserByEmail, "ok"))
	login := svc.Login(ctx, user.Email, "pass12345")
	require.True(t, login.Success)
	refresh := login.Data.Tokens.RefreshToken

	tokencache.EXPECT().IsTokenRevoked(gomock.Any(), refresh).Return(repository.SuccessResponse(repository.Data{Revoked: false}, cache.IsTokenRevoked, "ok"))
	userrepo.EXPECT().GetUserById(gomock.Any(), "u1").Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserById, "ok"))
	tokencache.EXPECT().AddRevokedToken(gomock.Any(), refresh, gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, cache.AddRevokedToken, "ok"))

	resp := svc.RefreshTokens(ctx, refresh)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Tokens.AccessToken)
	require.NotEmpty(t, resp.Data.Tokens.RefreshToken)
	require.NotEqual(t, refresh, resp.Data.Tokens.RefreshToken)
}
func TestRefreshTokens_RevokedRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, userrepo, tokencache := newTokenServiceForTest(ctrl)
	ctx := testContext()
	user := testUserWithPassword(t, "pass12345")
	userrepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserByEmail, "ok"))
	login := svc.Login(ctx, user.Email, "pass12345")
	require.True(t, login.Success)
	refresh := login.Data.Tokens.RefreshToken

	tokencache.EXPECT().IsTokenRevoked(gomock.Any(), refresh).Return(repository.SuccessResponse(repository.Data{Revoked: true}, cache.IsTokenRevoked, "ok"))
	resp := svc.RefreshTokens(ctx, refresh)
	require.False(t, resp.Success)
	require.Equal(t, erro.RevokedToken, resp.Errors.Message)
	require.Equal(t, erro.CodeUnauthorized, resp.Errors.Code)
}
func TestRefreshTokens_AccessTokenRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, userrepo, _ := newTokenServiceForTest(ctrl)
	ctx := testContext()
	user := testUserWithPassword(t, "pass12345")
	userrepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserByEmail, "ok"))
	login := svc.Login(ctx, user.Email, "pass12345")
	require.True(t, login.Success)

	resp := svc.RefreshTokens(ctx, login.Data.Tokens.AccessToken)
	require.False(t, resp.Success)
	require.Equal(t, erro.InvalidToken, resp.Errors.Message)
}
func TestLogout_RevokesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, userrepo, tokencache := newTokenServiceForTest(ctrl)
	ctx := testContext()
	user := testUserWithPassword(t, "pass12345")
	userrepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(repository.SuccessResponse(repository.Data{User: user}, repository.GetUserByEmail, "ok"))
	login := svc.Login(ctx, user.Email, "pass12345")
	require.True(t, login.Success)

	tokencache.EXPECT().AddRevokedToken(gomock.Any(), login.Data.Tokens.AccessToken, gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, cache.AddRevokedToken, "ok"))
	tokencache.EXPECT().AddRevokedToken(gomock.Any(), login.Data.Tokens.RefreshToken, gomock.Any()).Return(repository.SuccessResponse(repository.Data{}, cache.AddRevokedToken, "ok"))
	resp := svc.Logout(ctx, login.Data.Tokens.AccessToken, login.Data.Tokens.RefreshToken)
	require.True(t, resp.Success)
}
func TestLogout_GarbageTokenSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _ := newTokenServiceForTest(ctrl)

	resp := svc.Logout(testContext(), "not-a-token", "")
	require.True(t, resp.Success)
}
func TestIssueServiceToken_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _ := newTokenServiceForTest(ctrl)

	resp := svc.IssueServiceToken(testContext(), "wrong-key")
	require.False(t, resp.Success)
	require.Equal(t, erro.InvalidServiceKey, resp.Errors.Message)
	require.Equal(t, erro.CodeUnauthorized, resp.Errors.Code)
}
func TestIssueServiceToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, tokencache := newTokenServiceForTest(ctrl)
	ctx := testContext()

	resp := svc.IssueServiceToken(ctx, "tagger-key")
	require.True(t, resp.Success)
	token := resp.Data.Tokens.AccessToken
	require.NotEmpty(t, token)
	require.Empty(t, resp.Data.Tokens.RefreshToken)

	tokencache.EXPECT().IsTokenRevoked(gomock.Any(), token).Return(repository.SuccessResponse(repository.Data{Revoked: false}, cache.IsTokenRevoked, "ok"))
	validated := svc.ValidateAccessToken(ctx, token)
	require.True(t, validated.Success)
	require.Equal(t, "mpp-tagger", validated.Data.UserID)
	require.Equal(t, []string{model.SystemRoleInternal}, validated.Data.Roles)
}
