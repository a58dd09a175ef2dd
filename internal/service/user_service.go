package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo        DBUserRepos
	albumrepo   DBAlbumRepos
	photorepo   DBPhotoRepos
	cleaner     PhotoCleaner
	logproducer LogProducer
	validator   *validator.Validate
}

func NewUserService(repo DBUserRepos, albumrepo DBAlbumRepos, photorepo DBPhotoRepos, cleaner PhotoCleaner, logproducer LogProducer) *UserService {
	return &UserService{
		repo:        repo,
		albumrepo:   albumrepo,
		photorepo:   photorepo,
		cleaner:     cleaner,
		logproducer: logproducer,
		validator:   validator.New(),
	}
}

const UseCase_RegisterUser = "UseCase_RegisterUser"
const UseCase_GetUser = "UseCase_GetUser"
const UseCase_SearchUsers = "UseCase_SearchUsers"
const UseCase_DeleteAccount = "UseCase_DeleteAccount"
const UseCase_Statistics = "UseCase_Statistics"

// RegisterUser creates the account and its root album. The very first
// registered user receives the ADMIN system role. If the root album
// cannot be created the account is rolled back.
func (use *UserService) RegisterUser(ctx context.Context, req *model.RegistrationRequest) *ServiceResponse {
	const place = UseCase_RegisterUser
	traceid := ctx.Value("traceID").(string)
	err := use.validator.Struct(req)
	if err != nil {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Validation error: %v", err))
		return &ServiceResponse{Success: false, Errors: erro.InvalidInput(erro.InvalidRegistrationData)}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		use.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorGenerateHashPassword, err))
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AlbumServiceUnavalaible)}
	}
	countresp, serviceresp := requestToRepository(use.logproducer, use.repo.CountUsers(ctx), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	roles := []string{model.SystemRoleUser}
	if countresp.Data.Count == 0 {
		roles = append(roles, model.SystemRoleAdmin)
		use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, "First registered user receives the ADMIN role")
	}
	user := &model.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Roles:     roles,
		CreatedAt: time.Now(),
	}
	_, serviceresp = requestToRepository(use.logproducer, use.repo.CreateUser(ctx, user), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	rootalbum := &model.Album{
		ID:        uuid.New().String(),
		Name:      req.Username,
		Path:      "/" + req.Username,
		OwnerID:   user.ID,
		IsRoot:    true,
		CreatedAt: time.Now(),
	}
	_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.CreateAlbum(ctx, rootalbum), traceid)
	if serviceresp != nil {
		delresp := use.repo.DeleteUser(ctx, user.ID)
		if !delresp.Success && delresp.Errors != nil {
			use.logproducer.NewAlbumLog(kafka.LogLevelError, delresp.Place, traceid, delresp.Errors.Message)
		}
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Registration of user %s was rolled back", user.ID))
		return serviceresp
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The user(id = %s) has been successfully registered", user.ID))
	return &ServiceResponse{Success: true, Data: Data{User: user, Album: rootalbum}}
}
func (use *UserService) GetUser(ctx context.Context, userid string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.repo.GetUserById(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{User: bdresponse.Data.User}}
}

// GetUserByUsername resolves the public profile behind a username.
func (use *UserService) GetUserByUsername(ctx context.Context, username string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.repo.GetUserByUsername(ctx, username), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{User: bdresponse.Data.User}}
}

// SearchUsers finds users by a username or email fragment, used when
// picking someone to share an album with.
func (use *UserService) SearchUsers(ctx context.Context, fragment string) *ServiceResponse {
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.repo.SearchUsers(ctx, fragment), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Users: bdresponse.Data.Users}}
}

// DeleteAccount removes the user with all owned albums and uploaded
// photos. Every blob referenced by the vanishing photo rows is released.
func (use *UserService) DeleteAccount(ctx context.Context, userid string) *ServiceResponse {
	const place = UseCase_DeleteAccount
	traceid := ctx.Value("traceID").(string)
	uploadedresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhotosByUser(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	albumsresp, serviceresp := requestToRepository(use.logproducer, use.albumrepo.GetAlbumsByOwner(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	doomed := map[string]*model.Photo{}
	for _, photo := range uploadedresp.Data.Photos {
		doomed[photo.ID] = photo
	}
	for _, album := range albumsresp.Data.Albums {
		photoresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetPhotosByAlbum(ctx, album.ID), traceid)
		if serviceresp != nil {
			return serviceresp
		}
		for _, photo := range photoresp.Data.Photos {
			doomed[photo.ID] = photo
		}
	}
	_, serviceresp = requestToRepository(use.logproducer, use.albumrepo.DeleteAlbumsByOwner(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.repo.DeleteUser(ctx, userid), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	photos := make([]*model.Photo, 0, len(doomed))
	for _, photo := range doomed {
		photos = append(photos, photo)
	}
	use.cleaner.CleanupPhotoBlobs(ctx, photos, traceid)
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The user(id = %s) has been successfully deleted", userid))
	return &ServiceResponse{Success: true, Data: Data{UserID: userid}}
}

// Statistics returns service-wide counters, available to ADMIN users only.
func (use *UserService) Statistics(ctx context.Context, roles []string) *ServiceResponse {
	const place = UseCase_Statistics
	traceid := ctx.Value("traceID").(string)
	admin := false
	for _, role := range roles {
		if role == model.SystemRoleAdmin {
			admin = true
		}
	}
	if !admin {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, "Statistics requested without the ADMIN role")
		return &ServiceResponse{Success: false, Errors: erro.Forbidden(erro.AdminRoleRequired)}
	}
	usersresp, serviceresp := requestToRepository(use.logproducer, use.repo.CountUsers(ctx), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	albumsresp, serviceresp := requestToRepository(use.logproducer, use.albumrepo.CountAlbums(ctx), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	photosresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.CountPhotos(ctx), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	spaceresp, serviceresp := requestToRepository(use.logproducer, use.photorepo.GetUsedSpace(ctx, ""), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	stats := &model.Statistics{
		Users:     usersresp.Data.Count,
		Albums:    albumsresp.Data.Count,
		Photos:    photosresp.Data.Count,
		UsedSpace: spaceresp.Data.Space,
	}
	return &ServiceResponse{Success: true, Data: Data{Stats: stats}}
}
