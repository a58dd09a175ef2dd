package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/niktin06sash/PhotoAlbum_service/internal/brokers/kafka"
	"github.com/niktin06sash/PhotoAlbum_service/internal/configs"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 90 * time.Minute
const refreshTokenTTL = 6 * time.Hour
const serviceTokenTTL = 2 * time.Hour
const taggerSubject = "mpp-tagger"

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	tokenTypeService = "service"
)

type TokenClaims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"typ"`
	jwt.RegisteredClaims
}
type TokenService struct {
	userrepo    DBUserRepos
	cache       CacheTokenRepos
	logproducer LogProducer
	config      configs.JWTConfig
}

func NewTokenService(userrepo DBUserRepos, cache CacheTokenRepos, logproducer LogProducer, config configs.JWTConfig) *TokenService {
	return &TokenService{userrepo: userrepo, cache: cache, logproducer: logproducer, config: config}
}

const UseCase_Login = "UseCase_Login"
const UseCase_Logout = "UseCase_Logout"
const UseCase_RefreshTokens = "UseCase_RefreshTokens"
const UseCase_ValidateToken = "UseCase_ValidateToken"
const UseCase_IssueServiceToken = "UseCase_IssueServiceToken"

// Login checks the credentials and issues an access and refresh pair.
func (use *TokenService) Login(ctx context.Context, email string, password string) *ServiceResponse {
	const place = UseCase_Login
	traceid := ctx.Value("traceID").(string)
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.userrepo.GetUserByEmail(ctx, email), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	user := bdresponse.Data.User
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Incorrect password for user %s", user.ID))
		return &ServiceResponse{Success: false, Errors: erro.Unauthorized(erro.IncorrectPassword)}
	}
	tokens, serviceresp := use.issuePair(user, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The user(id = %s) has successfully logged in", user.ID))
	return &ServiceResponse{Success: true, Data: Data{Tokens: tokens, User: user}}
}

// Logout revokes both presented tokens for their remaining lifetime. A
// token that no longer parses needs no revocation and is skipped.
func (use *TokenService) Logout(ctx context.Context, accesstoken string, refreshtoken string) *ServiceResponse {
	const place = UseCase_Logout
	traceid := ctx.Value("traceID").(string)
	for _, tokenstring := range []string{accesstoken, refreshtoken} {
		if tokenstring == "" {
			continue
		}
		claims, serviceresp := use.parseToken(tokenstring, traceid, place)
		if serviceresp != nil {
			continue
		}
		_, serviceresp = requestToRepository(use.logproducer, use.cache.AddRevokedToken(ctx, tokenstring, time.Until(claims.ExpiresAt.Time)), traceid)
		if serviceresp != nil {
			return serviceresp
		}
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, "The user's tokens have been revoked")
	return &ServiceResponse{Success: true}
}

// RefreshTokens rotates the pair. The presented refresh token is revoked
// so it can be used exactly once.
func (use *TokenService) RefreshTokens(ctx context.Context, refreshstring string) *ServiceResponse {
	const place = UseCase_RefreshTokens
	traceid := ctx.Value("traceID").(string)
	claims, serviceresp := use.parseToken(refreshstring, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	if claims.Type != tokenTypeRefresh {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Token of type %q was presented as refresh", claims.Type))
		return &ServiceResponse{Success: false, Errors: erro.Unauthorized(erro.InvalidToken)}
	}
	serviceresp = use.checkRevoked(ctx, refreshstring, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	bdresponse, serviceresp := requestToRepository(use.logproducer, use.userrepo.GetUserById(ctx, claims.Subject), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	_, serviceresp = requestToRepository(use.logproducer, use.cache.AddRevokedToken(ctx, refreshstring, time.Until(claims.ExpiresAt.Time)), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	tokens, serviceresp := use.issuePair(bdresponse.Data.User, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Tokens were rotated for user %s", claims.Subject))
	return &ServiceResponse{Success: true, Data: Data{Tokens: tokens}}
}

// ValidateAccessToken verifies the signature, expiry and revocation state
// and returns the caller's identity.
func (use *TokenService) ValidateAccessToken(ctx context.Context, tokenstring string) *ServiceResponse {
	const place = UseCase_ValidateToken
	traceid := ctx.Value("traceID").(string)
	claims, serviceresp := use.parseToken(tokenstring, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	if claims.Type != tokenTypeAccess && claims.Type != tokenTypeService {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Token of type %q was presented as access", claims.Type))
		return &ServiceResponse{Success: false, Errors: erro.Unauthorized(erro.InvalidToken)}
	}
	serviceresp = use.checkRevoked(ctx, tokenstring, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{UserID: claims.Subject, Roles: claims.Roles}}
}

// IssueServiceToken authenticates the tagging service by its API key and
// returns a short-lived internal token.
func (use *TokenService) IssueServiceToken(ctx context.Context, apikey string) *ServiceResponse {
	const place = UseCase_IssueServiceToken
	traceid := ctx.Value("traceID").(string)
	if apikey != use.config.ServiceAPIKey {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, "Invalid service API key was presented")
		return &ServiceResponse{Success: false, Errors: erro.Unauthorized(erro.InvalidServiceKey)}
	}
	token, err := use.signToken(taggerSubject, []string{model.SystemRoleInternal}, tokenTypeService, serviceTokenTTL)
	if err != nil {
		use.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorSignToken, err))
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AlbumServiceUnavalaible)}
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelInfo, place, traceid, "Service token was issued to the tagging service")
	return &ServiceResponse{Success: true, Data: Data{Tokens: &model.TokenPair{AccessToken: token}}}
}

func (use *TokenService) issuePair(user *model.User, traceid string, place string) (*model.TokenPair, *ServiceResponse) {
	access, err := use.signToken(user.ID, user.Roles, tokenTypeAccess, accessTokenTTL)
	if err == nil {
		var refresh string
		refresh, err = use.signToken(user.ID, nil, tokenTypeRefresh, refreshTokenTTL)
		if err == nil {
			return &model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
		}
	}
	use.logproducer.NewAlbumLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorSignToken, err))
	return nil, &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AlbumServiceUnavalaible)}
}
func (use *TokenService) signToken(subject string, roles []string, tokentype string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		Roles: roles,
		Type:  tokentype,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(use.config.Secret))
}
func (use *TokenService) parseToken(tokenstring string, traceid string, place string) (*TokenClaims, *ServiceResponse) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenstring, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(use.config.Secret), nil
	})
	if err != nil || !token.Valid {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Token parse error: %v", err))
		return nil, &ServiceResponse{Success: false, Errors: erro.Unauthorized(erro.InvalidToken)}
	}
	return claims, nil
}
func (use *TokenService) checkRevoked(ctx context.Context, tokenstring string, traceid string, place string) *ServiceResponse {
	cacheresp, serviceresp := requestToRepository(use.logproducer, use.cache.IsTokenRevoked(ctx, tokenstring), traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if cacheresp.Data.Revoked {
		use.logproducer.NewAlbumLog(kafka.LogLevelWarn, place, traceid, "A revoked token was presented")
		return &ServiceResponse{Success: false, Errors: erro.Unauthorized(erro.RevokedToken)}
	}
	return nil
}
