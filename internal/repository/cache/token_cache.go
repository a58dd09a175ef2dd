package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/repository"
	"github.com/redis/go-redis/v9"
)

type TokenCache struct {
	cacheclient *CacheObject
}

func NewTokenCache(red *CacheObject) *TokenCache {
	return &TokenCache{cacheclient: red}
}

const AddRevokedToken = "Repository-AddRevokedToken"
const IsTokenRevoked = "Repository-IsTokenRevoked"

const keyRevokedToken = "revoked:%s"

// AddRevokedToken stores the raw token with a TTL equal to its remaining
// lifetime, so entries expire together with the tokens they blacklist.
func (tc *TokenCache) AddRevokedToken(ctx context.Context, token string, ttl time.Duration) *repository.RepositoryResponse {
	const place = AddRevokedToken
	if ttl <= 0 {
		return repository.SuccessResponse(repository.Data{}, place, "Token already expired, nothing to revoke")
	}
	err := tc.cacheclient.connect.Set(ctx, fmt.Sprintf(keyRevokedToken, token), "1", ttl).Err()
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetToken, err)), place)
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful add revoked token in cache")
}
func (tc *TokenCache) IsTokenRevoked(ctx context.Context, token string) *repository.RepositoryResponse {
	const place = IsTokenRevoked
	_, err := tc.cacheclient.connect.Get(ctx, fmt.Sprintf(keyRevokedToken, token)).Result()
	if err != nil {
		if err == redis.Nil {
			return repository.SuccessResponse(repository.Data{Revoked: false}, place, "Token was not found in the revocation cache")
		}
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetToken, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Revoked: true}, place, "Token was found in the revocation cache")
}
