package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/metrics"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
)

type UserPostgresRepo struct {
	Db *DBObject
}

func NewUserPostgresRepo(db *DBObject) *UserPostgresRepo {
	return &UserPostgresRepo{Db: db}
}

const CreateUser = "Repository-CreateUser"
const GetUserById = "Repository-GetUserById"
const GetUserByEmail = "Repository-GetUserByEmail"
const GetUserByUsername = "Repository-GetUserByUsername"
const SearchUsers = "Repository-SearchUsers"
const DeleteUser = "Repository-DeleteUser"
const CountUsers = "Repository-CountUsers"

const (
	userColumns             = `userid, username, email, password, roles, created_at`
	insertNewUserQuery      = `INSERT INTO users (userid, username, email, password, roles, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	selectUserByIdQuery     = `SELECT ` + userColumns + ` FROM users WHERE userid = $1`
	selectUserByEmailQuery  = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	selectUserByNameQuery   = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	searchUsersQuery        = `SELECT userid, username, email, roles, created_at FROM users WHERE username ILIKE '%' || $1 || '%' ORDER BY username LIMIT 50`
	deleteExistingUserQuery = `DELETE FROM users WHERE userid = $1`
	countUsersQuery         = `SELECT COUNT(*) FROM users`
)

func (ur *UserPostgresRepo) CreateUser(ctx context.Context, user *model.User) *RepositoryResponse {
	const place = CreateUser
	start := time.Now()
	defer DBMetrics(place, start)
	_, err := ur.Db.DB.ExecContext(ctx, insertNewUserQuery,
		user.ID, user.Username, user.Email, user.Password, pq.Array(user.Roles), user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "INSERT").Inc()
			return BadResponse(erro.Conflict(erro.UniqueUserConst), place)
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	return SuccessResponse(Data{User: user}, place, "Successful create user in database")
}
func (ur *UserPostgresRepo) GetUserById(ctx context.Context, userid string) *RepositoryResponse {
	const place = GetUserById
	return ur.queryUser(ctx, place, selectUserByIdQuery, userid)
}
func (ur *UserPostgresRepo) GetUserByEmail(ctx context.Context, email string) *RepositoryResponse {
	const place = GetUserByEmail
	return ur.queryUser(ctx, place, selectUserByEmailQuery, email)
}
func (ur *UserPostgresRepo) GetUserByUsername(ctx context.Context, username string) *RepositoryResponse {
	const place = GetUserByUsername
	return ur.queryUser(ctx, place, selectUserByNameQuery, username)
}
func (ur *UserPostgresRepo) SearchUsers(ctx context.Context, fragment string) *RepositoryResponse {
	const place = SearchUsers
	start := time.Now()
	defer DBMetrics(place, start)
	userslice := make([]*model.User, 0)
	rows, err := ur.Db.DB.QueryContext(ctx, searchUsersQuery, fragment)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	defer rows.Close()
	for rows.Next() {
		var user model.User
		err := rows.Scan(&user.ID, &user.Username, &user.Email, pq.Array(&user.Roles), &user.CreatedAt)
		if err != nil {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		userslice = append(userslice, &user)
	}
	return SuccessResponse(Data{Users: userslice}, place, "Successful search users in database")
}
func (ur *UserPostgresRepo) DeleteUser(ctx context.Context, userid string) *RepositoryResponse {
	const place = DeleteUser
	start := time.Now()
	defer DBMetrics(place, start)
	result, err := ur.Db.DB.ExecContext(ctx, deleteExistingUserQuery, userid)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "DELETE").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	if rowsAffected == 0 {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "DELETE").Inc()
		return BadResponse(erro.NotFound(erro.NonExistentUser), place)
	}
	return SuccessResponse(Data{}, place, "Successful delete user from database")
}
func (ur *UserPostgresRepo) CountUsers(ctx context.Context) *RepositoryResponse {
	const place = CountUsers
	start := time.Now()
	defer DBMetrics(place, start)
	var count int64
	err := ur.Db.DB.QueryRowContext(ctx, countUsersQuery).Scan(&count)
	if err != nil {
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	return SuccessResponse(Data{Count: count}, place, "Successful count users in database")
}
func (ur *UserPostgresRepo) queryUser(ctx context.Context, place string, query string, arg string) *RepositoryResponse {
	start := time.Now()
	defer DBMetrics(place, start)
	var user model.User
	err := ur.Db.DB.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Username, &user.Email,
		&user.Password, pq.Array(&user.Roles), &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ClientErrorType, "SELECT").Inc()
			return BadResponse(erro.NotFound(erro.NonExistentUser), place)
		}
		metrics.AlbumDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	return SuccessResponse(Data{User: &user}, place, "Successful get user from database")
}
