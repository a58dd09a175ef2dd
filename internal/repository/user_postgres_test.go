package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
	"github.com/niktin06sash/PhotoAlbum_service/internal/model"
	"github.com/stretchr/testify/require"
)

func newUserRepoForTest(t *testing.T) (*UserPostgresRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &UserPostgresRepo{Db: &DBObject{DB: db}}, mock
}

func TestUserRepo_CreateUser(t *testing.T) {
	user := &model.User{ID: "u1", Username: "alice", Email: "alice@example.com", Password: "hash", Roles: []string{model.SystemRoleUser}, CreatedAt: time.Now()}
	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		wantSuccess bool
		wantMessage string
	}{
		{
			name: "success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(insertNewUserQuery)).
					WithArgs(user.ID, user.Username, user.Email, user.Password, pq.Array(user.Roles), user.CreatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantSuccess: true,
		},
		{
			name: "taken username or email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(insertNewUserQuery)).
					WithArgs(user.ID, user.Username, user.Email, user.Password, pq.Array(user.Roles), user.CreatedAt).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantSuccess: false,
			wantMessage: erro.UniqueUserConst,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newUserRepoForTest(t)
			tt.mockSetup(mock)
			resp := repo.CreateUser(context.Background(), user)
			require.Equal(t, tt.wantSuccess, resp.Success)
			if tt.wantMessage != "" {
				require.Equal(t, tt.wantMessage, resp.Errors.Message)
				require.Equal(t, erro.CodeConflict, resp.Errors.Code)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
func TestUserRepo_GetUserByEmail(t *testing.T) {
	created := time.Now()
	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		wantSuccess bool
		wantMessage string
	}{
		{
			name: "success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailQuery)).WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"userid", "username", "email", "password", "roles", "created_at"}).
						AddRow("u1", "alice", "alice@example.com", "hash", "{USER,ADMIN}", created))
			},
			wantSuccess: true,
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailQuery)).WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"userid", "username", "email", "password", "roles", "created_at"}))
			},
			wantSuccess: false,
			wantMessage: erro.NonExistentUser,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newUserRepoForTest(t)
			tt.mockSetup(mock)
			resp := repo.GetUserByEmail(context.Background(), "alice@example.com")
			require.Equal(t, tt.wantSuccess, resp.Success)
			if tt.wantSuccess {
				require.Equal(t, "u1", resp.Data.User.ID)
				require.Equal(t, []string{model.SystemRoleUser, model.SystemRoleAdmin}, resp.Data.User.Roles)
			} else {
				require.Equal(t, tt.wantMessage, resp.Errors.Message)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
func TestUserRepo_SearchUsers(t *testing.T) {
	created := time.Now()
	repo, mock := newUserRepoForTest(t)
	mock.ExpectQuery(regexp.QuoteMeta(searchUsersQuery)).WithArgs("ali").
		WillReturnRows(sqlmock.NewRows([]string{"userid", "username", "email", "roles", "created_at"}).
			AddRow("u1", "alice", "alice@example.com", "{USER}", created).
			AddRow("u2", "malik", "malik@example.com", "{USER}", created))

	resp := repo.SearchUsers(context.Background(), "ali")
	require.True(t, resp.Success)
	require.Len(t, resp.Data.Users, 2)
	require.Equal(t, "alice", resp.Data.Users[0].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestUserRepo_DeleteUser_NotFound(t *testing.T) {
	repo, mock := newUserRepoForTest(t)
	mock.ExpectExec(regexp.QuoteMeta(deleteExistingUserQuery)).WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	resp := repo.DeleteUser(context.Background(), "u1")
	require.False(t, resp.Success)
	require.Equal(t, erro.NonExistentUser, resp.Errors.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}
func TestUserRepo_CountUsers(t *testing.T) {
	repo, mock := newUserRepoForTest(t)
	mock.ExpectQuery(regexp.QuoteMeta(countUsersQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	resp := repo.CountUsers(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, int64(4), resp.Data.Count)
	require.NoError(t, mock.ExpectationsWereMet())
}
