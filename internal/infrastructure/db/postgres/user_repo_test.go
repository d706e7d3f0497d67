package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinevault/movies-service/internal/domain"
)

func setupUserRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *UserRepo) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create mock database")

	return db, mock, NewUserRepo(db)
}

func userRows(u domain.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow(u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt)
}

func TestUserRepo_GetByUsername_Success(t *testing.T) {
	db, mock, repo := setupUserRepo(t)
	defer db.Close()

	want := domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         "regular",
		CreatedAt:    time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	mock.ExpectQuery(`SELECT id, username, email, password_hash, role, created_at, updated_at\s+FROM users\s+WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(userRows(want))

	got, err := repo.GetByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	db, mock, repo := setupUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, email, password_hash, role, created_at, updated_at\s+FROM users\s+WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, domain.Is(err, "user_not_found"), "expected user_not_found, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByUsername_EmptyInput(t *testing.T) {
	db, _, repo := setupUserRepo(t)
	defer db.Close()

	_, err := repo.GetByUsername(context.Background(), "   ")

	require.Error(t, err)
	assert.True(t, domain.Is(err, "missing_field"))
}

func TestUserRepo_GetByID_DatabaseError(t *testing.T) {
	db, mock, repo := setupUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, email, password_hash, role, created_at, updated_at\s+FROM users\s+WHERE id = \$1`).
		WithArgs("u1").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByID(context.Background(), "u1")

	require.Error(t, err)
	assert.True(t, domain.Is(err, "db_unavailable"), "expected db_unavailable, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_List_Success(t *testing.T) {
	db, mock, repo := setupUserRepo(t)
	defer db.Close()

	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow("u1", "alice", "alice@example.com", "h1", "admin", now, now).
		AddRow("u2", "bob", "bob@example.com", "h2", "regular", now, now)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, role, created_at, updated_at\s+FROM users\s+ORDER BY created_at`).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "bob", list[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ExistsByUsernameOrEmail(t *testing.T) {
	db, mock, repo := setupUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("alice", "alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.ExistsByUsernameOrEmail(context.Background(), "alice", " Alice@Example.com ")

	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_Success_NormalizesEmail(t *testing.T) {
	db, mock, repo := setupUserRepo(t)
	defer db.Close()

	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	in := domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        " Alice@Example.com ",
		PasswordHash: "$2a$10$hash",
		Role:         "regular",
	}

	mock.ExpectQuery(`INSERT INTO users \(id, username, email, password_hash, role\)`).
		WithArgs("u1", "alice", "alice@example.com", "$2a$10$hash", "regular").
		WillReturnRows(userRows(domain.User{
			ID: "u1", Username: "alice", Email: "alice@example.com",
			PasswordHash: "$2a$10$hash", Role: "regular", CreatedAt: now, UpdatedAt: now,
		}))

	created, err := repo.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_UniqueViolation_Conflict(t *testing.T) {
	db, mock, repo := setupUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("u1", "alice", "alice@example.com", "hash", "regular").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := repo.Create(context.Background(), domain.User{
		ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: "hash", Role: "regular",
	})

	require.Error(t, err)
	assert.True(t, domain.Is(err, "user_already_exists"), "expected user_already_exists, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_MissingFields(t *testing.T) {
	db, _, repo := setupUserRepo(t)
	defer db.Close()

	_, err := repo.Create(context.Background(), domain.User{ID: "u1", Username: "alice"})

	require.Error(t, err)
	assert.True(t, domain.Is(err, "missing_field"))
}

func TestUserRepo_Delete_ReportsAffectedRows(t *testing.T) {
	db, mock, repo := setupUserRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.Delete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}
