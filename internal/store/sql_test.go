package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{"kind", "name", "parent", "deleted", "create_time", "update_time", "payload"}

func newMockSQL(t *testing.T, dialect Dialect) (*SQL, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewSQL(db, dialect), mock
}

func TestRebind(t *testing.T) {
	query := `SELECT * FROM resources WHERE kind = ? AND name = ?`
	assert.Equal(t, query, NewSQL(nil, MySQL).rebind(query))
	assert.Equal(t,
		`SELECT * FROM resources WHERE kind = $1 AND name = $2`,
		NewSQL(nil, Postgres).rebind(query))
}

func TestIsDuplicate(t *testing.T) {
	for err, want := range map[error]bool{
		&mysql.MySQLError{Number: 1062}: true,
		&mysql.MySQLError{Number: 1146}: false,
		&pgconn.PgError{Code: "23505"}:  true,
		&pgconn.PgError{Code: "42P01"}:  false,
		fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1062}): true,
		errors.New("duplicate entry"):                           false,
	} {
		assert.Equal(t, want, isDuplicate(err), "%v", err)
	}
	assert.False(t, isDuplicate(nil))
}

func TestStoreMySQLDSN(t *testing.T) {
	dsn := MySQLDSN("root", "p@ss", "db.internal", "3306", "dbconsole", 5*time.Second)
	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db.internal:3306", cfg.Addr)
	assert.Equal(t, "p@ss", cfg.Passwd)
	assert.True(t, cfg.ParseTime)
	assert.True(t, cfg.ClientFoundRows)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestSQLCreate(t *testing.T) {
	s, mock := newMockSQL(t, MySQL)
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	rec := &Record{Kind: KindUser, Name: "users/ada@example.com", CreateTime: now, UpdateTime: now, Payload: []byte("{}")}
	insert := `INSERT INTO resources (kind, name, parent, deleted, create_time, update_time, payload) VALUES (?, ?, ?, ?, ?, ?, ?)`

	mock.ExpectExec(insert).
		WithArgs("user", "users/ada@example.com", "", false, now, now, []byte("{}")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, s.Create(context.Background(), rec))

	mock.ExpectExec(insert).WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	assert.ErrorIs(t, s.Create(context.Background(), rec), ErrAlreadyExists)
}

func TestSQLGet(t *testing.T) {
	s, mock := newMockSQL(t, Postgres)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	query := selectColumns + ` WHERE kind = $1 AND name = $2`

	mock.ExpectQuery(query).WithArgs("instance", "instances/mysql").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("instance", "instances/mysql", "", false, now, now, []byte(`{"title":"MySQL"}`)))
	rec, err := s.Get(ctx, KindInstance, "instances/mysql")
	require.NoError(t, err)
	assert.Equal(t, KindInstance, rec.Kind)
	assert.Equal(t, now, rec.CreateTime)
	assert.JSONEq(t, `{"title":"MySQL"}`, string(rec.Payload))

	mock.ExpectQuery(query).WithArgs("instance", "instances/none").WillReturnError(sql.ErrNoRows)
	_, err = s.Get(ctx, KindInstance, "instances/none")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLUpdateAndDeleteMissing(t *testing.T) {
	s, mock := newMockSQL(t, MySQL)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE resources SET parent = ?, deleted = ?, update_time = ?, payload = ? WHERE kind = ? AND name = ?`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.Update(ctx, &Record{Kind: KindUser, Name: "users/none"}), ErrNotFound)

	mock.ExpectExec(`DELETE FROM resources WHERE kind = ? AND name = ?`).
		WithArgs("user", "users/ada@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, s.Delete(ctx, KindUser, "users/ada@example.com"))
}

func TestSQLList(t *testing.T) {
	s, mock := newMockSQL(t, Postgres)
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectColumns+` WHERE kind = $1 AND parent = $2 AND deleted = $3 ORDER BY create_time DESC, seq DESC`).
		WithArgs("database", "instances/mysql", false).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("database", "instances/mysql/databases/b", "instances/mysql", false, now.Add(time.Minute), now, []byte("{}")).
			AddRow("database", "instances/mysql/databases/a", "instances/mysql", false, now, now, []byte("{}")))
	recs, err := s.List(context.Background(), KindDatabase, ListOptions{Parent: "instances/mysql", Descending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"instances/mysql/databases/b", "instances/mysql/databases/a"}, names(recs))

	mock.ExpectQuery(selectColumns+` WHERE kind = $1 ORDER BY create_time, seq`).
		WithArgs("database").
		WillReturnError(errors.New("connection reset"))
	_, err = s.List(context.Background(), KindDatabase, ListOptions{ShowDeleted: true})
	assert.ErrorContains(t, err, "connection reset")
}

func TestSQLMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS resources`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS resources_kind_parent`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, NewSQL(db, Postgres).Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS resources`).WillReturnError(errors.New("permission denied"))
	assert.ErrorContains(t, NewSQL(db, Postgres).Migrate(context.Background()), "execute schema")
}
