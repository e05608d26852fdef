package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Dialect names the SQL flavour of a database/sql driver.
type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
)

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "mysql"
}

// SQL is a Store on top of database/sql.
type SQL struct {
	db      *sql.DB
	dialect Dialect
}

// OpenSQL connects with the dialect's driver and applies the embedded schema.
func OpenSQL(ctx context.Context, dialect Dialect, dsn string) (*SQL, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}
	s := NewSQL(db, dialect)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func NewSQL(db *sql.DB, dialect Dialect) *SQL {
	return &SQL{db: db, dialect: dialect}
}

// Migrate executes the dialect's schema one statement at a time.
func (s *SQL) Migrate(ctx context.Context) error {
	schema, err := schemaFS.ReadFile("schema/" + string(s.dialect) + ".sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	for _, stmt := range strings.Split(string(schema), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute schema: %w", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $n for Postgres.
func (s *SQL) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (s *SQL) Create(ctx context.Context, rec *Record) error {
	_, err := s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO resources (kind, name, parent, deleted, create_time, update_time, payload) VALUES (?, ?, ?, ?, ?, ?, ?)`),
		string(rec.Kind), rec.Name, rec.Parent, rec.Deleted, rec.CreateTime.UTC(), rec.UpdateTime.UTC(), rec.Payload,
	)
	if isDuplicate(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert %s %q: %w", rec.Kind, rec.Name, err)
	}
	return nil
}

const selectColumns = `SELECT kind, name, parent, deleted, create_time, update_time, payload FROM resources`

func (s *SQL) Get(ctx context.Context, kind Kind, name string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(selectColumns+` WHERE kind = ? AND name = ?`), string(kind), name)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %q: %w", kind, name, err)
	}
	return rec, nil
}

func (s *SQL) Update(ctx context.Context, rec *Record) error {
	res, err := s.db.ExecContext(ctx, s.rebind(
		`UPDATE resources SET parent = ?, deleted = ?, update_time = ?, payload = ? WHERE kind = ? AND name = ?`),
		rec.Parent, rec.Deleted, rec.UpdateTime.UTC(), rec.Payload, string(rec.Kind), rec.Name,
	)
	if err != nil {
		return fmt.Errorf("update %s %q: %w", rec.Kind, rec.Name, err)
	}
	return checkAffected(res)
}

func (s *SQL) Delete(ctx context.Context, kind Kind, name string) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM resources WHERE kind = ? AND name = ?`), string(kind), name)
	if err != nil {
		return fmt.Errorf("delete %s %q: %w", kind, name, err)
	}
	return checkAffected(res)
}

func (s *SQL) List(ctx context.Context, kind Kind, opts ListOptions) ([]*Record, error) {
	query := selectColumns + ` WHERE kind = ?`
	args := []any{string(kind)}
	if opts.Parent != "" {
		query += ` AND parent = ?`
		args = append(args, opts.Parent)
	}
	if !opts.ShowDeleted {
		query += ` AND deleted = ?`
		args = append(args, false)
	}
	if opts.Descending {
		query += ` ORDER BY create_time DESC, seq DESC`
	} else {
		query += ` ORDER BY create_time, seq`
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return out, nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec  Record
		kind string
	)
	if err := row.Scan(&kind, &rec.Name, &rec.Parent, &rec.Deleted, &rec.CreateTime, &rec.UpdateTime, &rec.Payload); err != nil {
		return nil, err
	}
	rec.Kind = Kind(kind)
	rec.CreateTime = rec.CreateTime.UTC()
	rec.UpdateTime = rec.UpdateTime.UTC()
	return &rec, nil
}

// checkAffected relies on MySQL connections using clientFoundRows, so an
// update writing identical values still counts as a match.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func isDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// MySQLDSN builds the DSN of a MySQL backed store.
func MySQLDSN(user, password, host, port, database string, timeout time.Duration) string {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = host + ":" + port
	cfg.DBName = database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true
	cfg.Timeout = timeout
	return cfg.FormatDSN()
}
