package dbsync

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

const connectTimeout = 10 * time.Second

// Driver reads the metadata of a database instance.
type Driver interface {
	Version(ctx context.Context) (string, error)
	// Databases lists the user databases, system databases excluded.
	Databases(ctx context.Context) ([]string, error)
	Close() error
}

// Connector opens a Driver for a data source of an instance.
type Connector func(ctx context.Context, engine v1pb.Engine, ds *v1pb.DataSource) (Driver, error)

// Connect is the Connector for real instances: go-sql-driver/mysql for the
// MySQL family and pgx for Postgres.
func Connect(ctx context.Context, engine v1pb.Engine, ds *v1pb.DataSource) (Driver, error) {
	var (
		db  *sql.DB
		err error
	)
	switch engine {
	case v1pb.Engine_MYSQL, v1pb.Engine_TIDB, v1pb.Engine_MARIADB, v1pb.Engine_OCEANBASE:
		db, err = sql.Open("mysql", mysqlDSN(ds))
	case v1pb.Engine_POSTGRES:
		db, err = openPostgres(ds)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEngine, engine)
	}
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return &sqlDriver{db: db, engine: engine}, nil
}

func mysqlDSN(ds *v1pb.DataSource) string {
	cfg := mysql.NewConfig()
	cfg.User = ds.Username
	cfg.Passwd = ds.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(ds.Host, portOr(ds.Port, "3306"))
	cfg.DBName = ds.Database
	cfg.Timeout = connectTimeout
	if ds.UseSsl {
		cfg.TLSConfig = "true"
	}
	return cfg.FormatDSN()
}

func openPostgres(ds *v1pb.DataSource) (*sql.DB, error) {
	database := ds.Database
	if database == "" {
		database = "postgres"
	}
	sslmode := "disable"
	if ds.UseSsl {
		sslmode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(ds.Username, ds.Password),
		Host:     net.JoinHostPort(ds.Host, portOr(ds.Port, "5432")),
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": {sslmode}, "connect_timeout": {"10"}}.Encode(),
	}
	cfg, err := pgx.ParseConfig(u.String())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	return stdlib.OpenDB(*cfg), nil
}

func portOr(port, def string) string {
	if port == "" {
		return def
	}
	return port
}

var systemDatabases = map[v1pb.Engine][]string{
	v1pb.Engine_MYSQL:     {"information_schema", "mysql", "performance_schema", "sys"},
	v1pb.Engine_MARIADB:   {"information_schema", "mysql", "performance_schema", "sys"},
	v1pb.Engine_TIDB:      {"information_schema", "mysql", "performance_schema", "metrics_schema", "sys"},
	v1pb.Engine_OCEANBASE: {"information_schema", "mysql", "oceanbase", "sys", "__public"},
	v1pb.Engine_POSTGRES:  {"template0", "template1"},
}

type sqlDriver struct {
	db     *sql.DB
	engine v1pb.Engine
}

func (d *sqlDriver) Version(ctx context.Context) (string, error) {
	query := "SELECT VERSION()"
	if d.engine == v1pb.Engine_POSTGRES {
		query = "SHOW server_version"
	}
	var version string
	if err := d.db.QueryRowContext(ctx, query).Scan(&version); err != nil {
		return "", fmt.Errorf("read version: %w", err)
	}
	return version, nil
}

func (d *sqlDriver) Databases(ctx context.Context) ([]string, error) {
	query := "SHOW DATABASES"
	if d.engine == v1pb.Engine_POSTGRES {
		query = "SELECT datname FROM pg_database WHERE NOT datistemplate AND datallowconn"
	}
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list databases: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if slices.Contains(systemDatabases[d.engine], strings.ToLower(name)) {
			continue
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

func (d *sqlDriver) Close() error {
	return d.db.Close()
}
