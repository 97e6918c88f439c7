package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DanRulev/vokabot/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

const (
	// sqliteDriver is go-sqlite3 with the functions below registered on
	// every connection.
	sqliteDriver = "sqlite3_vokabot"

	// SQLiteLower lower-cases Unicode text. The built-in LOWER only folds
	// ASCII letters.
	SQLiteLower = "ulower"
)

func init() {
	sql.Register(sqliteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(SQLiteLower, strings.ToLower, true)
		},
	})
}

func driverName(driver string) string {
	if driver == config.DriverSQLite {
		return sqliteDriver
	}
	return driver
}

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName(cfg.Driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return db, nil
}

func dataSource(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
				return "", fmt.Errorf("failed create db dir: %w", err)
			}
		}
		return cfg.Path + "?_busy_timeout=5000", nil
	case config.DriverPostgres:
		return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL), nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
