package rdbms

import (
	"context"
	"fmt"
	"time"

	"donation-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Close() error
}

type connection struct {
	db *sqlx.DB
}

func (c *connection) GetDB() (*sqlx.DB, error) {
	if c.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	return c.db, nil
}

func (c *connection) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Open connects with one of the supported drivers. MySQL DSNs need
// parseTime=true so TIMESTAMP columns scan into time.Time.
func Open(ctx context.Context, driver, dsn string) (DBInterface, error) {
	switch driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.ConnectContext: %w", err)
	}
	if driver == DriverSQLite {
		// in-memory sqlite databases are per connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}
	return &connection{db: db}, nil
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	driver := v.GetString("database.driver")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Open(ctx, driver, v.GetString("database.dsn"))
	if err != nil {
		return nil, err
	}
	logger.Info("database", "connected", "InitConnection", driver)
	return db, nil
}
