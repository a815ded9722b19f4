package database

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mbolis/survey-backend/config"
)

// MaxOpenConns bounds concurrent queries; callers beyond it wait for a connection.
const MaxOpenConns = 10

func Open(cfg config.Config) (db *sqlx.DB, err error) {
	var dsn string
	switch cfg.DBDriver {
	case config.DriverMySQL:
		dsn = MySQLDSN(cfg)
	case config.DriverSQLite:
		dsn = SQLiteDSN(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	db, err = sqlx.Open(cfg.DBDriver, dsn)
	if err != nil {
		return
	}

	// db tuning options
	db.SetMaxOpenConns(MaxOpenConns)
	db.SetMaxIdleConns(MaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return
	}

	if cfg.DBDriver == config.DriverSQLite {
		err = migrateDB(db)
		if err != nil {
			db.Close()
			return
		}
	}

	return
}

func MySQLDSN(cfg config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort))
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	// report matched rows, not changed rows, from UPDATE
	mc.ClientFoundRows = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}
