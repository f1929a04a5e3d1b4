package mysql

import (
	"context"
	"database/sql"
	"fmt"

	drv "github.com/go-sql-driver/mysql"

	"servicecenter/internal/config"
)

func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsnCfg := drv.NewConfig()
	dsnCfg.User = cfg.User
	dsnCfg.Passwd = cfg.Password
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	dsnCfg.DBName = cfg.Name
	dsnCfg.ParseTime = true
	// Cyrillic client names and roster logins.
	dsnCfg.Params = map[string]string{"charset": "utf8mb4"}

	db, err := sql.Open("mysql", dsnCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS Orders (
	seq BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	id VARCHAR(64) NOT NULL,
	documentNumber VARCHAR(64) NOT NULL,
	orderDate VARCHAR(10) NOT NULL,
	client VARCHAR(255) NOT NULL,
	masterId VARCHAR(64) NOT NULL DEFAULT '',
	repairObject VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	imageUrl VARCHAR(1024) NOT NULL DEFAULT '',
	services JSON NOT NULL,
	materials JSON NOT NULL,
	invoiceNumber VARCHAR(64) NOT NULL DEFAULT '',
	invoiceDate VARCHAR(10) NOT NULL DEFAULT '',
	supplier VARCHAR(255) NOT NULL DEFAULT '',
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	INDEX idx_order_id (id),
	INDEX idx_master (masterId)
) DEFAULT CHARSET=utf8mb4`

// EnsureSchema creates the Orders table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createOrdersTable); err != nil {
		return fmt.Errorf("creating Orders table: %w", err)
	}
	return nil
}
