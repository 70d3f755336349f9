// connection.go
//
// A personal-development tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of growthdb.
// growthdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// growthdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with growthdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package database

import (
	"fmt"
	"net"
	"time"

	glebarez "github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/localnerve/growthdb/internal/config"
	"github.com/localnerve/growthdb/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	cgosqlite "gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var defaultPorts = map[string]string{
	"mysql":      "3306",
	"mariadb":    "3306",
	"postgres":   "5432",
	"postgresql": "5432",
	"sqlserver":  "1433",
	"mssql":      "1433",
}

// Dialector selects the gorm dialector for the configured DB_TYPE.
// "sqlite" uses the pure Go driver, "sqlite3" the cgo one.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	port := cfg.DBPort
	if port == "" {
		port = defaultPorts[cfg.DBType]
	}

	switch cfg.DBType {
	case "mysql", "mariadb":
		dsn := mysqldriver.NewConfig()
		dsn.User = cfg.DBUser
		dsn.Passwd = cfg.DBPassword
		dsn.Net = "tcp"
		dsn.Addr = net.JoinHostPort(cfg.DBHost, port)
		dsn.DBName = cfg.DBDatabase
		dsn.ParseTime = true
		dsn.Loc = time.UTC
		dsn.Params = map[string]string{"charset": "utf8mb4"}
		return mysql.Open(dsn.FormatDSN()), nil

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			port,
		)
		return postgres.Open(dsn), nil

	case "sqlite":
		// DBDatabase is the file path
		return glebarez.Open(cfg.DBDatabase), nil

	case "sqlite3":
		return cgosqlite.Open(cfg.DBDatabase), nil

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s?database=%s",
			cfg.DBUser,
			cfg.DBPassword,
			net.JoinHostPort(cfg.DBHost, port),
			cfg.DBDatabase,
		)
		return sqlserver.Open(dsn), nil
	}

	return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
}

// GormLogger routes gorm's logging through zap.
func GormLogger(log *zap.Logger) logger.Interface {
	return logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Connect establishes a database connection based on the configured DB_TYPE
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  GormLogger(log),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
	sqlDB.SetMaxIdleConns(max(1, cfg.DBConnectionLimit/2))

	log.Info("connected to database",
		zap.String("type", cfg.DBType),
		zap.String("database", cfg.DBDatabase),
	)
	return db, nil
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
