package database

import (
	"designers/internal/config"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const (
	DBTypeMySQL    = "mysql"
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// BuildDSN 返回连接串：DATABASE_URL 优先，否则由各个配置项构建
func BuildDSN(cfg config.Config) (string, error) {
	// 连接串也要求 DB_TYPE 合法，否则无法选择方言
	if !supportedType(dbType(cfg)) {
		return "", fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
	if cfg.HasDSN() {
		return strings.TrimSpace(cfg.DSNURL), nil
	}

	switch dbType(cfg) {
	case DBTypePostgres:
		port := cfg.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, port), nil
	case DBTypeMySQL:
		port := cfg.DBPort
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, port, cfg.DBName), nil
	case DBTypeSQLite:
		filePath := strings.TrimSpace(cfg.DBPath)
		if filePath == "" {
			filePath = "datas/designers.db"
		}
		return filePath, nil
	default:
		return "", fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
}

// Dialector 根据数据库类型创建 GORM 方言
func Dialector(cfg config.Config) (gorm.Dialector, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}

	switch dbType(cfg) {
	case DBTypePostgres:
		return postgres.Open(dsn), nil
	case DBTypeMySQL:
		return mysql.Open(dsn), nil
	case DBTypeSQLite:
		// SQLite 会在连接时自动创建 .db 文件，但前提是目录已存在
		if dir := filepath.Dir(dsn); dir != "" && dir != "." && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
			}
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
}

func supportedType(kind string) bool {
	switch kind {
	case DBTypePostgres, DBTypeMySQL, DBTypeSQLite:
		return true
	}
	return false
}

func dbType(cfg config.Config) string {
	return strings.ToLower(strings.TrimSpace(cfg.DBType))
}

func gormConfig() *gorm.Config {
	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second * 5,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	return &gorm.Config{
		Logger: gormLogger,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	}
}
