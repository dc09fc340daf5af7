package model

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"homebar/internal/config"
	"homebar/internal/entity"
	"homebar/internal/model/sql"

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

	sqliteMemory = ":memory:"
)

// RepositoryFactory 根据数据库类型创建对应的仓库实现
type RepositoryFactory struct{}

// NewRepositoryFactory 创建新的仓库工厂
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{}
}

// InitRepository 初始化仓库的辅助函数
func InitRepository(cfg *config.Config) (Repository, error) {
	if cfg == nil || cfg.DBType == "" {
		return nil, fmt.Errorf("database type not configured")
	}
	return NewRepositoryFactory().CreateRepository(cfg)
}

// NewRepository wraps an already opened connection.
func NewRepository(db *gorm.DB) Repository {
	return sql.NewGormRepository(db)
}

// CreateRepository 根据配置创建对应的仓库实现，并自动迁移表结构
func (f *RepositoryFactory) CreateRepository(cfg *config.Config) (Repository, error) {
	db, err := f.Open(cfg)
	if err != nil {
		return nil, err
	}

	// 自动迁移数据库表结构
	if err := MigrateSchema(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return sql.NewGormRepository(db), nil
}

// Open 根据配置打开数据库连接，不做迁移
func (f *RepositoryFactory) Open(cfg *config.Config) (*gorm.DB, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.DBType)) {
	case DBTypeMySQL:
		return f.openMySQL(cfg)
	case DBTypeSQLite:
		return f.openSQLite(cfg)
	case DBTypePostgres:
		return f.openPostgres(cfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
}

func (f *RepositoryFactory) openMySQL(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DSNURL
	if dsn == "" {
		// 从各个配置项构建 DSN
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBAddr, cfg.DBPort, cfg.DBName)
	}

	db, err := f.openGormDB(mysql.Open(dsn), cfg.DBLogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return db, nil
}

func (f *RepositoryFactory) openSQLite(cfg *config.Config) (*gorm.DB, error) {
	filePath := cfg.DBPath
	if filePath == "" {
		filePath = "datas/homebar.db" // 默认 SQLite 数据库文件
	}

	// SQLite 会在连接时自动创建 .db 文件，但前提是目录已存在
	if filePath != sqliteMemory {
		if dir := filepath.Dir(filePath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
			}
		}
	}

	db, err := f.openGormDB(sqlite.Open(filePath), cfg.DBLogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// 内存库每个连接都是独立的数据库
	if filePath == sqliteMemory {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func (f *RepositoryFactory) openPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DSNURL
	if dsn == "" {
		// 从各个配置项构建 DSN
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBAddr, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	}

	db, err := f.openGormDB(postgres.Open(dsn), cfg.DBLogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	return db, nil
}

func (f *RepositoryFactory) openGormDB(dialector gorm.Dialector, level string) (*gorm.DB, error) {
	// 配置 GORM 日志
	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second * 5,
			LogLevel:                  parseGormLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, GormConfig(gormLogger))
	if err != nil {
		return nil, err
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// GormConfig returns the shared GORM settings.
func GormConfig(gormLogger logger.Interface) *gorm.Config {
	return &gorm.Config{
		Logger:                                   gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true, // 使用单数表名
		},
	}
}

func parseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}

// MigrateSchema 迁移数据库表结构
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(schemaModels()...)
}

func schemaModels() []interface{} {
	return []interface{}{
		&entity.DbParticipant{},
		&entity.DbInventoryItem{},
		&entity.DbRecipe{},
		&entity.DbRecipeIngredient{},
		&entity.DbEvent{},
		&entity.DbEventRecipe{},
		&entity.DbConsumption{},
		&entity.DbBartender{},
		&entity.DbSuggestionRecord{},
	}
}
