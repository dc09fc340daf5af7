package storage

import (
	"context"
	"fmt"
	"strings"

	"homebar/internal/config"
)

const (
	// TypeLocal 表示本地文件系统存储。
	TypeLocal = "local"
	// TypeS3 表示 Amazon S3 或兼容的存储后端。
	TypeS3 = "s3"
	// TypeOSS 表示阿里云 OSS 存储。
	TypeOSS = "oss"
	// TypeCOS 表示腾讯云 COS 存储。
	TypeCOS = "cos"
	// TypeR2 表示 Cloudflare R2 存储。
	TypeR2 = "r2"

	// CategoryRecipePhotos 配方照片所在目录。
	CategoryRecipePhotos = "recipes"
)

// SaveOptions 控制存储后端如何持久化文件。
//
// Category 用于组织文件目录，Extension 为不含前导点的扩展名，BaseName 为空时使用时间戳。
type SaveOptions struct {
	Category  string
	Extension string
	BaseName  string
}

// Storage 持久化二进制数据并返回存储键（本地存储为相对路径）。
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
	// Delete 删除指定键，键不存在时不报错。
	Delete(ctx context.Context, key string) error
}

// LocalBaseDirProvider 由可通过 HTTP 直接提供服务的本地存储实现。
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage 根据配置实例化存储后端。
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
