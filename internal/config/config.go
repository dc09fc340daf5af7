package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultLLMBaseURL is the DashScope OpenAI-compatible endpoint.
const DefaultLLMBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DBType     string `env:"DB_TYPE" envDefault:"sqlite"`
	DSNURL     string `env:"DB_DSN" envDefault:""`
	DBUser     string `env:"DB_USER" envDefault:""`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBAddr     string `env:"DB_HOST" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:"homebar"`
	DBPath     string `env:"DB_PATH" envDefault:"datas/homebar.db"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBLogLevel string `env:"DB_LOG_LEVEL" envDefault:"warn"`

	StorageType          string `env:"STORAGE_TYPE" envDefault:"local"`
	StorageLocalDir      string `env:"STORAGE_LOCAL_DIR" envDefault:"datas/photos"`
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"/files"`

	// S3 兼容存储配置
	StorageS3Region          string `env:"STORAGE_S3_REGION"`
	StorageS3Bucket          string `env:"STORAGE_S3_BUCKET"`
	StorageS3Prefix          string `env:"STORAGE_S3_PREFIX"`
	StorageS3Endpoint        string `env:"STORAGE_S3_ENDPOINT"`
	StorageS3AccessKeyID     string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	StorageS3SecretAccessKey string `env:"STORAGE_S3_SECRET_ACCESS_KEY"`
	StorageS3SessionToken    string `env:"STORAGE_S3_SESSION_TOKEN"`
	StorageS3ForcePathStyle  bool   `env:"STORAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`

	// 阿里云 OSS 存储配置
	StorageOSSEndpoint        string `env:"STORAGE_OSS_ENDPOINT"`
	StorageOSSBucket          string `env:"STORAGE_OSS_BUCKET"`
	StorageOSSPrefix          string `env:"STORAGE_OSS_PREFIX"`
	StorageOSSAccessKeyID     string `env:"STORAGE_OSS_ACCESS_KEY_ID"`
	StorageOSSAccessKeySecret string `env:"STORAGE_OSS_ACCESS_KEY_SECRET"`

	// 腾讯云 COS 存储配置
	StorageCOSBucketURL string `env:"STORAGE_COS_BUCKET_URL"`
	StorageCOSPrefix    string `env:"STORAGE_COS_PREFIX"`
	StorageCOSSecretID  string `env:"STORAGE_COS_SECRET_ID"`
	StorageCOSSecretKey string `env:"STORAGE_COS_SECRET_KEY"`

	// Cloudflare R2 存储配置
	StorageR2AccountID       string `env:"STORAGE_R2_ACCOUNT_ID"`
	StorageR2Endpoint        string `env:"STORAGE_R2_ENDPOINT"`
	StorageR2Region          string `env:"STORAGE_R2_REGION" envDefault:"auto"`
	StorageR2Bucket          string `env:"STORAGE_R2_BUCKET"`
	StorageR2Prefix          string `env:"STORAGE_R2_PREFIX"`
	StorageR2AccessKeyID     string `env:"STORAGE_R2_ACCESS_KEY_ID"`
	StorageR2SecretAccessKey string `env:"STORAGE_R2_SECRET_ACCESS_KEY"`

	// 调酒建议模型配置
	LLMDriver        string  `env:"LLM_DRIVER" envDefault:"openai"`
	DashscopeAPIKey  string  `env:"DASHSCOPE_API_KEY" envDefault:""`
	OpenAIAPIKey     string  `env:"OPENAI_API_KEY" envDefault:""`
	VolcengineAPIKey string  `env:"VOLCENGINE_API_KEY" envDefault:""`
	LLMBaseURL       string  `env:"LLM_BASE_URL" envDefault:"https://dashscope.aliyuncs.com/compatible-mode/v1"`
	LLMModel         string  `env:"LLM_MODEL" envDefault:"qwen-plus"`
	LLMTemperature   float32 `env:"LLM_TEMPERATURE" envDefault:"0.7"`

	OwnerPassword        string `env:"OWNER_PASSWORD" envDefault:""`
	OwnerPasswordHash    string `env:"OWNER_PASSWORD_HASH" envDefault:""`
	JWTSecret            string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTIssuer            string `env:"JWT_ISSUER" envDefault:"homebar"`
	JWTExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES" envDefault:"1440"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	SeedFile       string `env:"SEED_FILE" envDefault:""`
}

// LLMAPIKey returns the chat credential, preferring DashScope over the
// generic OpenAI key.
func (c Config) LLMAPIKey() string {
	if strings.EqualFold(strings.TrimSpace(c.LLMDriver), "volcengine") {
		return strings.TrimSpace(c.VolcengineAPIKey)
	}
	if key := strings.TrimSpace(c.DashscopeAPIKey); key != "" {
		return key
	}
	return strings.TrimSpace(c.OpenAIAPIKey)
}

// OwnerAuthEnabled reports whether mutations require an owner token.
func (c Config) OwnerAuthEnabled() bool {
	return strings.TrimSpace(c.OwnerPassword) != "" || strings.TrimSpace(c.OwnerPasswordHash) != ""
}

// Load reads an optional .env file and then parses the environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("dotenv_load_failed")
	}
	return ParseConfig()
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.WithFields(logrus.Fields{
		"db_type":      Conf.DBType,
		"storage_type": Conf.StorageType,
		"llm_driver":   Conf.LLMDriver,
		"llm_model":    Conf.LLMModel,
	}).Debug("config_loaded")
	return Conf, nil
}

// ConfigureLogging applies LOG_LEVEL and LOG_FORMAT to the global logger.
func ConfigureLogging(cfg Config) {
	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if strings.EqualFold(strings.TrimSpace(cfg.LogFormat), "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
