package main

import (
	"homebar/internal/config"

	"github.com/sirupsen/logrus"
)

// Context 各子命令共享的运行参数
type Context struct {
	Debug bool
}

// CLI 命令行定义，运行时配置仍以环境变量为准
var CLI struct {
	Debug   bool   `help:"Enable debug logging"`
	EnvFile string `help:"Optional dotenv file" default:".env" type:"path"`

	Serve   ServeCmd   `cmd:"" default:"1" help:"Run the HTTP server"`
	Migrate MigrateCmd `cmd:"" help:"Add missing tables and columns"`
	Seed    SeedCmd    `cmd:"" help:"Load participants, inventory, recipes and bartenders from YAML"`
}

// loadConfig 读取配置并初始化日志
func loadConfig(ctx *Context) (config.Config, error) {
	cfg, err := config.Load(CLI.EnvFile)
	if err != nil {
		return config.Config{}, err
	}
	if ctx != nil && ctx.Debug {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	config.ConfigureLogging(cfg)
	return cfg, nil
}
