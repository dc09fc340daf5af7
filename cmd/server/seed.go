package main

import (
	"context"
	"fmt"
	"strings"

	"homebar/internal/model"

	"github.com/sirupsen/logrus"
)

// SeedCmd 从 YAML 文件导入初始数据，已存在的名称会被跳过
type SeedCmd struct {
	File string `help:"Seed YAML file, defaults to SEED_FILE" short:"f" type:"existingfile"`
}

func (s *SeedCmd) Run(ctx *Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	path := strings.TrimSpace(s.File)
	if path == "" {
		path = strings.TrimSpace(cfg.SeedFile)
	}
	if path == "" {
		return fmt.Errorf("no seed file given: pass --file or set SEED_FILE")
	}

	data, err := model.LoadSeedFile(path)
	if err != nil {
		return err
	}

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return err
	}

	result, err := model.ApplySeed(context.Background(), repo, data)
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d participants, %d inventory items, %d recipes, %d bartenders\n",
		result.Participants, result.Inventory, result.Recipes, result.Bartenders)
	return nil
}
