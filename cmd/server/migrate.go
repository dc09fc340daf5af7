package main

import (
	"homebar/internal/model"

	"github.com/sirupsen/logrus"
)

// MigrateCmd 对已有数据库做增量迁移，不删除任何数据
type MigrateCmd struct{}

func (m *MigrateCmd) Run(ctx *Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := model.NewRepositoryFactory().Open(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to open database")
		return err
	}

	applied, err := model.MigrateColumns(db)
	logrus.WithField("applied", applied).Info("migration_finished")
	return err
}
