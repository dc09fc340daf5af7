package model

import (
	"fmt"

	"homebar/internal/entity"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

type tabler interface {
	TableName() string
}

type columnStep struct {
	model tabler
	field string
}

// 历史版本之后新增的列，旧库需要补齐
var additiveColumns = []columnStep{
	{model: &entity.DbConsumption{}, field: "EventID"},
	{model: &entity.DbConsumption{}, field: "RecipeID"},
	{model: &entity.DbRecipe{}, field: "RecipeType"},
	{model: &entity.DbRecipe{}, field: "PhotoPath"},
}

// MigrateColumns creates missing tables and adds missing columns without
// touching existing data. Every step runs even when an earlier one fails;
// the returned error aggregates all failures.
func MigrateColumns(db *gorm.DB) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("database not initialised")
	}

	migrator := db.Migrator()
	var applied []string
	var errs error

	for _, m := range schemaModels() {
		if migrator.HasTable(m) {
			continue
		}
		name := tableName(m)
		if err := migrator.CreateTable(m); err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("create table %s: %w", name, err))
			continue
		}
		applied = append(applied, "create table "+name)
		logrus.WithField("table", name).Info("migration_table_created")
	}

	for _, step := range additiveColumns {
		name := step.model.TableName()
		if !migrator.HasTable(step.model) || migrator.HasColumn(step.model, step.field) {
			continue
		}
		if err := migrator.AddColumn(step.model, step.field); err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("add column %s.%s: %w", name, step.field, err))
			continue
		}
		applied = append(applied, fmt.Sprintf("add column %s.%s", name, step.field))
		logrus.WithFields(logrus.Fields{"table": name, "field": step.field}).Info("migration_column_added")
	}

	return applied, errs
}

func tableName(m interface{}) string {
	if t, ok := m.(tabler); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", m)
}
