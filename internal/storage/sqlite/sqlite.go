// Package sqlite implements the key-value substrate on a sqlite file, so a
// portal "profile" survives restarts the way browser local storage does.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	driver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Item is one persisted key-value pair.
type Item struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;not null"`
}

func (Item) TableName() string {
	return "kv_items"
}

type Substrate struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite file at path and ensures the kv_items
// table exists. The standalone `migrate` command applies the same schema
// through goose for deployments that want explicit migrations.
func Open(path string) (*Substrate, error) {
	db, err := gorm.Open(driver.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&Item{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_items table: %w", err)
	}

	return &Substrate{db: db}, nil
}

func New(db *gorm.DB) *Substrate {
	return &Substrate{db: db}
}

func (s *Substrate) Get(ctx context.Context, key string) (string, bool, error) {
	var item Item
	err := s.db.WithContext(ctx).First(&item, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return item.Value, true, nil
}

func (s *Substrate) Set(ctx context.Context, key, value string) error {
	item := Item{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *Substrate) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&Item{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
