package keyvalue

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is the relational representation of one named slot.
type Slot struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value string `gorm:"type:text;not null"`
}

// TableName keeps the table name stable across dialects.
func (Slot) TableName() string {
	return "slots"
}

// GormStore persists slots in a relational database through gorm. It works
// against both the sqlite and postgres dialects.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an existing gorm connection and ensures the slots
// table exists.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate slots table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Get returns the slot contents or ErrNotFound.
func (g *GormStore) Get(ctx context.Context, key string) (string, error) {
	var slot Slot
	err := g.db.WithContext(ctx).First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return slot.Value, nil
}

// Set upserts the slot contents.
func (g *GormStore) Set(ctx context.Context, key, value string) error {
	slot := Slot{Key: key, Value: value}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}
