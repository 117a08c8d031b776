package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"study-planner/internal/model"
)

// EntryRepository stores plain key/value rows.
type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Get returns the value stored under key. ok is false when the key is absent.
func (r *EntryRepository) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	var entry model.Entry
	err = r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	switch {
	case err == nil:
		return entry.Value, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("find entry %s: %w", key, err)
	}
}

// Has reports whether key exists.
func (r *EntryRepository) Has(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Entry{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count entry %s: %w", key, err)
	}
	return count > 0, nil
}

// Put overwrites the value under key.
func (r *EntryRepository) Put(ctx context.Context, key, value string) error {
	entry := model.Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("put entry %s: %w", key, err)
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("key = ?", key).Delete(&model.Entry{}).Error; err != nil {
		return fmt.Errorf("delete entry %s: %w", key, err)
	}
	return nil
}

// Transaction runs fn against a repository bound to one database transaction.
func (r *EntryRepository) Transaction(ctx context.Context, fn func(tx *EntryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&EntryRepository{db: tx})
	})
}
