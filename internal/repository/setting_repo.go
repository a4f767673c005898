package repository

import (
	"context"

	"anoa.com/classsite/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	FindByKeys(ctx context.Context, keys []string) ([]model.Setting, error)
	// Upsert writes one key with last-write-wins semantics. Callers doing a
	// group-put call this per key; there is no batch atomicity across keys.
	Upsert(ctx context.Context, key, value string) error
	DeleteAll(ctx context.Context) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) FindByKeys(ctx context.Context, keys []string) ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.WithContext(ctx).Where("key IN ?", keys).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) Upsert(ctx context.Context, key, value string) error {
	setting := model.Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

func (r *settingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Setting{}).Error
}
