package repository

import (
	"context"

	"anoa.com/classsite/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryRepository interface {
	Create(ctx context.Context, item *model.GalleryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error)
	FindAll(ctx context.Context, params ListParams) ([]*model.GalleryItem, int64, error)
	Update(ctx context.Context, item *model.GalleryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Reorder persists order = position for every id, all-or-nothing.
	Reorder(ctx context.Context, ids []uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, item *model.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error) {
	var item model.GalleryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *galleryRepository) FindAll(ctx context.Context, params ListParams) ([]*model.GalleryItem, int64, error) {
	var items []*model.GalleryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&model.GalleryItem{})
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order(params.OrderClause()).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *galleryRepository) Update(ctx context.Context, item *model.GalleryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GalleryItem{}, "id = ?", id).Error
}

func (r *galleryRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&model.GalleryItem{}).
				Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *galleryRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.GalleryItem{}).Error
}
