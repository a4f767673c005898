package repository

import (
	"context"

	"anoa.com/classsite/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadershipRepository interface {
	Create(ctx context.Context, member *model.LeadershipMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LeadershipMember, error)
	FindAll(ctx context.Context, params ListParams) ([]*model.LeadershipMember, int64, error)
	Update(ctx context.Context, member *model.LeadershipMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type leadershipRepository struct {
	db *gorm.DB
}

func NewLeadershipRepository(db *gorm.DB) LeadershipRepository {
	return &leadershipRepository{db: db}
}

func (r *leadershipRepository) Create(ctx context.Context, member *model.LeadershipMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *leadershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LeadershipMember, error) {
	var member model.LeadershipMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *leadershipRepository) FindAll(ctx context.Context, params ListParams) ([]*model.LeadershipMember, int64, error) {
	var members []*model.LeadershipMember
	var total int64

	query := r.db.WithContext(ctx).Model(&model.LeadershipMember{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order(params.OrderClause()).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

func (r *leadershipRepository) Update(ctx context.Context, member *model.LeadershipMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *leadershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LeadershipMember{}, "id = ?", id).Error
}

func (r *leadershipRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&model.LeadershipMember{}).
				Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *leadershipRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.LeadershipMember{}).Error
}
