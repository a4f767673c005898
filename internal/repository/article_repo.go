package repository

import (
	"context"

	"anoa.com/classsite/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	FindAll(ctx context.Context, params ListParams) ([]*model.Article, int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Article, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Article, error)
	// SearchContent is the store-side fallback when no search index is
	// configured.
	SearchContent(ctx context.Context, query string, limit int) ([]*model.Article, error)
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return err
	}
	// Reload with the author joined so the create response matches get-by-id.
	return r.db.WithContext(ctx).Preload("Author").First(article, "id = ?", article.ID).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Preload("Author").First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindAll(ctx context.Context, params ListParams) ([]*model.Article, int64, error) {
	var articles []*model.Article
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Article{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Author").
		Order(params.OrderClause()).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *articleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Article, error) {
	var articles []*model.Article
	if len(ids) == 0 {
		return articles, nil
	}
	if err := r.db.WithContext(ctx).Preload("Author").Find(&articles, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Article, error) {
	var articles []*model.Article
	if err := r.db.WithContext(ctx).Find(&articles, "author_id = ?", authorID).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) SearchContent(ctx context.Context, query string, limit int) ([]*model.Article, error) {
	var articles []*model.Article
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	if err := r.db.WithContext(ctx).Save(article).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Author").First(article, "id = ?", article.ID).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Article{}, "id = ?", id).Error
}

func (r *articleRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Article{}).Error
}
