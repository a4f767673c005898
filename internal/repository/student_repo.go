package repository

import (
	"context"

	"anoa.com/classsite/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	FindAll(ctx context.Context, params ListParams) ([]*model.Student, int64, error)
	Update(ctx context.Context, student *model.Student) error
	// DeleteWithArticles removes the student and their articles in one
	// transaction (referential-integrity policy, see DESIGN.md).
	DeleteWithArticles(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAll(ctx context.Context, params ListParams) ([]*model.Student, int64, error) {
	var students []*model.Student
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Student{})
	if params.Category != "" {
		// Categories are stored as a JSON array; match the quoted element.
		query = query.Where("categories::text LIKE ?", `%"`+params.Category+`"%`)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order(params.OrderClause()).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *studentRepository) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) DeleteWithArticles(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Article{}, "author_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Student{}, "id = ?", id).Error
	})
}

func (r *studentRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Student{}).Error
}
