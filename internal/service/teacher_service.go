package service

import (
	"context"

	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/repository"
	"github.com/google/uuid"
)

var teacherSortColumns = map[string]string{
	"name":      "name",
	"role":      "role",
	"subject":   "subject",
	"createdAt": "created_at",
}

type TeacherService interface {
	List(ctx context.Context, query dto.ListQuery) ([]*model.Teacher, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Teacher, error)
	Create(ctx context.Context, req dto.CreateTeacherRequest) (*model.Teacher, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTeacherRequest) (*model.Teacher, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type teacherService struct {
	repo repository.TeacherRepository
}

func NewTeacherService(repo repository.TeacherRepository) TeacherService {
	return &teacherService{repo: repo}
}

func (s *teacherService) List(ctx context.Context, query dto.ListQuery) ([]*model.Teacher, int64, error) {
	return s.repo.FindAll(ctx, repository.ListParams{
		Offset:    query.Offset(),
		Limit:     query.Limit,
		SortBy:    sortColumn(teacherSortColumns, query.SortBy),
		SortOrder: query.SortOrder,
	})
}

func (s *teacherService) Get(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Teacher")
	}
	return teacher, nil
}

func (s *teacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*model.Teacher, error) {
	teacher := &model.Teacher{
		Name:        req.Name,
		Role:        req.Role,
		Nickname:    emptyToNil(req.Nickname),
		Subject:     emptyToNil(req.Subject),
		Gender:      emptyToNil(req.Gender),
		Phone:       emptyToNil(req.Phone),
		Whatsapp:    emptyToNil(req.Whatsapp),
		Email:       emptyToNil(req.Email),
		ProfilePic:  emptyToNil(req.ProfilePic),
		Bio:         emptyToNil(req.Bio),
		Body:        emptyToNil(req.Body),
		ContactInfo: emptyToNil(req.ContactInfo),
	}

	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTeacherRequest) (*model.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Teacher")
	}

	mergeRequired(&teacher.Name, req.Name)
	mergeRequired(&teacher.Role, req.Role)
	mergeOptional(&teacher.Nickname, req.Nickname)
	mergeOptional(&teacher.Subject, req.Subject)
	mergeOptional(&teacher.Gender, req.Gender)
	mergeOptional(&teacher.Phone, req.Phone)
	mergeOptional(&teacher.Whatsapp, req.Whatsapp)
	mergeOptional(&teacher.Email, req.Email)
	mergeOptional(&teacher.ProfilePic, req.ProfilePic)
	mergeOptional(&teacher.Bio, req.Bio)
	mergeOptional(&teacher.Body, req.Body)
	mergeOptional(&teacher.ContactInfo, req.ContactInfo)

	if err := s.repo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err, "Teacher")
	}
	return s.repo.Delete(ctx, id)
}
