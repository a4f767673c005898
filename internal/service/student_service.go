package service

import (
	"context"

	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var studentSortColumns = map[string]string{
	"name":      "name",
	"role":      "role",
	"createdAt": "created_at",
}

type StudentService interface {
	List(ctx context.Context, query dto.ListQuery) ([]*model.Student, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Student, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (*model.Student, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentService struct {
	repo        repository.StudentRepository
	articleRepo repository.ArticleRepository
	search      ArticleSearchIndex
}

func NewStudentService(repo repository.StudentRepository, articleRepo repository.ArticleRepository, search ArticleSearchIndex) StudentService {
	return &studentService{repo: repo, articleRepo: articleRepo, search: search}
}

func (s *studentService) List(ctx context.Context, query dto.ListQuery) ([]*model.Student, int64, error) {
	return s.repo.FindAll(ctx, repository.ListParams{
		Offset:    query.Offset(),
		Limit:     query.Limit,
		SortBy:    sortColumn(studentSortColumns, query.SortBy),
		SortOrder: query.SortOrder,
		Category:  query.Category,
	})
}

func (s *studentService) Get(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Student")
	}
	return student, nil
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		Name:        req.Name,
		Role:        req.Role,
		Nickname:    emptyToNil(req.Nickname),
		Gender:      emptyToNil(req.Gender),
		Phone:       emptyToNil(req.Phone),
		Whatsapp:    emptyToNil(req.Whatsapp),
		Email:       emptyToNil(req.Email),
		ProfilePic:  emptyToNil(req.ProfilePic),
		Bio:         emptyToNil(req.Bio),
		Body:        emptyToNil(req.Body),
		ContactInfo: emptyToNil(req.ContactInfo),
		Categories:  req.Categories,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Student")
	}

	mergeRequired(&student.Name, req.Name)
	mergeRequired(&student.Role, req.Role)
	mergeOptional(&student.Nickname, req.Nickname)
	mergeOptional(&student.Gender, req.Gender)
	mergeOptional(&student.Phone, req.Phone)
	mergeOptional(&student.Whatsapp, req.Whatsapp)
	mergeOptional(&student.Email, req.Email)
	mergeOptional(&student.ProfilePic, req.ProfilePic)
	mergeOptional(&student.Bio, req.Bio)
	mergeOptional(&student.Body, req.Body)
	mergeOptional(&student.ContactInfo, req.ContactInfo)
	if req.Categories != nil {
		student.Categories = req.Categories
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes the student and their articles together; see DESIGN.md for
// the referential-integrity decision. The cascaded articles also leave the
// search index.
func (s *studentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err, "Student")
	}

	var articles []*model.Article
	if s.search != nil {
		var err error
		articles, err = s.articleRepo.FindByAuthor(ctx, id)
		if err != nil {
			return err
		}
	}

	if err := s.repo.DeleteWithArticles(ctx, id); err != nil {
		return err
	}

	for _, article := range articles {
		if err := s.search.RemoveArticle(article.ID.String()); err != nil {
			log.Warn().Err(err).Str("article_id", article.ID.String()).Msg("failed to remove article from search index")
		}
	}
	return nil
}
