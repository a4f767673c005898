package service

import (
	"context"

	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/repository"
	"anoa.com/classsite/pkg/apperror"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultSearchLimit = 20

var articleSortColumns = map[string]string{
	"title":     "title",
	"createdAt": "created_at",
}

type ArticleService interface {
	List(ctx context.Context, query dto.ListQuery) ([]*model.Article, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Article, error)
	Create(ctx context.Context, req dto.CreateArticleRequest) (*model.Article, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateArticleRequest) (*model.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, limit int) ([]*model.Article, error)
}

type articleService struct {
	repo        repository.ArticleRepository
	studentRepo repository.StudentRepository
	search      ArticleSearchIndex
}

func NewArticleService(repo repository.ArticleRepository, studentRepo repository.StudentRepository, search ArticleSearchIndex) ArticleService {
	return &articleService{repo: repo, studentRepo: studentRepo, search: search}
}

func (s *articleService) List(ctx context.Context, query dto.ListQuery) ([]*model.Article, int64, error) {
	return s.repo.FindAll(ctx, repository.ListParams{
		Offset:    query.Offset(),
		Limit:     query.Limit,
		SortBy:    sortColumn(articleSortColumns, query.SortBy),
		SortOrder: query.SortOrder,
	})
}

func (s *articleService) Get(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Article")
	}
	return article, nil
}

func (s *articleService) Create(ctx context.Context, req dto.CreateArticleRequest) (*model.Article, error) {
	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, apperror.Precondition("Author not found")
	}
	if _, err := s.studentRepo.FindByID(ctx, authorID); err != nil {
		return nil, apperror.Precondition("Author not found")
	}

	article := &model.Article{
		Title:         req.Title,
		Content:       req.Content,
		AuthorID:      authorID,
		CoverImageURL: emptyToNil(req.CoverImageURL),
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}

	s.indexAsync(article)
	return article, nil
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateArticleRequest) (*model.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Article")
	}

	mergeRequired(&article.Title, req.Title)
	mergeRequired(&article.Content, req.Content)
	mergeOptional(&article.CoverImageURL, req.CoverImageURL)

	if req.AuthorID != nil {
		authorID, err := uuid.Parse(*req.AuthorID)
		if err != nil {
			return nil, apperror.Precondition("Author not found")
		}
		if _, err := s.studentRepo.FindByID(ctx, authorID); err != nil {
			return nil, apperror.Precondition("Author not found")
		}
		article.AuthorID = authorID
		article.Author = nil
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	s.indexAsync(article)
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err, "Article")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		if err := s.search.RemoveArticle(id.String()); err != nil {
			log.Warn().Err(err).Str("article_id", id.String()).Msg("failed to remove article from search index")
		}
	}
	return nil
}

// Search consults the search index when one is configured and falls back to
// a store-side match otherwise. Index hits are returned in rank order.
func (s *articleService) Search(ctx context.Context, query string, limit int) ([]*model.Article, error) {
	if limit < 1 {
		limit = defaultSearchLimit
	}

	if s.search != nil {
		ids, err := s.search.Search(query, limit)
		if err == nil {
			articles, err := s.repo.FindByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			byID := make(map[uuid.UUID]*model.Article, len(articles))
			for _, a := range articles {
				byID[a.ID] = a
			}
			ranked := make([]*model.Article, 0, len(ids))
			for _, id := range ids {
				if a, ok := byID[id]; ok {
					ranked = append(ranked, a)
				}
			}
			return ranked, nil
		}
		log.Warn().Err(err).Msg("search index unavailable, falling back to store query")
	}

	return s.repo.SearchContent(ctx, query, limit)
}

func (s *articleService) indexAsync(article *model.Article) {
	if s.search == nil {
		return
	}
	if err := s.search.IndexArticle(article); err != nil {
		log.Warn().Err(err).Str("article_id", article.ID.String()).Msg("failed to index article")
	}
}
