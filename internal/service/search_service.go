package service

import (
	"encoding/json"
	"fmt"

	"anoa.com/classsite/internal/model"
	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"github.com/rs/zerolog/log"
)

const articleIndex = "articles"

// ArticleSearchIndex keeps the article search index in step with the store.
// Implementations must tolerate being absent; callers nil-check.
type ArticleSearchIndex interface {
	IndexArticle(article *model.Article) error
	RemoveArticle(id string) error
	RemoveAllArticles() error
	Search(query string, limit int) ([]uuid.UUID, error)
}

type meiliArticleDoc struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"created_at"`
}

type meiliSearchService struct {
	client meilisearch.ServiceManager
}

// NewMeiliSearchService wires the Meilisearch-backed index. Pass a nil
// client handle only via a nil interface at the call site.
func NewMeiliSearchService(client meilisearch.ServiceManager) ArticleSearchIndex {
	s := &meiliSearchService{client: client}
	s.initIndex()
	return s
}

func (s *meiliSearchService) initIndex() {
	sortable := []string{"created_at"}
	if _, err := s.client.Index(articleIndex).UpdateSortableAttributes(&sortable); err != nil {
		log.Warn().Err(err).Msg("failed to update article sortable attributes")
	}
}

func (s *meiliSearchService) IndexArticle(article *model.Article) error {
	doc := meiliArticleDoc{
		ID:        article.ID.String(),
		Title:     article.Title,
		Content:   article.Content,
		CreatedAt: article.CreatedAt.Unix(),
	}
	if article.Author != nil {
		doc.Author = article.Author.Name
	}

	primaryKey := "id"
	_, err := s.client.Index(articleIndex).AddDocuments([]meiliArticleDoc{doc}, &primaryKey)
	if err != nil {
		return fmt.Errorf("failed to index article %s: %w", doc.ID, err)
	}
	return nil
}

func (s *meiliSearchService) RemoveArticle(id string) error {
	_, err := s.client.Index(articleIndex).DeleteDocument(id)
	if err != nil {
		return fmt.Errorf("failed to remove article %s from index: %w", id, err)
	}
	return nil
}

func (s *meiliSearchService) RemoveAllArticles() error {
	_, err := s.client.Index(articleIndex).DeleteAllDocuments()
	if err != nil {
		return fmt.Errorf("failed to clear article index: %w", err)
	}
	return nil
}

func (s *meiliSearchService) Search(query string, limit int) ([]uuid.UUID, error) {
	resp, err := s.client.Index(articleIndex).Search(query, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("article search failed: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
