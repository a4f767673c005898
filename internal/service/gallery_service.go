package service

import (
	"context"

	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/repository"
	"github.com/google/uuid"
)

var gallerySortColumns = map[string]string{
	"order":     "display_order",
	"category":  "category",
	"createdAt": "created_at",
}

type GalleryService interface {
	List(ctx context.Context, query dto.ListQuery) ([]*model.GalleryItem, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error)
	Create(ctx context.Context, req dto.CreateGalleryItemRequest) (*model.GalleryItem, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateGalleryItemRequest) (*model.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, req dto.ReorderRequest) error
}

type galleryService struct {
	repo repository.GalleryRepository
}

func NewGalleryService(repo repository.GalleryRepository) GalleryService {
	return &galleryService{repo: repo}
}

// List expects the query already normalized by the handler.
func (s *galleryService) List(ctx context.Context, query dto.ListQuery) ([]*model.GalleryItem, int64, error) {
	return s.repo.FindAll(ctx, repository.ListParams{
		Offset:    query.Offset(),
		Limit:     query.Limit,
		SortBy:    sortColumn(gallerySortColumns, query.SortBy),
		SortOrder: query.SortOrder,
		Category:  query.Category,
		Type:      query.Type,
	})
}

func (s *galleryService) Get(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Gallery item")
	}
	return item, nil
}

func (s *galleryService) Create(ctx context.Context, req dto.CreateGalleryItemRequest) (*model.GalleryItem, error) {
	item := &model.GalleryItem{
		ImageURL: req.ImageURL,
		Caption:  emptyToNil(req.Caption),
		Order:    orZero(req.Order),
		Category: emptyToNil(req.Category),
		Type:     emptyToNil(req.Type),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *galleryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateGalleryItemRequest) (*model.GalleryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Gallery item")
	}

	mergeRequired(&item.ImageURL, req.ImageURL)
	mergeOptional(&item.Caption, req.Caption)
	mergeInt(&item.Order, req.Order)
	mergeOptional(&item.Category, req.Category)
	mergeOptional(&item.Type, req.Type)

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *galleryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err, "Gallery item")
	}
	return s.repo.Delete(ctx, id)
}

// Reorder assigns each item's order from its array position. The repository
// runs the updates in one transaction; the original system applied them
// sequentially without one, which could leave a partial order behind.
func (s *galleryService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	ids := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		ids[i] = item.ID
	}
	return s.repo.Reorder(ctx, ids)
}
