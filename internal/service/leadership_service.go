package service

import (
	"context"

	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/repository"
	"github.com/google/uuid"
)

var leadershipSortColumns = map[string]string{
	"order":     "display_order",
	"name":      "name",
	"createdAt": "created_at",
}

type LeadershipService interface {
	List(ctx context.Context, query dto.ListQuery) ([]*model.LeadershipMember, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.LeadershipMember, error)
	Create(ctx context.Context, req dto.CreateLeadershipMemberRequest) (*model.LeadershipMember, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateLeadershipMemberRequest) (*model.LeadershipMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, req dto.ReorderRequest) error
}

type leadershipService struct {
	repo repository.LeadershipRepository
}

func NewLeadershipService(repo repository.LeadershipRepository) LeadershipService {
	return &leadershipService{repo: repo}
}

func (s *leadershipService) List(ctx context.Context, query dto.ListQuery) ([]*model.LeadershipMember, int64, error) {
	return s.repo.FindAll(ctx, repository.ListParams{
		Offset:    query.Offset(),
		Limit:     query.Limit,
		SortBy:    sortColumn(leadershipSortColumns, query.SortBy),
		SortOrder: query.SortOrder,
	})
}

func (s *leadershipService) Get(ctx context.Context, id uuid.UUID) (*model.LeadershipMember, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Leadership member")
	}
	return member, nil
}

func (s *leadershipService) Create(ctx context.Context, req dto.CreateLeadershipMemberRequest) (*model.LeadershipMember, error) {
	member := &model.LeadershipMember{
		Name:       req.Name,
		Position:   req.Position,
		ProfilePic: emptyToNil(req.ProfilePic),
		Bio:        emptyToNil(req.Bio),
		Order:      orZero(req.Order),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *leadershipService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateLeadershipMemberRequest) (*model.LeadershipMember, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Leadership member")
	}

	mergeRequired(&member.Name, req.Name)
	mergeRequired(&member.Position, req.Position)
	mergeOptional(&member.ProfilePic, req.ProfilePic)
	mergeOptional(&member.Bio, req.Bio)
	mergeInt(&member.Order, req.Order)

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *leadershipService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err, "Leadership member")
	}
	return s.repo.Delete(ctx, id)
}

func (s *leadershipService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	ids := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		ids[i] = item.ID
	}
	return s.repo.Reorder(ctx, ids)
}
