package service

import (
	"context"

	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ContactService interface {
	Create(ctx context.Context, req dto.CreateContactMessageRequest) (*model.ContactMessage, error)
	List(ctx context.Context, query dto.ListQuery) ([]*model.ContactMessage, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	repo   repository.ContactRepository
	mailer Mailer
}

func NewContactService(repo repository.ContactRepository, mailer Mailer) ContactService {
	return &contactService{repo: repo, mailer: mailer}
}

func (s *contactService) Create(ctx context.Context, req dto.CreateContactMessageRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: emptyToNil(req.Subject),
		Message: req.Message,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Notification mail is fire-and-forget; delivery failure never fails
	// the request.
	if s.mailer != nil {
		go func(m model.ContactMessage) {
			if err := s.mailer.SendContactNotification(&m); err != nil {
				log.Warn().Err(err).Str("message_id", m.ID.String()).Msg("failed to send contact notification")
			}
		}(*msg)
	}

	return msg, nil
}

func (s *contactService) List(ctx context.Context, query dto.ListQuery) ([]*model.ContactMessage, int64, error) {
	return s.repo.FindAll(ctx, repository.ListParams{
		Offset:    query.Offset(),
		Limit:     query.Limit,
		SortBy:    "created_at",
		SortOrder: query.SortOrder,
	})
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err, "Contact message")
	}
	return s.repo.Delete(ctx, id)
}
