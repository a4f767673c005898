package service

import (
	"context"

	"anoa.com/classsite/internal/repository"
	"anoa.com/classsite/pkg/apperror"
	"github.com/rs/zerolog/log"
)

// ResetService backs the development/demo utility endpoints that wipe and
// reseed content. Routes using it are admin-gated.
type ResetService interface {
	Reset(ctx context.Context, target string) error
	Seed(ctx context.Context) error
}

type resetService struct {
	students   repository.StudentRepository
	teachers   repository.TeacherRepository
	articles   repository.ArticleRepository
	gallery    repository.GalleryRepository
	leadership repository.LeadershipRepository
	settings   repository.SettingRepository
	contacts   repository.ContactRepository
	search     ArticleSearchIndex
	seeder     Seeder
}

// Seeder inserts the fixed demo dataset.
type Seeder interface {
	SeedDemoData(ctx context.Context) error
}

func NewResetService(
	students repository.StudentRepository,
	teachers repository.TeacherRepository,
	articles repository.ArticleRepository,
	gallery repository.GalleryRepository,
	leadership repository.LeadershipRepository,
	settings repository.SettingRepository,
	contacts repository.ContactRepository,
	search ArticleSearchIndex,
	seeder Seeder,
) ResetService {
	return &resetService{
		students:   students,
		teachers:   teachers,
		articles:   articles,
		gallery:    gallery,
		leadership: leadership,
		settings:   settings,
		contacts:   contacts,
		search:     search,
		seeder:     seeder,
	}
}

func (s *resetService) Reset(ctx context.Context, target string) error {
	switch target {
	case "students":
		// Articles reference students, so they go first.
		if err := s.articles.DeleteAll(ctx); err != nil {
			return err
		}
		if err := s.students.DeleteAll(ctx); err != nil {
			return err
		}
		s.clearSearchIndex()
		return nil
	case "teachers":
		return s.teachers.DeleteAll(ctx)
	case "articles":
		if err := s.articles.DeleteAll(ctx); err != nil {
			return err
		}
		s.clearSearchIndex()
		return nil
	case "gallery":
		return s.gallery.DeleteAll(ctx)
	case "leadership":
		return s.leadership.DeleteAll(ctx)
	case "settings":
		return s.settings.DeleteAll(ctx)
	case "contact":
		return s.contacts.DeleteAll(ctx)
	case "all":
		for _, fn := range []func(context.Context) error{
			s.articles.DeleteAll,
			s.students.DeleteAll,
			s.teachers.DeleteAll,
			s.gallery.DeleteAll,
			s.leadership.DeleteAll,
			s.settings.DeleteAll,
			s.contacts.DeleteAll,
		} {
			if err := fn(ctx); err != nil {
				return err
			}
		}
		s.clearSearchIndex()
		return nil
	default:
		return apperror.Precondition("unknown reset target: " + target)
	}
}

func (s *resetService) clearSearchIndex() {
	if s.search == nil {
		return
	}
	if err := s.search.RemoveAllArticles(); err != nil {
		log.Warn().Err(err).Msg("failed to clear article search index")
	}
}

func (s *resetService) Seed(ctx context.Context) error {
	return s.seeder.SeedDemoData(ctx)
}
