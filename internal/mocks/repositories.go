// Package mocks provides in-memory repository implementations for tests.
package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// clock hands out strictly increasing timestamps so created-at ordering is
// deterministic in tests.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// --- Students ---

type MockStudentRepository struct {
	mu       sync.Mutex
	Students map[uuid.UUID]*model.Student
	clock    *clock
	// OnDeleteArticles lets tests observe the article cascade.
	OnDeleteArticles func(studentID uuid.UUID)
}

func NewMockStudentRepository() *MockStudentRepository {
	return &MockStudentRepository{Students: make(map[uuid.UUID]*model.Student), clock: newClock()}
}

func (m *MockStudentRepository) Create(ctx context.Context, student *model.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if student.ID == uuid.Nil {
		student.ID, _ = uuid.NewV7()
	}
	student.CreatedAt = m.clock.next()
	student.UpdatedAt = student.CreatedAt
	clone := *student
	m.Students[student.ID] = &clone
	return nil
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	student, ok := m.Students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *student
	return &clone, nil
}

func (m *MockStudentRepository) FindAll(ctx context.Context, params repository.ListParams) ([]*model.Student, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var all []*model.Student
	for _, s := range m.Students {
		if params.Category != "" && !containsString(s.Categories, params.Category) {
			continue
		}
		clone := *s
		all = append(all, &clone)
	}
	sortByCreatedAt(all, params.SortOrder, func(s *model.Student) time.Time { return s.CreatedAt })
	total := int64(len(all))
	return paginate(all, params.Offset, params.Limit), total, nil
}

func (m *MockStudentRepository) Update(ctx context.Context, student *model.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	student.UpdatedAt = m.clock.next()
	clone := *student
	m.Students[student.ID] = &clone
	return nil
}

func (m *MockStudentRepository) DeleteWithArticles(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Students, id)
	if m.OnDeleteArticles != nil {
		m.OnDeleteArticles(id)
	}
	return nil
}

func (m *MockStudentRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Students = make(map[uuid.UUID]*model.Student)
	return nil
}

// --- Teachers ---

type MockTeacherRepository struct {
	mu       sync.Mutex
	Teachers map[uuid.UUID]*model.Teacher
	clock    *clock
}

func NewMockTeacherRepository() *MockTeacherRepository {
	return &MockTeacherRepository{Teachers: make(map[uuid.UUID]*model.Teacher), clock: newClock()}
}

func (m *MockTeacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if teacher.ID == uuid.Nil {
		teacher.ID, _ = uuid.NewV7()
	}
	teacher.CreatedAt = m.clock.next()
	teacher.UpdatedAt = teacher.CreatedAt
	clone := *teacher
	m.Teachers[teacher.ID] = &clone
	return nil
}

func (m *MockTeacherRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	teacher, ok := m.Teachers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *teacher
	return &clone, nil
}

func (m *MockTeacherRepository) FindAll(ctx context.Context, params repository.ListParams) ([]*model.Teacher, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*model.Teacher
	for _, t := range m.Teachers {
		clone := *t
		all = append(all, &clone)
	}
	sortByCreatedAt(all, params.SortOrder, func(t *model.Teacher) time.Time { return t.CreatedAt })
	total := int64(len(all))
	return paginate(all, params.Offset, params.Limit), total, nil
}

func (m *MockTeacherRepository) Update(ctx context.Context, teacher *model.Teacher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Teachers[teacher.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *teacher
	m.Teachers[teacher.ID] = &clone
	return nil
}

func (m *MockTeacherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Teachers, id)
	return nil
}

func (m *MockTeacherRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Teachers = make(map[uuid.UUID]*model.Teacher)
	return nil
}

// --- Articles ---

type MockArticleRepository struct {
	mu       sync.Mutex
	Articles map[uuid.UUID]*model.Article
	clock    *clock
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make(map[uuid.UUID]*model.Article), clock: newClock()}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *model.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if article.ID == uuid.Nil {
		article.ID, _ = uuid.NewV7()
	}
	article.CreatedAt = m.clock.next()
	article.UpdatedAt = article.CreatedAt
	clone := *article
	m.Articles[article.ID] = &clone
	return nil
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	article, ok := m.Articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *article
	return &clone, nil
}

func (m *MockArticleRepository) FindAll(ctx context.Context, params repository.ListParams) ([]*model.Article, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*model.Article
	for _, a := range m.Articles {
		clone := *a
		all = append(all, &clone)
	}
	sortByCreatedAt(all, params.SortOrder, func(a *model.Article) time.Time { return a.CreatedAt })
	total := int64(len(all))
	return paginate(all, params.Offset, params.Limit), total, nil
}

func (m *MockArticleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*model.Article
	for _, id := range ids {
		if a, ok := m.Articles[id]; ok {
			clone := *a
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (m *MockArticleRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*model.Article
	for _, a := range m.Articles {
		if a.AuthorID == authorID {
			clone := *a
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (m *MockArticleRepository) SearchContent(ctx context.Context, query string, limit int) ([]*model.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*model.Article
	lowered := strings.ToLower(query)
	for _, a := range m.Articles {
		if strings.Contains(strings.ToLower(a.Title), lowered) || strings.Contains(strings.ToLower(a.Content), lowered) {
			clone := *a
			result = append(result, &clone)
		}
	}
	sortByCreatedAt(result, "desc", func(a *model.Article) time.Time { return a.CreatedAt })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *model.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	article.UpdatedAt = m.clock.next()
	clone := *article
	m.Articles[article.ID] = &clone
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Articles = make(map[uuid.UUID]*model.Article)
	return nil
}

// --- Gallery ---

type MockGalleryRepository struct {
	mu    sync.Mutex
	Items map[uuid.UUID]*model.GalleryItem
	clock *clock
}

func NewMockGalleryRepository() *MockGalleryRepository {
	return &MockGalleryRepository{Items: make(map[uuid.UUID]*model.GalleryItem), clock: newClock()}
}

func (m *MockGalleryRepository) Create(ctx context.Context, item *model.GalleryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID, _ = uuid.NewV7()
	}
	item.CreatedAt = m.clock.next()
	item.UpdatedAt = item.CreatedAt
	clone := *item
	m.Items[item.ID] = &clone
	return nil
}

func (m *MockGalleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.Items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *item
	return &clone, nil
}

func (m *MockGalleryRepository) FindAll(ctx context.Context, params repository.ListParams) ([]*model.GalleryItem, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*model.GalleryItem
	for _, item := range m.Items {
		if params.Category != "" && (item.Category == nil || *item.Category != params.Category) {
			continue
		}
		if params.Type != "" && (item.Type == nil || *item.Type != params.Type) {
			continue
		}
		clone := *item
		all = append(all, &clone)
	}

	if params.SortBy == "display_order" {
		sort.Slice(all, func(i, j int) bool {
			if params.SortOrder == "desc" {
				return all[i].Order > all[j].Order
			}
			return all[i].Order < all[j].Order
		})
	} else {
		sortByCreatedAt(all, params.SortOrder, func(g *model.GalleryItem) time.Time { return g.CreatedAt })
	}

	total := int64(len(all))
	return paginate(all, params.Offset, params.Limit), total, nil
}

func (m *MockGalleryRepository) Update(ctx context.Context, item *model.GalleryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *item
	m.Items[item.ID] = &clone
	return nil
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Items, id)
	return nil
}

func (m *MockGalleryRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range ids {
		if item, ok := m.Items[id]; ok {
			item.Order = i
		}
	}
	return nil
}

func (m *MockGalleryRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Items = make(map[uuid.UUID]*model.GalleryItem)
	return nil
}

// --- Leadership ---

type MockLeadershipRepository struct {
	mu      sync.Mutex
	Members map[uuid.UUID]*model.LeadershipMember
	clock   *clock
}

func NewMockLeadershipRepository() *MockLeadershipRepository {
	return &MockLeadershipRepository{Members: make(map[uuid.UUID]*model.LeadershipMember), clock: newClock()}
}

func (m *MockLeadershipRepository) Create(ctx context.Context, member *model.LeadershipMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if member.ID == uuid.Nil {
		member.ID, _ = uuid.NewV7()
	}
	member.CreatedAt = m.clock.next()
	member.UpdatedAt = member.CreatedAt
	clone := *member
	m.Members[member.ID] = &clone
	return nil
}

func (m *MockLeadershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LeadershipMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	member, ok := m.Members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *member
	return &clone, nil
}

func (m *MockLeadershipRepository) FindAll(ctx context.Context, params repository.ListParams) ([]*model.LeadershipMember, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*model.LeadershipMember
	for _, member := range m.Members {
		clone := *member
		all = append(all, &clone)
	}

	if params.SortBy == "display_order" {
		sort.Slice(all, func(i, j int) bool {
			if params.SortOrder == "desc" {
				return all[i].Order > all[j].Order
			}
			return all[i].Order < all[j].Order
		})
	} else {
		sortByCreatedAt(all, params.SortOrder, func(l *model.LeadershipMember) time.Time { return l.CreatedAt })
	}

	total := int64(len(all))
	return paginate(all, params.Offset, params.Limit), total, nil
}

func (m *MockLeadershipRepository) Update(ctx context.Context, member *model.LeadershipMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Members[member.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *member
	m.Members[member.ID] = &clone
	return nil
}

func (m *MockLeadershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Members, id)
	return nil
}

func (m *MockLeadershipRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range ids {
		if member, ok := m.Members[id]; ok {
			member.Order = i
		}
	}
	return nil
}

func (m *MockLeadershipRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Members = make(map[uuid.UUID]*model.LeadershipMember)
	return nil
}

// --- Settings ---

type MockSettingRepository struct {
	mu       sync.Mutex
	Settings map[string]string
	// FailOnKey makes Upsert fail for one key, for partial-write tests.
	FailOnKey string
}

func NewMockSettingRepository() *MockSettingRepository {
	return &MockSettingRepository{Settings: make(map[string]string)}
}

func (m *MockSettingRepository) FindByKeys(ctx context.Context, keys []string) ([]model.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Setting
	for _, key := range keys {
		if value, ok := m.Settings[key]; ok {
			result = append(result, model.Setting{Key: key, Value: value})
		}
	}
	return result, nil
}

func (m *MockSettingRepository) Upsert(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailOnKey != "" && key == m.FailOnKey {
		return gorm.ErrInvalidDB
	}
	m.Settings[key] = value
	return nil
}

func (m *MockSettingRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Settings = make(map[string]string)
	return nil
}

// --- Contact messages ---

type MockContactRepository struct {
	mu       sync.Mutex
	Messages map[uuid.UUID]*model.ContactMessage
	clock    *clock
}

func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{Messages: make(map[uuid.UUID]*model.ContactMessage), clock: newClock()}
}

func (m *MockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg.ID == uuid.Nil {
		msg.ID, _ = uuid.NewV7()
	}
	msg.CreatedAt = m.clock.next()
	clone := *msg
	m.Messages[msg.ID] = &clone
	return nil
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.Messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *msg
	return &clone, nil
}

func (m *MockContactRepository) FindAll(ctx context.Context, params repository.ListParams) ([]*model.ContactMessage, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*model.ContactMessage
	for _, msg := range m.Messages {
		clone := *msg
		all = append(all, &clone)
	}
	sortByCreatedAt(all, params.SortOrder, func(c *model.ContactMessage) time.Time { return c.CreatedAt })
	total := int64(len(all))
	return paginate(all, params.Offset, params.Limit), total, nil
}

func (m *MockContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Messages, id)
	return nil
}

func (m *MockContactRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = make(map[uuid.UUID]*model.ContactMessage)
	return nil
}

// --- Admins ---

type MockAdminRepository struct {
	mu     sync.Mutex
	Admins map[uuid.UUID]*model.AdminUser
}

func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{Admins: make(map[uuid.UUID]*model.AdminUser)}
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if admin.ID == uuid.Nil {
		admin.ID, _ = uuid.NewV7()
	}
	clone := *admin
	m.Admins[admin.ID] = &clone
	return nil
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	admin, ok := m.Admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *admin
	return &clone, nil
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, admin := range m.Admins {
		if admin.Email == email {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// --- helpers ---

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func sortByCreatedAt[T any](items []*T, order string, createdAt func(*T) time.Time) {
	sort.Slice(items, func(i, j int) bool {
		if order == "asc" {
			return createdAt(items[i]).Before(createdAt(items[j]))
		}
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func paginate[T any](items []*T, offset, limit int) []*T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
