package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/handler"
	"anoa.com/classsite/internal/middleware"
	"anoa.com/classsite/internal/mocks"
	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/service"
	"anoa.com/classsite/pkg/response"
	validation "anoa.com/classsite/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret"
	testEmail    = "admin@classsite.local"
	testPassword = "admin123"
)

type stubSeeder struct {
	called bool
}

func (s *stubSeeder) SeedDemoData(ctx context.Context) error {
	s.called = true
	return nil
}

// stubSearchIndex records index mutations; Search always fails so the article
// endpoints exercise the store-side fallback.
type stubSearchIndex struct {
	mu      sync.Mutex
	removed []string
	cleared bool
}

func (s *stubSearchIndex) IndexArticle(article *model.Article) error {
	return nil
}

func (s *stubSearchIndex) RemoveArticle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, id)
	return nil
}

func (s *stubSearchIndex) RemoveAllArticles() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared = true
	return nil
}

func (s *stubSearchIndex) Search(query string, limit int) ([]uuid.UUID, error) {
	return nil, errors.New("index offline")
}

type testEnv struct {
	router   *gin.Engine
	token    string
	students *mocks.MockStudentRepository
	teachers *mocks.MockTeacherRepository
	articles *mocks.MockArticleRepository
	gallery  *mocks.MockGalleryRepository
	leaders  *mocks.MockLeadershipRepository
	settings *mocks.MockSettingRepository
	contacts *mocks.MockContactRepository
	search   *stubSearchIndex
	seeder   *stubSeeder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Register()

	env := &testEnv{
		students: mocks.NewMockStudentRepository(),
		teachers: mocks.NewMockTeacherRepository(),
		articles: mocks.NewMockArticleRepository(),
		gallery:  mocks.NewMockGalleryRepository(),
		leaders:  mocks.NewMockLeadershipRepository(),
		settings: mocks.NewMockSettingRepository(),
		contacts: mocks.NewMockContactRepository(),
		search:   &stubSearchIndex{},
		seeder:   &stubSeeder{},
	}

	adminRepo := mocks.NewMockAdminRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, adminRepo.Create(context.Background(), &model.AdminUser{
		Name:         "Admin",
		Email:        testEmail,
		PasswordHash: string(hash),
	}))

	authService := service.NewAuthService(adminRepo, testSecret)
	login, err := authService.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	env.token = login.Token

	studentHandler := handler.NewStudentHandler(service.NewStudentService(env.students, env.articles, env.search))
	teacherHandler := handler.NewTeacherHandler(service.NewTeacherService(env.teachers))
	articleHandler := handler.NewArticleHandler(service.NewArticleService(env.articles, env.students, env.search))
	galleryHandler := handler.NewGalleryHandler(service.NewGalleryService(env.gallery))
	leadershipHandler := handler.NewLeadershipHandler(service.NewLeadershipService(env.leaders))
	settingsHandler := handler.NewSettingsHandler(service.NewSettingsService(env.settings, nil))
	contactHandler := handler.NewContactHandler(service.NewContactService(env.contacts, nil))
	authHandler := handler.NewAuthHandler(authService)
	resetHandler := handler.NewResetHandler(service.NewResetService(
		env.students, env.teachers, env.articles, env.gallery,
		env.leaders, env.settings, env.contacts, env.search, env.seeder,
	))

	router := gin.New()
	router.GET("/health", handler.Health)

	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.GET("/students", studentHandler.List)
	api.GET("/students/:id", studentHandler.Get)
	api.GET("/teachers", teacherHandler.List)
	api.GET("/teachers/:id", teacherHandler.Get)
	api.GET("/articles", articleHandler.List)
	api.GET("/articles/search", articleHandler.Search)
	api.GET("/articles/:id", articleHandler.Get)
	api.GET("/gallery", galleryHandler.List)
	api.GET("/gallery/:id", galleryHandler.Get)
	api.GET("/leadership", leadershipHandler.List)
	api.GET("/leadership/:id", leadershipHandler.Get)
	api.GET("/settings/:page", settingsHandler.GetPage)
	api.POST("/contact", contactHandler.Create)

	authMiddleware := middleware.NewAuthMiddleware(adminRepo, testSecret)
	admin := api.Group("")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.POST("/students", studentHandler.Create)
		admin.PUT("/students/:id", studentHandler.Update)
		admin.DELETE("/students/:id", studentHandler.Delete)
		admin.POST("/teachers", teacherHandler.Create)
		admin.PUT("/teachers/:id", teacherHandler.Update)
		admin.DELETE("/teachers/:id", teacherHandler.Delete)
		admin.POST("/articles", articleHandler.Create)
		admin.PUT("/articles/:id", articleHandler.Update)
		admin.DELETE("/articles/:id", articleHandler.Delete)
		admin.POST("/gallery", galleryHandler.Create)
		admin.PUT("/gallery/reorder", galleryHandler.Reorder)
		admin.PUT("/gallery/:id", galleryHandler.Update)
		admin.DELETE("/gallery/:id", galleryHandler.Delete)
		admin.POST("/leadership", leadershipHandler.Create)
		admin.PUT("/leadership/reorder", leadershipHandler.Reorder)
		admin.PUT("/leadership/:id", leadershipHandler.Update)
		admin.DELETE("/leadership/:id", leadershipHandler.Delete)
		admin.PUT("/settings/:page", settingsHandler.PutPage)
		admin.GET("/contact", contactHandler.List)
		admin.DELETE("/contact/:id", contactHandler.Delete)
		admin.DELETE("/reset/:target", resetHandler.Reset)
		admin.POST("/reset/seed", resetHandler.Seed)
	}

	env.router = router
	return env
}

type envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Error      string                `json:"error"`
	Details    []response.FieldError `json:"details"`
	Data       json.RawMessage       `json:"data"`
	Pagination *response.Pagination  `json:"pagination"`
}

func (e *testEnv) request(t *testing.T, method, path string, body any, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func (e *testEnv) createStudent(t *testing.T, name string) model.Student {
	t.Helper()
	w, env := e.request(t, http.MethodPost, "/api/students", gin.H{
		"name": name,
		"role": "member",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var student model.Student
	require.NoError(t, json.Unmarshal(env.Data, &student))
	return student
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w, _ := env.request(t, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "timestamp")
}

func TestListStudentsEmpty(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodGet, "/api/students", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "[]", string(body.Data))
	require.NotNil(t, body.Pagination)
	assert.Equal(t, int64(0), body.Pagination.Total)
	assert.Equal(t, 0, body.Pagination.TotalPages)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 10, body.Pagination.Limit)
}

func TestStudentLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodPost, "/api/students", gin.H{
		"name":     "Siti Rahma",
		"role":     "class president",
		"nickname": "Siti",
		"gender":   "female",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Student created successfully", body.Message)

	var created model.Student
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.NotNil(t, created.Nickname)
	assert.Equal(t, "Siti", *created.Nickname)

	w, body = env.request(t, http.MethodGet, "/api/students/"+created.ID.String(), nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	// Omitted fields stay, an explicit empty string clears.
	w, body = env.request(t, http.MethodPut, "/api/students/"+created.ID.String(), gin.H{
		"role":     "secretary",
		"nickname": "",
	}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Student
	require.NoError(t, json.Unmarshal(body.Data, &updated))
	assert.Equal(t, "Siti Rahma", updated.Name)
	assert.Equal(t, "secretary", updated.Role)
	assert.Nil(t, updated.Nickname)

	w, body = env.request(t, http.MethodDelete, "/api/students/"+created.ID.String(), nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Student deleted successfully", body.Message)

	w, body = env.request(t, http.MethodGet, "/api/students/"+created.ID.String(), nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Student not found", body.Error)
}

func TestCreateStudentValidation(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodPost, "/api/students", gin.H{
		"role":   "member",
		"gender": "other",
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Error)

	fields := make(map[string]bool)
	for _, d := range body.Details {
		fields[d.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["gender"])
	assert.Empty(t, env.students.Students)
}

func TestStudentCategoryFilter(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.request(t, http.MethodPost, "/api/students", gin.H{
		"name":       "Budi Santoso",
		"role":       "member",
		"categories": []string{"sports", "music"},
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	env.createStudent(t, "Andi Wijaya")

	w, body := env.request(t, http.MethodGet, "/api/students?category=sports", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var students []model.Student
	require.NoError(t, json.Unmarshal(body.Data, &students))
	require.Len(t, students, 1)
	assert.Equal(t, "Budi Santoso", students[0].Name)
	assert.Equal(t, int64(1), body.Pagination.Total)
}

func TestDeleteStudentCascadesArticles(t *testing.T) {
	env := newTestEnv(t)
	author := env.createStudent(t, "Author Satu")

	env.students.OnDeleteArticles = func(studentID uuid.UUID) {
		for id, a := range env.articles.Articles {
			if a.AuthorID == studentID {
				delete(env.articles.Articles, id)
			}
		}
	}

	w, body := env.request(t, http.MethodPost, "/api/articles", gin.H{
		"title":    "Class Picnic Recap",
		"content":  "A long story about the class picnic and everything that happened.",
		"authorId": author.ID.String(),
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var article model.Article
	require.NoError(t, json.Unmarshal(body.Data, &article))

	w, _ = env.request(t, http.MethodDelete, "/api/students/"+author.ID.String(), nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = env.request(t, http.MethodGet, "/api/articles/"+article.ID.String(), nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Cascaded articles also leave the search index.
	assert.Contains(t, env.search.removed, article.ID.String())
}

func TestCreateArticleUnknownAuthor(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodPost, "/api/articles", gin.H{
		"title":    "Orphaned Article",
		"content":  "Content long enough to pass validation rules.",
		"authorId": uuid.New().String(),
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Author not found", body.Error)
	assert.Empty(t, env.articles.Articles)
}

func TestArticlePagination(t *testing.T) {
	env := newTestEnv(t)
	author := env.createStudent(t, "Penulis Kelas")

	for _, title := range []string{"First Article Title", "Second Article Title"} {
		w, _ := env.request(t, http.MethodPost, "/api/articles", gin.H{
			"title":    title,
			"content":  "Body text that comfortably clears the minimum length.",
			"authorId": author.ID.String(),
		}, true)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, body := env.request(t, http.MethodGet, "/api/articles?page=2&limit=1", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var articles []model.Article
	require.NoError(t, json.Unmarshal(body.Data, &articles))
	require.Len(t, articles, 1)
	// Newest first, so page 2 holds the first one created.
	assert.Equal(t, "First Article Title", articles[0].Title)

	require.NotNil(t, body.Pagination)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 1, body.Pagination.Limit)
	assert.Equal(t, int64(2), body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.TotalPages)
}

func TestArticleSearchFallback(t *testing.T) {
	env := newTestEnv(t)
	author := env.createStudent(t, "Penulis Dua")

	w, _ := env.request(t, http.MethodPost, "/api/articles", gin.H{
		"title":    "Science Fair Winners",
		"content":  "Our class swept the district science fair this year.",
		"authorId": author.ID.String(),
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := env.request(t, http.MethodGet, "/api/articles/search?q=science", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var hits []model.Article
	require.NoError(t, json.Unmarshal(body.Data, &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, "Science Fair Winners", hits[0].Title)

	w, body = env.request(t, http.MethodGet, "/api/articles/search", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", body.Error)
}

func TestCreateGalleryItemValidation(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodPost, "/api/gallery", gin.H{
		"imageUrl": "not-a-url",
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", body.Error)
	require.Len(t, body.Details, 1)
	// The field name must match the JSON key the client sent.
	assert.Equal(t, "imageUrl", body.Details[0].Field)
	assert.Empty(t, env.gallery.Items)
}

func TestGalleryReorder(t *testing.T) {
	env := newTestEnv(t)

	ids := make([]uuid.UUID, 0, 3)
	for _, caption := range []string{"a", "b", "c"} {
		w, body := env.request(t, http.MethodPost, "/api/gallery", gin.H{
			"imageUrl": "https://cdn.example.com/" + caption + ".jpg",
			"caption":  caption,
		}, true)
		require.Equal(t, http.StatusCreated, w.Code)

		var item model.GalleryItem
		require.NoError(t, json.Unmarshal(body.Data, &item))
		ids = append(ids, item.ID)
	}

	w, body := env.request(t, http.MethodPut, "/api/gallery/reorder", gin.H{
		"items": []gin.H{
			{"id": ids[2].String()},
			{"id": ids[0].String()},
			{"id": ids[1].String()},
		},
	}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)

	w, body = env.request(t, http.MethodGet, "/api/gallery?sortBy=order&sortOrder=asc", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.GalleryItem
	require.NoError(t, json.Unmarshal(body.Data, &items))
	require.Len(t, items, 3)
	assert.Equal(t, ids[2], items[0].ID)
	assert.Equal(t, ids[0], items[1].ID)
	assert.Equal(t, ids[1], items[2].ID)
	assert.Equal(t, 0, items[0].Order)
	assert.Equal(t, 2, items[2].Order)
}

func TestReorderRejectsEmptyList(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodPut, "/api/leadership/reorder", gin.H{
		"items": []gin.H{},
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", body.Error)
}

func TestSettingsRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodPut, "/api/settings/home", gin.H{
		"title":        "Kelas 9A",
		"announcement": 5,
	}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)

	w, body = env.request(t, http.MethodGet, "/api/settings/home", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var values map[string]string
	require.NoError(t, json.Unmarshal(body.Data, &values))
	assert.Equal(t, "Kelas 9A", values["title"])
	assert.Equal(t, "5", values["announcement"])
	_, present := values["subtitle"]
	assert.False(t, present, "keys never written stay absent")

	assert.Equal(t, "Kelas 9A", env.settings.Settings["home.title"])
}

func TestSettingsUnknownPage(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodGet, "/api/settings/footer", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Settings page not found", body.Error)

	w, body = env.request(t, http.MethodPut, "/api/settings/footer", gin.H{"title": "x"}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Settings page not found", body.Error)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    testEmail,
		"password": "wrong",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid email or password", body.Error)

	w, body = env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    testEmail,
		"password": testPassword,
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(body.Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, testEmail, login.Email)
}

func TestWritesRequireAdmin(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodPost, "/api/students", gin.H{
		"name": "No Token",
		"role": "member",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, body.Success)
	assert.Empty(t, env.students.Students)
}

func TestContactFlow(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.request(t, http.MethodPost, "/api/contact", gin.H{
		"name":    "Orang Tua",
		"email":   "parent@example.com",
		"message": "When does the next semester start?",
	}, false)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = env.request(t, http.MethodGet, "/api/contact", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := env.request(t, http.MethodGet, "/api/contact", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []model.ContactMessage
	require.NoError(t, json.Unmarshal(body.Data, &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Orang Tua", messages[0].Name)
}

func TestResetAndSeed(t *testing.T) {
	env := newTestEnv(t)
	env.createStudent(t, "To Be Wiped")

	w, body := env.request(t, http.MethodDelete, "/api/reset/students", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Empty(t, env.students.Students)
	assert.True(t, env.search.cleared, "wiping articles clears the search index")

	w, body = env.request(t, http.MethodDelete, "/api/reset/everything", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)

	w, _ = env.request(t, http.MethodPost, "/api/reset/seed", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.seeder.called)
}

func TestInvalidIDFormat(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodGet, "/api/teachers/not-a-uuid", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
}
