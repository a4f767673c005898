package bootstrap

import (
	"context"
	"os"

	"anoa.com/classsite/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Student{},
		&model.Teacher{},
		&model.Article{},
		&model.GalleryItem{},
		&model.LeadershipMember{},
		&model.Setting{},
		&model.ContactMessage{},
		&model.AdminUser{},
	)
}

// SeedAdminUser ensures at least one admin exists so the gated routes are
// reachable. Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD with
// development defaults.
func SeedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@classsite.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := db.Model(&model.AdminUser{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.AdminUser{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("admin user seeded")
	return nil
}

// DemoSeeder inserts the fixed demo dataset behind POST /api/reset/seed.
type DemoSeeder struct {
	db *gorm.DB
}

func NewDemoSeeder(db *gorm.DB) *DemoSeeder {
	return &DemoSeeder{db: db}
}

func (s *DemoSeeder) SeedDemoData(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	students := []model.Student{
		{Name: "Aisyah Putri", Role: "Class President", Gender: strPtr("female"), Bio: strPtr("Leads the class and organizes events.")},
		{Name: "Budi Santoso", Role: "Secretary", Gender: strPtr("male"), Bio: strPtr("Keeps the minutes and the class archive.")},
		{Name: "Citra Lestari", Role: "Treasurer", Gender: strPtr("female")},
	}
	for i := range students {
		if err := db.Create(&students[i]).Error; err != nil {
			return err
		}
	}

	teachers := []model.Teacher{
		{Name: "Pak Hartono", Role: "Homeroom Teacher", Subject: strPtr("Mathematics")},
		{Name: "Bu Ratna", Role: "Counselor", Subject: strPtr("English")},
	}
	for i := range teachers {
		if err := db.Create(&teachers[i]).Error; err != nil {
			return err
		}
	}

	articles := []model.Article{
		{Title: "Welcome to our class website", Content: "This site collects everything our class does through the year.", AuthorID: students[0].ID},
		{Title: "Recap of the study tour", Content: "Last week the whole class visited the national museum together.", AuthorID: students[1].ID},
	}
	for i := range articles {
		if err := db.Create(&articles[i]).Error; err != nil {
			return err
		}
	}

	gallery := []model.GalleryItem{
		{ImageURL: "https://placehold.co/800x600?text=Class+Photo", Caption: strPtr("Class photo day"), Order: 0, Type: strPtr("photo")},
		{ImageURL: "https://placehold.co/800x600?text=Sports", Caption: strPtr("Sports week"), Order: 1, Category: strPtr("events"), Type: strPtr("photo")},
		{ImageURL: "https://placehold.co/800x600?text=Trip", Caption: strPtr("Study tour"), Order: 2, Category: strPtr("events"), Type: strPtr("photo")},
	}
	for i := range gallery {
		if err := db.Create(&gallery[i]).Error; err != nil {
			return err
		}
	}

	leadership := []model.LeadershipMember{
		{Name: "Aisyah Putri", Position: "Class President", Order: 0},
		{Name: "Budi Santoso", Position: "Secretary", Order: 1},
		{Name: "Citra Lestari", Position: "Treasurer", Order: 2},
	}
	for i := range leadership {
		if err := db.Create(&leadership[i]).Error; err != nil {
			return err
		}
	}

	settings := map[string]string{
		"home.title":       "Class XI-A",
		"home.subtitle":    "One class, one family",
		"contact.email":    "xia@school.example",
		"leadership.title": "Our class officers",
	}
	for key, value := range settings {
		setting := model.Setting{Key: key, Value: value}
		if err := db.Where(model.Setting{Key: key}).
			Assign(model.Setting{Value: value}).
			FirstOrCreate(&setting).Error; err != nil {
			return err
		}
	}

	log.Info().Msg("demo data seeded")
	return nil
}

func strPtr(s string) *string {
	return &s
}
