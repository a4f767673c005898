package service

import (
	"context"
	"errors"
	"time"

	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/repository"
	"anoa.com/classsite/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	secret    string
}

func NewAuthService(adminRepo repository.AdminRepository, secret string) AuthService {
	return &authService{adminRepo: adminRepo, secret: secret}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperror.AppError{Message: "invalid email or password", Err: apperror.ErrUnauthorized}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &apperror.AppError{Message: "invalid email or password", Err: apperror.ErrUnauthorized}
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   admin.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Name:  admin.Name,
		Email: admin.Email,
	}, nil
}
