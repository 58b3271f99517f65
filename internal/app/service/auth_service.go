package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"badgecv_api/internal/common"
	"badgecv_api/internal/common/security"
	"badgecv_api/internal/domain/model"
	"badgecv_api/internal/domain/repository"
)

type AuthService struct {
	userRepo   repository.UserRepository
	jwt        *security.JWT
	bcryptCost int
}

func NewAuthService(userRepo repository.UserRepository, jwt *security.JWT, bcryptCost int) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt, bcryptCost: bcryptCost}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User        *model.User `json:"user"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, common.Errorf("missing required fields for registration: %w", common.ErrBadRequest)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, common.Errorf("invalid email address: %w", common.ErrBadRequest)
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, common.ErrDuplicateEmail
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		Name:           req.Name,
		HashedPassword: hashedPassword,
		Plan:           model.DefaultPlan,
		CreatedAt:      time.Now().UTC(),
		Industry:       req.Industry,
		TargetRoles:    []string{},
	}

	// The unique email index backstops the pre-check above, so a
	// concurrent duplicate still comes back as ErrDuplicateEmail.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.Email, s.jwt.AccessValidity())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.HashedPassword = "" // Clear hash before returning
	return &AuthResponse{User: user, AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("missing credentials: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same error as a wrong password; do not reveal which check failed.
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.Email, s.jwt.AccessValidity())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.HashedPassword = ""
	return &AuthResponse{User: user, AccessToken: token, TokenType: "bearer"}, nil
}

// Profile returns the stored user behind a verified token's subject.
func (s *AuthService) Profile(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}
