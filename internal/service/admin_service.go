package service

import (
	"context"
	"errors"
	"event-voting/internal/model"
	"event-voting/internal/repository"
	apperrors "event-voting/pkg/app_errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

type AdminService interface {
	Login(ctx context.Context, username, password string) (*model.LoginResult, error)
	Profile(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	CreateAdmin(ctx context.Context, username, password string) (*model.Admin, error)
}

type AdminServiceImpl struct {
	repository repository.AdminRepository
	issuer     AdminTokenIssuer
}

func NewAdminService(adminRepository repository.AdminRepository, issuer AdminTokenIssuer) AdminService {
	return &AdminServiceImpl{
		repository: adminRepository,
		issuer:     issuer,
	}
}

// Login 帳號不存在與密碼錯誤回傳相同錯誤
func (s *AdminServiceImpl) Login(ctx context.Context, username, password string) (*model.LoginResult, error) {
	admin, err := s.repository.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidLogin
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidLogin
	}

	token, err := s.issuer.IssueAdmin(admin)
	if err != nil {
		return nil, err
	}

	return &model.LoginResult{Token: token, Admin: admin}, nil
}

func (s *AdminServiceImpl) Profile(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *AdminServiceImpl) CreateAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < MinPasswordLength {
		return nil, apperrors.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repository.Create(ctx, username, string(hash))
}
