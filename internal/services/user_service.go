package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/httperr"
	"jobboard/internal/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates an account with one of the two roles. The role is fixed
// at registration; no operation changes it afterwards.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	role := models.Role(req.Role)
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", req.Role)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}
	err = s.DB.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("username taken: %w", httperr.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and returns the account. Callers turn
// the result into a token pair; this service never touches tokens.
func (s *UserService) Authenticate(req *dtos.LoginRequest) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", req.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, httperr.ErrUnauthenticated
	}
	return &user, nil
}

// Get returns the account for an authenticated identity.
func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
