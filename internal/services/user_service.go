package services

import (
	"errors"

	"github.com/ribbitly/backend/internal/apperrors"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/repositories"
	"github.com/ribbitly/backend/pkg/security"
	"gorm.io/gorm"
)

// UserService implements account registration and deletion.
type UserService struct {
	userRepo repositories.UserRepository
	hasher   security.PasswordHasher
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, hasher security.PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher}
}

// Register creates a user with a hashed password. Email and username
// uniqueness is checked case-insensitively before the insert; the unique
// indexes catch the remaining race.
func (s *UserService) Register(req models.CreateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, apperrors.Validation("email is already taken")
	}
	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, apperrors.Validation("username is already taken")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the user.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("no user with that email")
		}
		return nil, err
	}

	if err := s.hasher.Verify(password, user.PasswordHash); err != nil {
		return nil, apperrors.Authorization("invalid password")
	}
	return user, nil
}

// DeleteAccount removes the requesting user and all dependent data. Deleting
// someone else's account is an AuthorizationError.
func (s *UserService) DeleteAccount(userID, requesterID uint) error {
	if userID != requesterID {
		return apperrors.Authorization("cannot delete another user's account")
	}

	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return err
	}

	return s.userRepo.DeleteUser(userID)
}
