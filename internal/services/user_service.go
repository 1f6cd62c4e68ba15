package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skillshare-platform/backend/internal/auth"
	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/repositories"
	"github.com/skillshare-platform/backend/pkg/media"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserProfile is a user together with the two ends of their follow relation.
type UserProfile struct {
	models.User
	Followers []uint `json:"followers"`
	Following []uint `json:"following"`
}

// UserService manages accounts and profiles.
type UserService interface {
	Register(name, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	Session(p auth.Principal) (*models.User, error)
	EnsureProviderAccount(email, name, provider string) (*models.User, error)
	GetProfile(id uint) (*UserProfile, error)
	UpdateProfile(userID uint, callerEmail string, req models.UpdateProfileRequest, photo []byte, photoName string) (*models.User, error)
}

type userService struct {
	users   repositories.UserRepository
	follows repositories.FollowRepository
	hasher  PasswordHasher
	uploads *media.Store
	log     *zap.SugaredLogger
}

func NewUserService(
	users repositories.UserRepository,
	follows repositories.FollowRepository,
	hasher PasswordHasher,
	uploads *media.Store,
	log *zap.SugaredLogger,
) UserService {
	return &userService{users: users, follows: follows, hasher: hasher, uploads: uploads, log: log}
}

func (s *userService) Register(name, email, password string) (*models.User, error) {
	if _, err := s.users.GetUserByEmail(email); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing account: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Provider: models.ProviderLocal,
		Active:   true,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	s.log.Infow("account registered", "user_id", user.ID)
	return user, nil
}

// Authenticate verifies a password login. Unknown email and wrong password
// fail identically so the response does not reveal which one it was.
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	if user.Password == "" || !s.hasher.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Session resolves a principal of either login mechanism to its account.
func (s *userService) Session(p auth.Principal) (*models.User, error) {
	email, err := auth.ResolveEmail(p)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no account for %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	return user, nil
}

// EnsureProviderAccount returns the account for a third-party identity,
// creating it on first login. Provider accounts carry no password credential.
func (s *userService) EnsureProviderAccount(email, name, provider string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load account: %w", err)
	}

	user = &models.User{
		Name:     name,
		Email:    email,
		Provider: provider,
		Active:   true,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, fmt.Errorf("create provider account: %w", err)
	}
	s.log.Infow("provider account created", "user_id", user.ID, "provider", provider)
	return user, nil
}

func (s *userService) GetProfile(id uint) (*UserProfile, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return nil, userLookupError(id, err)
	}
	followerIDs, err := s.follows.GetFollowerIDs(id)
	if err != nil {
		return nil, fmt.Errorf("load followers: %w", err)
	}
	followingIDs, err := s.follows.GetFollowingIDs(id)
	if err != nil {
		return nil, fmt.Errorf("load following: %w", err)
	}
	return &UserProfile{User: *user, Followers: followerIDs, Following: followingIDs}, nil
}

// UpdateProfile applies a profile patch. Only the account's owner may edit
// it; the guard runs before anything is changed.
func (s *userService) UpdateProfile(userID uint, callerEmail string, req models.UpdateProfileRequest, photo []byte, photoName string) (*models.User, error) {
	caller, err := s.users.GetUserByEmail(callerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no account for %s", ErrNotFound, callerEmail)
		}
		return nil, fmt.Errorf("resolve caller: %w", err)
	}
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, userLookupError(userID, err)
	}
	if err := AssertOwner(user.ID, caller.ID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) != "" {
		user.Name = req.Name
	}
	if strings.TrimSpace(req.Email) != "" {
		user.Email = req.Email
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if len(photo) > 0 {
		url, err := s.uploads.Save(photoName, photo)
		if err != nil {
			return nil, fmt.Errorf("store profile photo: %w", err)
		}
		user.ProfilePhotoURL = url
	}

	if err := s.users.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return user, nil
}
