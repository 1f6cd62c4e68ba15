package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Provider values for User.Provider.
const (
	ProviderLocal    = "local"
	ProviderFirebase = "firebase"
)

type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name"`
	Email           string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password        string    `json:"-"`                        // Store hashed password, empty for provider accounts
	Provider        string    `json:"provider" gorm:"size:30;default:'local'"`
	Bio             string    `json:"bio"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	Active          bool      `json:"active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserSummary is the projection returned by follower/following listings.
// IsFollowing is relative to the authenticated viewer and omitted when the
// request is anonymous.
type UserSummary struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
	IsFollowing     *bool  `json:"is_following,omitempty"`
}

// ToSummary projects a user to its public summary shape.
func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		Name:            u.Name,
		Bio:             u.Bio,
		ProfilePhotoURL: u.ProfilePhotoURL,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name  string  `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Email string  `json:"email,omitempty" validate:"omitempty,email"`
	Bio   *string `json:"bio,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
