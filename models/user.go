package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role tags a session and selects which dashboard variant is rendered.
type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'user';check:role IN ('user','provider','admin')"`
	Joined       time.Time `json:"joined" gorm:"autoCreateTime;index"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
	Joined time.Time `json:"joined"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Joined: u.Joined,
	}
}

// RegisterRequest is the body of POST /auth/register. Self-registration is
// limited to users and providers; admins are created by the seeder.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Normal User"`
	Email    string `json:"email" binding:"required,email" example:"user@gmail.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
	Role     Role   `json:"role" binding:"omitempty,oneof=user provider" example:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"user@gmail.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse carries the issued session and its signed token.
type LoginResponse struct {
	Session Session `json:"session"`
	Token   string  `json:"token"`
}
