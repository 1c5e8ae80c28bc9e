package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DemoPassword is shared by the three demo accounts.
const DemoPassword = "password123"

// DemoAccount is a built-in login that works without a database row.
type DemoAccount struct {
	ID    string
	Email string
	Name  string
	Role  models.Role
}

// DemoAccounts are accepted by Authenticate before the user store is consulted.
var DemoAccounts = []DemoAccount{
	{ID: "mock-admin", Email: "admin@gmail.com", Name: "Super Admin", Role: models.RoleAdmin},
	{ID: "mock-provider", Email: "provider@gmail.com", Name: "Sparky Solutions", Role: models.RoleProvider},
	{ID: "mock-user", Email: "user@gmail.com", Name: "Normal User", Role: models.RoleUser},
}

// UserStore persists registered accounts.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// AuthService handles password hashing and credential checks
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks the minimum length of 8 characters
func (s *AuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ════════════════════════════════════════════════════════════
// Accounts
// ════════════════════════════════════════════════════════════

// Register stores a new account. The role defaults to user.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	if _, ok := findDemo(email); ok {
		return nil, ErrUserExists
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and returns the session to issue.
// Demo accounts are matched first.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (models.Session, error) {
	email = normalizeEmail(email)
	if demo, ok := findDemo(email); ok && password == DemoPassword {
		return models.Session{UserID: demo.ID, Name: demo.Name, Email: demo.Email, Role: demo.Role}, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return models.Session{}, err
	}
	if !s.VerifyPassword(user.PasswordHash, password) {
		return models.Session{}, ErrInvalidCredentials
	}
	return models.Session{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

func findDemo(email string) (DemoAccount, bool) {
	for _, d := range DemoAccounts {
		if d.Email == email {
			return d, true
		}
	}
	return DemoAccount{}, false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
