package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// ErrInvalidToken is returned for tokens that are malformed, expired,
// signed with another key or missing session fields.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the signed form of a models.Session.
type SessionClaims struct {
	UserID string      `json:"uid"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies session tokens.
type SessionService struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

var sessionService *SessionService

// NewSessionService creates a session service. The secret must be non-empty.
func NewSessionService(secretKey string, expiry time.Duration) (*SessionService, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &SessionService{secretKey: []byte(secretKey), expiry: expiry, now: time.Now}, nil
}

// InitSessionService initializes the global session service
func InitSessionService(secretKey string, expiry time.Duration) error {
	s, err := NewSessionService(secretKey, expiry)
	if err != nil {
		return err
	}
	sessionService = s
	return nil
}

// GetSessionService returns the initialized session service
func GetSessionService() *SessionService {
	return sessionService
}

// Expiry is how long issued tokens stay valid.
func (s *SessionService) Expiry() time.Duration {
	return s.expiry
}

// Issue signs sess into a token.
func (s *SessionService) Issue(sess models.Session) (string, error) {
	if sess.UserID == "" || !sess.Role.Valid() {
		return "", errors.New("session needs a user id and a known role")
	}

	now := s.now()
	claims := SessionClaims{
		UserID: sess.UserID,
		Name:   sess.Name,
		Email:  sess.Email,
		Role:   sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "fixora-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token back into the session it was issued for.
func (s *SessionService) Verify(tokenString string) (*models.Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return &models.Session{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
