package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

func TestSessionRoundTrip(t *testing.T) {
	svc, err := NewSessionService("test-secret", time.Hour)
	require.NoError(t, err)

	sess := models.Session{UserID: "mock-provider", Name: "Sparky Solutions", Email: "provider@gmail.com", Role: models.RoleProvider}
	token, err := svc.Issue(sess)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sess, *got)
}

func TestSessionRejectsTampering(t *testing.T) {
	a, _ := NewSessionService("secret-a", time.Hour)
	b, _ := NewSessionService("secret-b", time.Hour)

	token, err := a.Issue(models.Session{UserID: "u1", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = b.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionExpires(t *testing.T) {
	svc, _ := NewSessionService("secret", time.Minute)
	now := time.Now()
	svc.now = func() time.Time { return now }

	token, err := svc.Issue(models.Session{UserID: "u1", Role: models.RoleAdmin})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionIssueValidation(t *testing.T) {
	svc, _ := NewSessionService("secret", 0)
	assert.Equal(t, 24*time.Hour, svc.Expiry())

	_, err := svc.Issue(models.Session{Role: models.RoleUser})
	assert.Error(t, err)

	_, err = svc.Issue(models.Session{UserID: "u1", Role: "guest"})
	assert.Error(t, err)

	_, err = NewSessionService("", time.Hour)
	assert.Error(t, err)
}

func TestInitSessionService(t *testing.T) {
	require.Error(t, InitSessionService("", time.Hour))
	require.NoError(t, InitSessionService("secret", time.Hour))
	assert.NotNil(t, GetSessionService())
}
