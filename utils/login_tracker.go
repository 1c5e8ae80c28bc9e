package utils

import (
	"context"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
)

// Execer is satisfied by *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// LoginEventsDDL creates the table LogLoginEvent writes to.
const LoginEventsDDL = `
	CREATE TABLE IF NOT EXISTS login_events (
		id           UUID PRIMARY KEY,
		user_id      VARCHAR(64) NOT NULL,
		role         VARCHAR(20) NOT NULL,
		logged_in_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		ip_address   VARCHAR(64),
		user_agent   TEXT,
		device_type  VARCHAR(16),
		browser      VARCHAR(16),
		os           VARCHAR(16)
	)
`

// LoginEvent is one successful sign-in.
type LoginEvent struct {
	ID         uuid.UUID
	UserID     string
	Role       string
	IPAddress  string
	UserAgent  string
	DeviceType string
	Browser    string
	OS         string
}

// NewLoginEvent describes the sign-in carried by the current request.
func NewLoginEvent(c *gin.Context, userID, role string) LoginEvent {
	userAgent := c.GetHeader("User-Agent")
	return LoginEvent{
		ID:         uuid.Must(uuid.NewV7()),
		UserID:     userID,
		Role:       role,
		IPAddress:  GetClientIP(c),
		UserAgent:  userAgent,
		DeviceType: parseDeviceType(userAgent),
		Browser:    parseBrowser(userAgent),
		OS:         parseOS(userAgent),
	}
}

// LogLoginEvent records a login event to the database
func LogLoginEvent(ctx context.Context, db Execer, ev LoginEvent) error {
	query := `
		INSERT INTO login_events (
			id, user_id, role, logged_in_at, ip_address, user_agent,
			device_type, browser, os
		) VALUES ($1, $2, $3, NOW(), $4, $5, $6, $7, $8)
	`

	_, err := db.Exec(ctx, query,
		ev.ID.String(),
		ev.UserID,
		ev.Role,
		ev.IPAddress,
		ev.UserAgent,
		ev.DeviceType,
		ev.Browser,
		ev.OS,
	)
	if err != nil {
		config.Log.Errorf("❌ Failed to log login event: %v", err)
		return err
	}

	config.Log.Infof("✅ Login event logged for user: %s from IP: %s", ev.UserID, ev.IPAddress)
	return nil
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone") {
		return "mobile"
	}
	return "desktop"
}

// parseBrowser extracts browser name from user agent
func parseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	}
	return "Other"
}

// parseOS extracts operating system from user agent
func parseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)

	// iOS and Android UAs also mention "mac os" / "linux", so check them first.
	switch {
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		return "iOS"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	}
	return "Other"
}

// GetClientIP gets the real client IP (handles proxies)
func GetClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}

	return c.ClientIP()
}
