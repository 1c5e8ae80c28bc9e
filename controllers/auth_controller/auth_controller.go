package auth_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/utils"
)

// Accounts registers and authenticates users.
type Accounts interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.Session, error)
}

// Issuer signs sessions into tokens.
type Issuer interface {
	Issue(sess models.Session) (string, error)
	Expiry() time.Duration
}

// Deps are the collaborators the handlers use. LoginEvents is optional.
type Deps struct {
	Accounts    Accounts
	Sessions    Issuer
	LoginEvents utils.Execer
}

var deps Deps

// Init wires the handlers. Must be called before routes are served.
func Init(d Deps) {
	deps = d
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		maxAge,
		"/",
		"",
		config.App.IsProduction(),
		true,
	)
}
