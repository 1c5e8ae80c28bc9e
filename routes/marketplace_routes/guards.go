package marketplace_routes

import (
	"time"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
)

// Guards are the middleware dependencies shared by the route groups.
// Rate and Activity may be nil.
type Guards struct {
	Sessions middleware.SessionVerifier
	Rate     middleware.RateStore
	Activity middleware.ActivityRecorder
}

const (
	mutationLimit = 100
	authLimit     = 20
	limitWindow   = time.Minute
)
