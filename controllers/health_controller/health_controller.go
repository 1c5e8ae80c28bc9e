package health_controller

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
)

// RootMessage is served on GET /.
const RootMessage = "Fixora API is running successfully!"

// Check probes one dependency.
type Check func(ctx context.Context) error

var (
	checks       = map[string]Check{}
	checkTimeout = 2 * time.Second
)

// Init registers the dependency probes run by Healthz.
func Init(c map[string]Check) {
	checks = c
}

// Root godoc
// @Summary Liveness text
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Fixora API is running successfully!"
// @Router / [get]
func Root(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

// Healthz godoc
// @Summary Dependency health
// @Description Pings every registered dependency. Returns 503 when any probe fails.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /healthz [get]
func Healthz(c *gin.Context) {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	results := make(map[string]string, len(checks))
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
		err := checks[name](ctx)
		cancel()

		if err != nil {
			config.Log.Warnw("[healthz] probe failed", "dependency", name, "error", err)
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "checks": results})
}
