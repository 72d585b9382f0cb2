package router

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/mailbridge/internal/pkg/clock"
	"github.com/shandysiswandi/mailbridge/internal/pkg/config"
	"go.uber.org/atomic"
)

// middlewareMaintenance blocks the routes listed in app.maintenance.endpoints.
// The list follows config reloads.
func middlewareMaintenance(cfg config.Config, clk clock.Clocker) Middleware {
	var blocked atomic.Value
	load := func() {
		endpoints := make(map[string]struct{})
		if cfg != nil {
			for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
				endpoints[endpoint] = struct{}{}
			}
		}
		blocked.Store(endpoints)
	}
	load()
	if cfg != nil {
		cfg.OnChange(load)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			endpoints, _ := blocked.Load().(map[string]struct{})
			if _, found := endpoints[matchedRoutePath(r)]; found {
				const msg = "service is under maintenance"
				writeJSON(w, errorResponse{
					Message:   msg,
					Errors:    []string{msg},
					Status:    http.StatusServiceUnavailable,
					Timestamp: clk.Now().Format(time.RFC3339),
				}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
