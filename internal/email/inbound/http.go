package inbound

import "github.com/shandysiswandi/mailbridge/internal/pkg/router"

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/email/send", end.Send)
	r.POST("/api/v1/email/adapt/:provider", end.Adapt)
	r.GET("/api/v1/email/providers", end.Providers)
}
