package httpkit

import (
	"hubgate/internal/platform/net/middleware"
)

// Protected groups routes behind the signed-header auth gate
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}
