package middleware

import (
	"context"
	"net/http"

	pnet "hubgate/internal/platform/net"
)

// AuthPort is the seam the auth gate implements
type AuthPort interface {
	// Authenticate validates the request and returns a context annotated
	// with the caller's identity, or an error to return to the client
	Authenticate(r *http.Request) (context.Context, error)
}

// Auth is a no-op until wired. It uses the port when provided
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx, err := p.Authenticate(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
