package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Headers set by the upstream gateway once it has authenticated the caller.
const (
	RequesterIDHeader   = "X-Requester-ID"
	RequesterTierHeader = "X-Requester-Tier"
)

type requesterKey struct{}

// NewRequesterHandler returns a middleware that reads the gateway's requester
// headers into a domain.Requester on the request context. A missing tier
// means free; an unknown tier is kept as is so the service can reject it.
func NewRequesterHandler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req := domain.Requester{
				ID:   strings.TrimSpace(r.Header.Get(RequesterIDHeader)),
				Tier: domain.Tier(strings.ToLower(strings.TrimSpace(r.Header.Get(RequesterTierHeader)))),
			}
			if req.Tier == "" {
				req.Tier = domain.TierFree
			}
			next.ServeHTTP(w, r.WithContext(WithRequester(r.Context(), req)))
		})
	}
}

// RequireRequester rejects requests that carry no requester id with 401.
// Wire it after NewRequesterHandler.
func RequireRequester(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RequesterFromContext(r.Context()).ID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"missing ` + RequesterIDHeader + ` header"}}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithRequester returns a copy of ctx carrying r.
func WithRequester(ctx context.Context, r domain.Requester) context.Context {
	return context.WithValue(ctx, requesterKey{}, r)
}

// RequesterFromContext returns the requester stored by NewRequesterHandler,
// or the zero Requester if there is none.
func RequesterFromContext(ctx context.Context) domain.Requester {
	r, _ := ctx.Value(requesterKey{}).(domain.Requester)
	return r
}
