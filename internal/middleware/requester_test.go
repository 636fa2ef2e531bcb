package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/middleware"
)

// captureRequester runs the requester middleware and returns what the next
// handler saw on its context.
func captureRequester(t *testing.T, headers map[string]string) domain.Requester {
	t.Helper()
	var got domain.Requester
	h := middleware.NewRequesterHandler()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.RequesterFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestRequesterHandler_ReadsHeaders(t *testing.T) {
	got := captureRequester(t, map[string]string{
		middleware.RequesterIDHeader:   " alice ",
		middleware.RequesterTierHeader: "Professional",
	})

	assert.Equal(t, domain.Requester{ID: "alice", Tier: domain.TierProfessional}, got)
}

func TestRequesterHandler_MissingTierIsFree(t *testing.T) {
	got := captureRequester(t, map[string]string{middleware.RequesterIDHeader: "alice"})

	assert.Equal(t, domain.TierFree, got.Tier)
}

func TestRequesterHandler_UnknownTierKept(t *testing.T) {
	got := captureRequester(t, map[string]string{
		middleware.RequesterIDHeader:   "alice",
		middleware.RequesterTierHeader: "gold",
	})

	assert.Equal(t, domain.Tier("gold"), got.Tier)
}

func TestRequesterFromContext_Empty(t *testing.T) {
	assert.Equal(t, domain.Requester{}, middleware.RequesterFromContext(context.Background()))
}

func TestRequireRequester(t *testing.T) {
	h := middleware.NewRequesterHandler()(middleware.RequireRequester(okHandler))

	anon := httptest.NewRecorder()
	h.ServeHTTP(anon, httptest.NewRequest(http.MethodGet, "/trips", nil))
	require.Equal(t, http.StatusUnauthorized, anon.Code)
	assert.Contains(t, anon.Body.String(), `"code":"unauthorized"`)

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set(middleware.RequesterIDHeader, "alice")
	known := httptest.NewRecorder()
	h.ServeHTTP(known, req)
	assert.Equal(t, http.StatusOK, known.Code)
}
