package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, err := jwtService.GenerateJWT("alice", RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedID     string
	}{
		{name: "Valid token", header: "Bearer " + valid, expectedStatus: http.StatusOK, expectedID: "alice"},
		{name: "Missing header", expectedStatus: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + valid, expectedStatus: http.StatusUnauthorized},
		{name: "Broken token", header: "Bearer broken", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID, gotRole string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, _ = AccountIDFromContext(r.Context())
				gotRole, _ = r.Context().Value(RoleKey).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			Middleware(jwtService)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedID, gotID)
			if tt.expectedID != "" {
				assert.Equal(t, RoleAdmin, gotRole)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		expectedStatus int
	}{
		{name: "Admin", role: RoleAdmin, expectedStatus: http.StatusOK},
		{name: "Plain account", role: "", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			ctx := context.WithValue(context.Background(), RoleKey, tt.role)
			req := httptest.NewRequest(http.MethodPost, "/", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			RequireRole(RoleAdmin)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestActsAs(t *testing.T) {
	assert.True(t, ActsAs(context.Background(), "alice"))

	ctx := context.WithValue(context.Background(), AccountIDKey, "alice")
	assert.True(t, ActsAs(ctx, "alice"))
	assert.False(t, ActsAs(ctx, "bob"))
}
