package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"alumninexus/internal/delivery/http/helpers"
	"alumninexus/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRoleVerifier implements domain.RoleTokenVerifier for tests.
type fakeRoleVerifier struct {
	role string
	err  error
}

func (f *fakeRoleVerifier) Verify(_ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.role, nil
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		verifier     domain.RoleTokenVerifier
		disabled     bool
		allowed      []string
		wantStatus   int
		nextCalled   bool
		wantCtxRole  string
	}{
		{
			name:        "admin token on admin route",
			authHeader:  "Bearer valid-token",
			verifier:    &fakeRoleVerifier{role: domain.RoleAdmin},
			allowed:     []string{domain.RoleAdmin},
			wantStatus:  http.StatusOK,
			nextCalled:  true,
			wantCtxRole: domain.RoleAdmin,
		},
		{
			name:       "student token on admin route",
			authHeader: "Bearer valid-token",
			verifier:   &fakeRoleVerifier{role: domain.RoleStudent},
			allowed:    []string{domain.RoleAdmin},
			wantStatus: http.StatusForbidden,
			nextCalled: false,
		},
		{
			name:        "student token on open route",
			authHeader:  "Bearer valid-token",
			verifier:    &fakeRoleVerifier{role: domain.RoleStudent},
			allowed:     []string{domain.RoleStudent, domain.RoleAdmin},
			wantStatus:  http.StatusOK,
			nextCalled:  true,
			wantCtxRole: domain.RoleStudent,
		},
		{
			name:       "missing authorization header",
			authHeader: "",
			verifier:   &fakeRoleVerifier{role: domain.RoleAdmin},
			allowed:    []string{domain.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
			nextCalled: false,
		},
		{
			name:       "no Bearer prefix",
			authHeader: "Basic abc",
			verifier:   &fakeRoleVerifier{role: domain.RoleAdmin},
			allowed:    []string{domain.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
			nextCalled: false,
		},
		{
			name:       "empty token after Bearer",
			authHeader: "Bearer ",
			verifier:   &fakeRoleVerifier{role: domain.RoleAdmin},
			allowed:    []string{domain.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
			nextCalled: false,
		},
		{
			name:       "verifier rejects token",
			authHeader: "Bearer bad-token",
			verifier:   &fakeRoleVerifier{err: errors.New("invalid or expired token")},
			allowed:    []string{domain.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
			nextCalled: false,
		},
		{
			name:       "gate disabled passes everything through",
			authHeader: "",
			verifier:   &fakeRoleVerifier{err: errors.New("never called")},
			disabled:   true,
			allowed:    []string{domain.RoleAdmin},
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var capturedRole string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if role, ok := RoleFromContext(r.Context()); ok {
					capturedRole = role
				}
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireRole(tt.verifier, tt.disabled, tt.allowed...)(next.ServeHTTP)

			req := httptest.NewRequest(http.MethodPost, "http://test/api/blogs", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.wantCtxRole != "" {
				assert.Equal(t, tt.wantCtxRole, capturedRole, "role in context")
			}
			if tt.wantStatus != http.StatusOK {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				assert.False(t, envelope.Success)
				assert.NotEmpty(t, envelope.Error)
			}
		})
	}
}
