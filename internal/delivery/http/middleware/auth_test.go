package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

type fakeVerifier struct {
	identity *domain.Identity
	err      error
}

func (f *fakeVerifier) Verify(token string) (*domain.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   *fakeVerifier
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			header:     "Bearer good-token",
			verifier:   &fakeVerifier{identity: &domain.Identity{TokenIdentifier: "provider|u1", HasPro: true}},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			header:     "",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			header:     "Bearer   ",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verification fails",
			header:     "Bearer bad-token",
			verifier:   &fakeVerifier{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotIdentity *domain.Identity
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotIdentity, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			handler := RequireAuth(tt.verifier, testLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				require.NotNil(t, gotIdentity)
				assert.Equal(t, "provider|u1", gotIdentity.TokenIdentifier)
				assert.True(t, gotIdentity.HasPro)
			}
		})
	}
}
