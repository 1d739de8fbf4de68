package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IdentityClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewIdentityClient(server.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ───────────────────────────── normalizeBaseURL ─────────────────────────────

func TestNormalizeBaseURL_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host and port", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "full http URL", raw: "http://localhost:8000", want: "http://localhost:8000"},
		{name: "https preserved", raw: "https://identity.example.com", want: "https://identity.example.com"},
		{name: "trailing slash trimmed", raw: "http://localhost:8000/", want: "http://localhost:8000"},
		{name: "surrounding whitespace", raw: "  localhost:8000  ", want: "http://localhost:8000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────── operations ───────────────────────────────

func TestClientRegister(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/register", r.URL.Path)

		var request models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "a@a.com", request.Email)

		writeJSON(t, w, http.StatusCreated, models.UserResponse{Email: request.Email, ID: 1})
	})

	created, err := client.Register(context.Background(), models.RegisterRequest{
		Email:    "a@a.com",
		Password: "pw",
		Name:     "Alice",
	})
	require.NoError(t, err)

	assert.Equal(t, "a@a.com", created.Email)
	assert.Equal(t, int64(1), created.ID)
}

func TestClientRegister_DuplicateEmail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.ErrorResponse{Message: "user already exists"})
	})

	_, err := client.Register(context.Background(), models.RegisterRequest{
		Email:    "taken@a.com",
		Password: "pw",
		Name:     "Bob",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "user already exists")
}

func TestClientLogin_StoresToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.TokenResponse{JWT: "signed.jwt.token"})
	})

	token, err := client.Login(context.Background(), models.Credentials{Email: "a@a.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "signed.jwt.token", token.JWT)
	assert.Equal(t, "signed.jwt.token", client.Token())
}

func TestClientLogin_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "authorization error"})
	})

	_, err := client.Login(context.Background(), models.Credentials{Email: "a@a.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, client.Token(), "no token may be stored after a failed login")
}

func TestClientProfile_SendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/info", r.URL.Path)
		require.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.UserResponse{Email: "a@a.com", ID: 7})
	})

	client.SetToken("stored-token")

	profile, err := client.Profile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "a@a.com", profile.Email)
	assert.Equal(t, int64(7), profile.ID)
}

func TestClientProfile_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Message: "internal error"})
	})

	client.SetToken("stored-token")

	_, err := client.Profile(context.Background())
	assert.ErrorIs(t, err, ErrServer)
}

func TestClientSetToken_TrimsWhitespace(t *testing.T) {
	client, err := NewIdentityClient("localhost:8000", time.Second, logger.Nop())
	require.NoError(t, err)

	client.SetToken("  padded-token  ")
	assert.Equal(t, "padded-token", client.Token())
}
