package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emarchenko/go-identity/internal/app"
	"github.com/emarchenko/go-identity/internal/service"
	"github.com/emarchenko/go-identity/internal/store"
	"github.com/emarchenko/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, h *Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, r)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// ─────────────────────────── POST /users/register ───────────────────────────

func TestRegister_Success(t *testing.T) {
	userService := &mockUserService{
		createUserFunc: func(ctx context.Context, request models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "a@a.com", request.Email)
			assert.Equal(t, "pw", request.Password)
			assert.Equal(t, "Alice", request.Name)
			return models.User{ID: 1, Email: request.Email, Name: request.Name}, nil
		},
	}
	h := newTestHandler(userService, nil)

	w := doRequest(t, h, http.MethodPost, "/users/register",
		`{"email":"a@a.com","password":"pw","name":"Alice"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"email":"a@a.com","id":1}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userService := &mockUserService{
		createUserFunc: func(ctx context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	h := newTestHandler(userService, nil)

	w := doRequest(t, h, http.MethodPost, "/users/register",
		`{"email":"taken@a.com","password":"pw","name":"Bob"}`, nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, app.MsgUserAlreadyExists, decodeError(t, w).Message)
}

func TestRegister_ValidationHaltsChain(t *testing.T) {
	userService := &mockUserService{
		createUserFunc: func(ctx context.Context, request models.RegisterRequest) (models.User, error) {
			t.Fatal("handler must not run when validation fails")
			return models.User{}, nil
		},
	}
	h := newTestHandler(userService, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: `this is not json`},
		{name: "empty body", body: ``},
		{name: "missing password", body: `{"email":"a@a.com","name":"Alice"}`},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, h, http.MethodPost, "/users/register", tt.body, nil)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.NotEmpty(t, decodeError(t, w).Message)
		})
	}
}

// ───────────────────────────── POST /users/login ─────────────────────────────

func TestLogin_Success(t *testing.T) {
	userService := &mockUserService{
		validateCredentialsFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{ID: 7, Email: credentials.Email}, nil
		},
	}
	tokenService := &mockTokenService{
		createTokenFunc: func(ctx context.Context, user models.User) (models.Token, error) {
			require.Equal(t, "a@a.com", user.Email)
			return models.Token{SignedString: "signed.jwt.token", Subject: user.Email}, nil
		},
	}
	h := newTestHandler(userService, tokenService)

	w := doRequest(t, h, http.MethodPost, "/users/login",
		`{"email":"a@a.com","password":"pw"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"jwt":"signed.jwt.token"}`, w.Body.String())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// the response must not reveal whether the email exists
	userService := &mockUserService{
		validateCredentialsFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(userService, nil)

	w := doRequest(t, h, http.MethodPost, "/users/login",
		`{"email":"whoever@a.com","password":"wrong"}`, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, app.MsgAuthorizationError, decodeError(t, w).Message)
}

func TestLogin_TokenCreationFails(t *testing.T) {
	userService := &mockUserService{
		validateCredentialsFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{ID: 7, Email: credentials.Email}, nil
		},
	}
	tokenService := &mockTokenService{
		createTokenFunc: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(userService, tokenService)

	w := doRequest(t, h, http.MethodPost, "/users/login",
		`{"email":"a@a.com","password":"pw"}`, nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, app.MsgInternalError, decodeError(t, w).Message)
}

func TestLogin_MissingFields(t *testing.T) {
	userService := &mockUserService{
		validateCredentialsFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			t.Fatal("handler must not run when validation fails")
			return models.User{}, nil
		},
	}
	h := newTestHandler(userService, nil)

	w := doRequest(t, h, http.MethodPost, "/users/login", `{"email":"a@a.com"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ───────────────────────────── GET /users/info ─────────────────────────────

func TestInfo_Success(t *testing.T) {
	userService := &mockUserService{
		getProfileFunc: func(ctx context.Context, identity string) (models.User, error) {
			require.Equal(t, "a@a.com", identity)
			return models.User{ID: 7, Email: identity, Name: "Alice"}, nil
		},
	}
	tokenService := &mockTokenService{
		parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{Subject: "a@a.com"}, nil
		},
	}
	h := newTestHandler(userService, tokenService)

	w := doRequest(t, h, http.MethodGet, "/users/info", "",
		map[string]string{"Authorization": "Bearer good-token"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@a.com","id":7}`, w.Body.String())
}

func TestInfo_UserGoneYieldsEmptyFields(t *testing.T) {
	userService := &mockUserService{
		getProfileFunc: func(ctx context.Context, identity string) (models.User, error) {
			return models.User{}, nil
		},
	}
	tokenService := &mockTokenService{
		parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{Subject: "gone@a.com"}, nil
		},
	}
	h := newTestHandler(userService, tokenService)

	w := doRequest(t, h, http.MethodGet, "/users/info", "",
		map[string]string{"Authorization": "Bearer good-token"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestInfo_NoAuthorizationHeader(t *testing.T) {
	userService := &mockUserService{
		getProfileFunc: func(ctx context.Context, identity string) (models.User, error) {
			t.Fatal("handler must not run without authentication")
			return models.User{}, nil
		},
	}
	h := newTestHandler(userService, &mockTokenService{})

	w := doRequest(t, h, http.MethodGet, "/users/info", "", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, app.MsgAuthorizationError, decodeError(t, w).Message)
}

func TestInfo_ExpiredToken(t *testing.T) {
	tokenService := &mockTokenService{
		parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(&mockUserService{}, tokenService)

	w := doRequest(t, h, http.MethodGet, "/users/info", "",
		map[string]string{"Authorization": "Bearer expired-token"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, app.MsgAuthorizationError, decodeError(t, w).Message)
}

// ─────────────────────────────── pipeline ───────────────────────────────

func TestPanicInHandlerBecomesInternalError(t *testing.T) {
	userService := &mockUserService{
		getProfileFunc: func(ctx context.Context, identity string) (models.User, error) {
			panic("something went badly wrong")
		},
	}
	tokenService := &mockTokenService{
		parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{Subject: "a@a.com"}, nil
		},
	}
	h := newTestHandler(userService, tokenService)

	w := doRequest(t, h, http.MethodGet, "/users/info", "",
		map[string]string{"Authorization": "Bearer good-token"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, app.MsgInternalError, decodeError(t, w).Message)
}

func TestUnexpectedErrorIsNotLeaked(t *testing.T) {
	userService := &mockUserService{
		createUserFunc: func(ctx context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{}, assert.AnError
		},
	}
	h := newTestHandler(userService, nil)

	w := doRequest(t, h, http.MethodPost, "/users/register",
		`{"email":"a@a.com","password":"pw","name":"Alice"}`, nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, app.MsgInternalError, decodeError(t, w).Message)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestMethodNotAllowedRespondsNotFound(t *testing.T) {
	h := newTestHandler(&mockUserService{}, &mockTokenService{})

	w := doRequest(t, h, http.MethodGet, "/users/register", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, h, http.MethodDelete, "/users/info", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownRouteRespondsNotFound(t *testing.T) {
	h := newTestHandler(&mockUserService{}, &mockTokenService{})

	w := doRequest(t, h, http.MethodGet, "/users/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTraceIDHeaderIsAlwaysSet(t *testing.T) {
	userService := &mockUserService{
		validateCredentialsFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(userService, nil)

	w := doRequest(t, h, http.MethodPost, "/users/login",
		`{"email":"a@a.com","password":"pw"}`, nil)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	// an inbound trace ID is echoed back unchanged
	w = doRequest(t, h, http.MethodPost, "/users/login",
		`{"email":"a@a.com","password":"pw"}`,
		map[string]string{"X-Trace-ID": "trace-from-upstream"})
	assert.Equal(t, "trace-from-upstream", w.Header().Get("X-Trace-ID"))
}
