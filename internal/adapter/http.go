package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/models"
	"github.com/go-resty/resty/v2"
)

type httpIdentityClient struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewIdentityClient constructs an HTTP/REST implementation of
// [IdentityClient]. It normalises and validates the base URL and configures
// the underlying resty client with it and the request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewIdentityClient(address string, timeout time.Duration, logger *logger.Logger) (IdentityClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid identity server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpIdentityClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [IdentityClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpIdentityClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [IdentityClient]. It returns the bearer token currently
// held by the client, or an empty string if none has been set.
func (h *httpIdentityClient) Token() string {
	return h.token
}

// Register implements [IdentityClient]. It POSTs the registration request to
// POST /users/register and returns the created account's public projection.
// Returns ErrRejected (wrapped) when the email is already taken.
func (h *httpIdentityClient) Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error) {
	var created models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/users/register")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return created, nil
}

// Login implements [IdentityClient]. It POSTs the credentials to
// POST /users/login; on success the returned bearer token is stored via
// SetToken for subsequent authenticated calls. Returns ErrUnauthorized
// (wrapped) on a credential failure.
func (h *httpIdentityClient) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&token).
		Post("/users/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.JWT)
	return token, nil
}

// Profile implements [IdentityClient]. It GETs /users/info with the stored
// bearer token. Returns ErrUnauthorized (wrapped) when no valid token is
// held.
func (h *httpIdentityClient) Profile(ctx context.Context) (models.UserResponse, error) {
	var profile models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token).
		SetResult(&profile).
		Get("/users/info")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return profile, nil
}
