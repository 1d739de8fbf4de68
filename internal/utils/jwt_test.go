package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "go-identity"
	testSecret = "test-secret"
)

// ─────────────────────────────────────────────
// GenerateJWTToken
// ─────────────────────────────────────────────

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "alice@example.com", time.Hour, testSecret)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "alice@example.com", token.Subject)
}

func TestGenerateJWTToken_InvalidParams_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		subject string
		signKey string
	}{
		{name: "empty issuer", issuer: "", subject: "a@a.com", signKey: testSecret},
		{name: "empty subject", issuer: testIssuer, subject: "", signKey: testSecret},
		{name: "empty sign key", issuer: testIssuer, subject: "a@a.com", signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, time.Hour, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestGenerateJWTToken_ZeroDuration_NoExpiryClaim(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "alice@example.com", 0, testSecret)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSecret, testIssuer)
	require.NoError(t, err)

	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Nil(t, exp, "zero duration must produce a token without an exp claim")
}

func TestGenerateJWTToken_IssuedAtIsSecondsResolution(t *testing.T) {
	before := time.Now().Truncate(time.Second)
	token, err := GenerateJWTToken(testIssuer, "alice@example.com", time.Hour, testSecret)
	require.NoError(t, err)
	after := time.Now()

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSecret, testIssuer)
	require.NoError(t, err)

	iat, err := parsed.Claims.GetIssuedAt()
	require.NoError(t, err)
	require.NotNil(t, iat)
	assert.False(t, iat.Time.Before(before))
	assert.False(t, iat.Time.After(after))
	assert.Zero(t, iat.Time.Nanosecond())
}

// ─────────────────────────────────────────────
// ValidateAndParseJWTToken
// ─────────────────────────────────────────────

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	// round-trip must recover the subject exactly, for any non-empty email
	emails := []string{
		"alice@example.com",
		"bob+tag@sub.domain.io",
		"x@y",
		"почта@пример.рф",
	}

	for _, email := range emails {
		t.Run(email, func(t *testing.T) {
			token, err := GenerateJWTToken(testIssuer, email, time.Hour, testSecret)
			require.NoError(t, err)

			parsed, err := ValidateAndParseJWTToken(token.SignedString, testSecret, testIssuer)
			require.NoError(t, err)
			assert.Equal(t, email, parsed.Subject)
		})
	}
}

func TestValidateAndParseJWTToken_WrongSecret(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "alice@example.com", time.Hour, testSecret)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-secret", testIssuer)
	require.Error(t, err, "a token signed under one secret must fail verification under any other")
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("other-service", "alice@example.com", time.Hour, testSecret)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSecret, testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_ExpiredToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "alice@example.com", -time.Minute, testSecret)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSecret, testIssuer)
	require.Error(t, err, "a well-signed but expired token must fail verification")
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt", testSecret, testIssuer)
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// ParseBearerToken
// ─────────────────────────────────────────────

func TestParseBearerToken_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "only spaces", header: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
