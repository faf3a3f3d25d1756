package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "chirp"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestGenerateJWTToken_ZeroDurationHasNoExpiry(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 7, 0, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	exp, err := parsed.Token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Nil(t, exp, "zero duration must omit the exp claim")
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		userID  int64
		signKey string
	}{
		{name: "empty issuer", issuer: "", userID: 1, signKey: testSignKey},
		{name: "zero user id", issuer: testIssuer, userID: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, userID: 1, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, time.Hour, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestGenerateJWTToken_DistinctEncodingsVerifyToSameIdentity(t *testing.T) {
	first, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond) // shift iat by at least one second

	second, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEqual(t, first.SignedString, second.SignedString)

	p1, err := ValidateAndParseJWTToken(first.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	p2, err := ValidateAndParseJWTToken(second.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, p1.UserID, p2.UserID)
}

func TestValidateAndParseJWTToken_WrongKeyIsSignatureInvalid(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "a-different-key", testIssuer)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_TamperedTokenFails(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)

	// Flip one byte of the payload segment.
	raw := []byte(token.SignedString)
	mid := len(raw) / 2
	if raw[mid] == 'a' {
		raw[mid] = 'b'
	} else {
		raw[mid] = 'a'
	}

	_, err = ValidateAndParseJWTToken(string(raw), testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_GarbageIsMalformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt-at-all", testSignKey, testIssuer)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateAndParseJWTToken_ExpiredIsExpired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuerRejected(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "missing token part", header: "Bearer", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "extra parts rejected", header: "Bearer one two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
