package identity

import (
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestResolver_Header(t *testing.T) {
	resolver := NewRequestResolver()
	userID := uuid.New()

	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	req.Header.Set(HeaderName, userID.String())

	resolved, err := resolver.Resolve(req)

	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestRequestResolver_QueryParam(t *testing.T) {
	resolver := NewRequestResolver()
	userID := uuid.New()

	req := httptest.NewRequest("GET", "/api/v1/products?vendor_user_id="+userID.String(), nil)

	resolved, err := resolver.Resolve(req)

	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestRequestResolver_BearerSubject(t *testing.T) {
	resolver := NewRequestResolver()
	userID := uuid.New()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID.String()})
	signed, err := token.SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resolved, err := resolver.Resolve(req)

	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestRequestResolver_HeaderTakesPrecedence(t *testing.T) {
	resolver := NewRequestResolver()
	headerID := uuid.New()
	queryID := uuid.New()

	req := httptest.NewRequest("GET", "/api/v1/products?vendor_user_id="+queryID.String(), nil)
	req.Header.Set(HeaderName, headerID.String())

	resolved, err := resolver.Resolve(req)

	require.NoError(t, err)
	assert.Equal(t, headerID, resolved)
}

func TestRequestResolver_NoIdentity(t *testing.T) {
	resolver := NewRequestResolver()

	req := httptest.NewRequest("GET", "/api/v1/products", nil)

	_, err := resolver.Resolve(req)

	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestRequestResolver_MalformedValues(t *testing.T) {
	resolver := NewRequestResolver()

	t.Run("bad header uuid", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/products", nil)
		req.Header.Set(HeaderName, "not-a-uuid")

		_, err := resolver.Resolve(req)
		assert.ErrorIs(t, err, ErrNoIdentity)
	})

	t.Run("garbage bearer token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/products", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")

		_, err := resolver.Resolve(req)
		assert.ErrorIs(t, err, ErrNoIdentity)
	})
}
