package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockSvc "nearby/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, m *AuthMiddleware, req *http.Request) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uuid.UUID
	var nextCalled bool
	handler := m.Authenticate(func(c echo.Context) error {
		gotID, nextCalled = GetUserID(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, gotID, nextCalled
}

func TestAuthenticate_ValidBearerToken(t *testing.T) {
	userID := uuid.New()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(userID, nil).Once()

	m := NewAuthMiddleware(tokenSvc)
	req := httptest.NewRequest(http.MethodGet, "/nearby/friends", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec, gotID, nextCalled := invokeAuthenticate(t, m, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, gotID)
}

func TestAuthenticate_QueryParamFallbackForWebsocketDials(t *testing.T) {
	userID := uuid.New()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("ws-token").Return(userID, nil).Once()

	m := NewAuthMiddleware(tokenSvc)
	req := httptest.NewRequest(http.MethodGet, "/presence/ws?access_token=ws-token", nil)

	rec, gotID, nextCalled := invokeAuthenticate(t, m, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, gotID)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	req := httptest.NewRequest(http.MethodGet, "/location", nil)

	rec, _, nextCalled := invokeAuthenticate(t, m, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthenticate_MalformedAuthorizationHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	req := httptest.NewRequest(http.MethodGet, "/location", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec, _, nextCalled := invokeAuthenticate(t, m, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("expired-token").
		Return(uuid.Nil, errors.New("token is expired")).
		Once()

	m := NewAuthMiddleware(tokenSvc)
	req := httptest.NewRequest(http.MethodGet, "/location", nil)
	req.Header.Set("Authorization", "Bearer expired-token")

	rec, _, nextCalled := invokeAuthenticate(t, m, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}
