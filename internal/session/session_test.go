package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tododesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextWithCookies(cookies []*http.Cookie) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c
}

func TestSetAndGetCurrentUser(t *testing.T) {
	m := NewManager("test-secret")
	user := &domain.User{ID: 7, Username: "alice"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.SetCurrentUser(c, user))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	got := m.CurrentUser(contextWithCookies(cookies))
	require.NotNil(t, got)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, user.Username, got.Username)
}

func TestCurrentUserWithoutSession(t *testing.T) {
	m := NewManager("test-secret")
	require.Nil(t, m.CurrentUser(contextWithCookies(nil)))
}

func TestCurrentUserRejectsGarbageCookie(t *testing.T) {
	m := NewManager("test-secret")
	c := contextWithCookies([]*http.Cookie{{Name: cookieName, Value: "not-a-token"}})
	require.Nil(t, m.CurrentUser(c))
}

func TestCurrentUserRejectsForeignSecret(t *testing.T) {
	signer := NewManager("other-secret")
	user := &domain.User{ID: 1, Username: "alice"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, signer.SetCurrentUser(c, user))

	m := NewManager("test-secret")
	require.Nil(t, m.CurrentUser(contextWithCookies(w.Result().Cookies())))
}

func TestCurrentUserRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret")
	claims := Claims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	c := contextWithCookies([]*http.Cookie{{Name: cookieName, Value: signed}})
	require.Nil(t, m.CurrentUser(c))
}

func TestClearCurrentUser(t *testing.T) {
	m := NewManager("test-secret")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)
	m.ClearCurrentUser(c)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, cookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
