package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"autoservice-backend/internal/models"
)

func newContext(e *echo.Echo, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "session" {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestEstablishAndCurrentUser(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	user := models.User{ID: 7, Name: "Ivan", Phone: "+70001112233", Email: "ivan@mail.ru"}

	c, rec := newContext(e)
	require.NoError(t, m.Establish(c, user))
	ck := sessionCookie(t, rec)
	require.True(t, ck.HttpOnly)

	c2, _ := newContext(e, ck)
	got, ok := m.CurrentUser(c2)
	require.True(t, ok)
	require.Equal(t, user, got)
}

func TestCurrentUserWithoutCookie(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	c, _ := newContext(e)
	_, ok := m.CurrentUser(c)
	require.False(t, ok)
}

func TestCurrentUserRejectsForeignSignature(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}
	other := &Manager{Secret: []byte("other-secret")}

	c, rec := newContext(e)
	require.NoError(t, m.Establish(c, models.User{ID: 1, Name: "Ivan", Phone: "+7"}))
	ck := sessionCookie(t, rec)

	c2, _ := newContext(e, ck)
	_, ok := other.CurrentUser(c2)
	require.False(t, ok)
}

func TestClear(t *testing.T) {
	e := echo.New()
	m := &Manager{Secret: []byte("test-secret")}

	c, rec := newContext(e)
	m.Clear(c)

	ck := sessionCookie(t, rec)
	require.Empty(t, ck.Value)
	require.True(t, ck.Expires.Before(time.Now()))
}
