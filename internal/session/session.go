package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"autoservice-backend/internal/models"
)

const (
	cookieName = "session"
	sessionTTL = 30 * 24 * time.Hour
)

// Manager maps the opaque session cookie to a user snapshot. The snapshot
// is a capture taken at Establish time: CurrentUser never re-reads the
// store, handlers that change the user re-establish the cookie themselves.
type Manager struct {
	Secret []byte
}

func CreateCookie(name string, value string, path string, expTime time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expTime,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}

	return cookie
}

func (m *Manager) Establish(c echo.Context, user models.User) error {
	exp := time.Now().Add(sessionTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"phone": user.Phone,
		"email": user.Email,
		"exp":   exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.Secret)
	if err != nil {
		return err
	}

	c.SetCookie(CreateCookie(cookieName, signed, "/", exp))
	return nil
}

func (m *Manager) CurrentUser(c echo.Context) (models.User, bool) {
	ck, err := c.Cookie(cookieName)
	if err != nil || ck.Value == "" {
		return models.User{}, false
	}

	token, err := jwt.Parse(ck.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return m.Secret, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, false
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return models.User{}, false
	}

	user := models.User{ID: uint(sub)}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if phone, ok := claims["phone"].(string); ok {
		user.Phone = phone
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	return user, true
}

func (m *Manager) Clear(c echo.Context) {
	expired := time.Now().Add(-1 * time.Hour)
	c.SetCookie(CreateCookie(cookieName, "", "/", expired))
}
