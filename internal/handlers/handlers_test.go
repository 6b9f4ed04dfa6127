package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"autoservice-backend/internal/models"
	"autoservice-backend/internal/session"
	"autoservice-backend/internal/store"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Store    *store.Store
	Sessions *session.Manager

	Parts        *PartsHandler
	Users        *UserHandler
	Orders       *OrderHandler
	Appointments *AppointmentHandler
	Cars         *CarHandler
	Chat         *ChatHandler
	Stats        *StatsHandler
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Part{},
		&models.Order{},
		&models.Appointment{},
		&models.UserCar{},
		&models.ChatMessage{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	st := store.New(db)
	require.NoError(t, st.SeedParts())

	sessions := &session.Manager{Secret: []byte("test-secret")}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		Store:    st,
		Sessions: sessions,

		Parts:        &PartsHandler{Store: st},
		Users:        &UserHandler{Store: st, Sessions: sessions},
		Orders:       &OrderHandler{Store: st, Sessions: sessions},
		Appointments: &AppointmentHandler{Store: st, Sessions: sessions},
		Cars:         &CarHandler{Store: st, Sessions: sessions},
		Chat:         &ChatHandler{Store: st, Sessions: sessions},
		Stats:        &StatsHandler{},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
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

func login(t *testing.T, env *testEnv) *http.Cookie {
	load := map[string]string{
		"name":  "Ivan",
		"phone": "+70001112233",
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/user", load)
	require.NoError(t, env.Users.CreateOrGetUser(c))
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookie(t, rec)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
