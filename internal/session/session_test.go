package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ubuzima-backend/internal/database"
	"ubuzima-backend/internal/session"
)

func createDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())
	return db
}

func newRouter(db *gorm.DB, seen *[]uuid.UUID) chi.Router {
	r := chi.NewRouter()
	r.Use(session.Middleware(db))
	r.Get("/probe", func(w http.ResponseWriter, r *http.Request) {
		*seen = append(*seen, session.FromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestMiddlewareIssuesCookie(t *testing.T) {
	db := createDB(t)
	var seen []uuid.UUID
	router := newRouter(db, &seen)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	require.Len(t, seen, 1)
	assert.NotEqual(t, uuid.Nil, seen[0])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, seen[0].String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	var count int64
	require.NoError(t, db.Model(&database.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMiddlewareReusesExistingSession(t *testing.T) {
	db := createDB(t)
	var seen []uuid.UUID
	router := newRouter(db, &seen)

	sessionID := uuid.New()
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID.String()})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// No replacement cookie is issued for a valid session.
		assert.Empty(t, w.Result().Cookies())
	}

	require.Len(t, seen, 2)
	assert.Equal(t, sessionID, seen[0])
	assert.Equal(t, sessionID, seen[1])

	var count int64
	require.NoError(t, db.Model(&database.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMiddlewareRejectsMalformedCookie(t *testing.T) {
	db := createDB(t)
	var seen []uuid.UUID
	router := newRouter(db, &seen)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-uuid"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A fresh session replaces the malformed cookie.
	require.Len(t, seen, 1)
	assert.NotEqual(t, uuid.Nil, seen[0])
	require.Len(t, w.Result().Cookies(), 1)
	assert.NotEqual(t, "not-a-uuid", w.Result().Cookies()[0].Value)
}

func TestFromContextWithoutSession(t *testing.T) {
	assert.Equal(t, uuid.Nil, session.FromContext(context.Background()))
}
