package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/poupanca/poupanca/internal/shared"
)

func newTestHandler(t *testing.T) (*Handler, *memoryAuthRepo, *shared.SessionManager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sessions := shared.NewSessionManager(client, "test_session", time.Hour, false)
	repo := newMemoryAuthRepo()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), NewService(repo), sessions)
	return handler, repo, sessions
}

// withSession mimics the session middleware: load, attach to context, serve.
// Like the real middleware, the session is committed before the first header
// write so the cookie lands in the recorder's header snapshot.
func withSession(t *testing.T, sm *shared.SessionManager, fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	sess, err := sm.Load(req.Context(), req)
	require.NoError(t, err)
	ctx := shared.ContextWithSession(req.Context(), sess)

	rec := httptest.NewRecorder()
	committed := false
	commit := func() {
		if !committed {
			committed = true
			require.NoError(t, sm.Commit(context.Background(), rec, sess))
		}
	}
	fn(&commitBeforeWriteRecorder{ResponseWriter: rec, commit: commit}, req.WithContext(ctx))
	commit()
	return rec
}

type commitBeforeWriteRecorder struct {
	http.ResponseWriter
	commit func()
}

func (w *commitBeforeWriteRecorder) WriteHeader(statusCode int) {
	w.commit()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *commitBeforeWriteRecorder) Write(data []byte) (int, error) {
	w.commit()
	return w.ResponseWriter.Write(data)
}

func TestHandleRegisterCreatesAccountAndSession(t *testing.T) {
	handler, repo, sessions := newTestHandler(t)

	body := `{"email":"ana@example.com","name":"Ana","password":"senha-muito-boa"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := withSession(t, sessions, handler.handleRegister, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, repo.byEmail, "ana@example.com")
	require.NotEmpty(t, repo.sessions)
	require.NotContains(t, rec.Body.String(), "senha-muito-boa")
	require.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestHandleRegisterValidation(t *testing.T) {
	handler, _, sessions := newTestHandler(t)

	body := `{"email":"not-an-email","name":"A","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := withSession(t, sessions, handler.handleRegister, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{"))
	rec = withSession(t, sessions, handler.handleRegister, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLogin(t *testing.T) {
	handler, _, sessions := newTestHandler(t)
	ctx := context.Background()

	_, err := handler.service.Register(ctx, "bia@example.com", "Bia", "senha-correta")
	require.NoError(t, err)

	body := `{"email":"bia@example.com","password":"senha-correta"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := withSession(t, sessions, handler.handleLogin, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)

	// Wrong password yields 401 and no user on the session.
	body = `{"email":"bia@example.com","password":"senha-errada"}`
	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec = withSession(t, sessions, handler.handleLogin, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRotatesSessionID(t *testing.T) {
	handler, _, sessions := newTestHandler(t)
	ctx := context.Background()

	_, err := handler.service.Register(ctx, "davi@example.com", "Davi", "senha-correta")
	require.NoError(t, err)

	// Establish an anonymous session first, as a browser would.
	anonReq := httptest.NewRequest(http.MethodGet, "/", nil)
	anonRec := withSession(t, sessions, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, anonReq)
	anonCookie := anonRec.Result().Cookies()[0]

	body := `{"email":"davi@example.com","password":"senha-correta"}`
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	loginReq.AddCookie(anonCookie)
	loginRec := withSession(t, sessions, handler.handleLogin, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)

	// The authenticated session lives under a fresh ID.
	loginCookie := loginRec.Result().Cookies()[0]
	require.NotEqual(t, anonCookie.Value, loginCookie.Value)

	// The pre-login ID no longer resolves to anything.
	staleReq := httptest.NewRequest(http.MethodGet, "/", nil)
	staleReq.AddCookie(anonCookie)
	stale, err := sessions.Load(ctx, staleReq)
	require.NoError(t, err)
	require.Empty(t, stale.User())
	require.NotEqual(t, anonCookie.Value, stale.ID)
}

func TestHandleLogoutDestroysSession(t *testing.T) {
	handler, repo, sessions := newTestHandler(t)
	ctx := context.Background()

	user, err := handler.service.Register(ctx, "caio@example.com", "Caio", "senha-correta")
	require.NoError(t, err)

	body := `{"email":"caio@example.com","password":"senha-correta"}`
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	loginRec := withSession(t, sessions, handler.handleLogin, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)
	cookie := loginRec.Result().Cookies()[0]
	require.Len(t, repo.sessions, 1)
	require.Equal(t, user.ID, repo.sessions[cookie.Value])

	logoutReq := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutRec := withSession(t, sessions, handler.handleLogout, logoutReq)
	require.Equal(t, http.StatusNoContent, logoutRec.Code)
	require.Empty(t, repo.sessions)
}

func TestRequireUserMiddleware(t *testing.T) {
	_, _, sessions := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireUser(next)

	// No session in context.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Anonymous session.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := sessions.Load(req.Context(), req)
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req.WithContext(shared.ContextWithSession(req.Context(), sess)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Session bound to a user.
	sess.SetUser("b0a9f6f0-64f3-4f3f-9a44-8c5b3a1f0f11")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req.WithContext(shared.ContextWithSession(req.Context(), sess)))
	require.Equal(t, http.StatusOK, rec.Code)
}
