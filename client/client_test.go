package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"message": message,
		"data":    data,
	})
}

func loginHandler(role string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			writeEnvelope(w, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "Login successful", map[string]interface{}{
			"token":        "access-1",
			"refreshToken": "refresh-1",
			"user": Identity{
				ID: 1, Username: "dina", Email: body["email"], Role: role,
			},
		})
	}
}

func TestLoginPersistsSession(t *testing.T) {
	srv := httptest.NewServer(loginHandler("customer"))
	defer srv.Close()

	store := newTestStore(t)
	c := New(srv.URL, store)

	sess, err := c.Login(context.Background(), "dina@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "access-1", sess.AccessToken)
	assert.Equal(t, "refresh-1", sess.RefreshToken)
	assert.Equal(t, "customer", sess.User.Role)

	persisted := c.Session()
	assert.True(t, persisted.LoggedIn())
	assert.Equal(t, *sess, persisted)
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(loginHandler("customer"))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))

	_, err := c.Login(context.Background(), "dina@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, c.Session().LoggedIn())
}

func TestLoginRequiredRoleMismatch(t *testing.T) {
	srv := httptest.NewServer(loginHandler("customer"))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t), WithRequiredRole("admin"))

	_, err := c.Login(context.Background(), "dina@example.com", "secret")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, c.Session().LoggedIn(),
		"a rejected login must not persist anything")
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, "OK", []string{})
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "access-1", RefreshToken: "refresh-1"})

	c := New(srv.URL, store)
	_, err := c.Do(context.Background(), http.MethodGet, "/api/coffees", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-1", gotAuth)
}

func TestDoRefreshesOnceAndRetries(t *testing.T) {
	var refreshCalls, apiCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh-token" {
			atomic.AddInt32(&refreshCalls, 1)
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			require.Equal(t, "refresh-1", body["refreshToken"])
			writeEnvelope(w, http.StatusOK, "Token refreshed", map[string]string{
				"accessToken": "access-2",
			})
			return
		}
		atomic.AddInt32(&apiCalls, 1)
		if r.Header.Get("Authorization") != "Bearer access-2" {
			writeEnvelope(w, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "Orders retrieved", []string{})
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "stale", RefreshToken: "refresh-1"})

	c := New(srv.URL, store)
	resp, err := c.Do(context.Background(), http.MethodGet, "/api/orders", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, atomic.LoadInt32(&refreshCalls))
	assert.EqualValues(t, 2, atomic.LoadInt32(&apiCalls))
	assert.Equal(t, "access-2", c.Session().AccessToken,
		"the refreshed token must be persisted")
	assert.Equal(t, "refresh-1", c.Session().RefreshToken)
}

func TestDoWithoutRefreshTokenClearsSession(t *testing.T) {
	var apiCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&apiCalls, 1)
		writeEnvelope(w, http.StatusUnauthorized, "Invalid or expired token", nil)
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "stale"})

	var expired bool
	c := New(srv.URL, store, WithSessionExpiredHandler(func() { expired = true }))

	_, err := c.Do(context.Background(), http.MethodGet, "/api/orders", nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.EqualValues(t, 1, atomic.LoadInt32(&apiCalls), "no retry without a refresh token")
	assert.False(t, c.Session().LoggedIn())
	assert.True(t, expired)
}

func TestDoFailedRefreshClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh-token" {
			writeEnvelope(w, http.StatusUnauthorized, "Invalid refresh token", nil)
			return
		}
		writeEnvelope(w, http.StatusUnauthorized, "Invalid or expired token", nil)
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "stale", RefreshToken: "revoked"})

	var expired bool
	c := New(srv.URL, store, WithSessionExpiredHandler(func() { expired = true }))

	_, err := c.Do(context.Background(), http.MethodGet, "/api/orders", nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, c.Session().LoggedIn())
	assert.True(t, expired)
}

func TestDoSecondUnauthorizedDoesNotLoop(t *testing.T) {
	var apiCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh-token" {
			writeEnvelope(w, http.StatusOK, "Token refreshed", map[string]string{
				"accessToken": "access-2",
			})
			return
		}
		atomic.AddInt32(&apiCalls, 1)
		writeEnvelope(w, http.StatusUnauthorized, "Invalid or expired token", nil)
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "stale", RefreshToken: "refresh-1"})

	c := New(srv.URL, store)
	_, err := c.Do(context.Background(), http.MethodGet, "/api/orders", nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.EqualValues(t, 2, atomic.LoadInt32(&apiCalls), "exactly one retry")
	assert.False(t, c.Session().LoggedIn())
}

func TestRefreshCoalescesConcurrentCallers(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		time.Sleep(50 * time.Millisecond)
		writeEnvelope(w, http.StatusOK, "Token refreshed", map[string]string{
			"accessToken": "access-2",
		})
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "stale", RefreshToken: "refresh-1"})

	c := New(srv.URL, store)

	var wg sync.WaitGroup
	tokens := make([]string, 10)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := c.Refresh(context.Background())
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&refreshCalls),
		"concurrent refreshes must share one request")
	for _, token := range tokens {
		assert.Equal(t, "access-2", token)
	}
}

func TestRefreshSurvivesCallerCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		writeEnvelope(w, http.StatusOK, "Token refreshed", map[string]string{
			"accessToken": "access-2",
		})
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "stale", RefreshToken: "refresh-1"})

	c := New(srv.URL, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var token string
	var err error
	go func() {
		token, err = c.Refresh(ctx)
		close(done)
	}()

	<-started
	cancel()
	<-done

	require.NoError(t, err, "cancelling one caller must not abort the shared refresh")
	assert.Equal(t, "access-2", token)
	assert.Equal(t, "access-2", c.Session().AccessToken)
}

func TestDoWrapsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, "Coffee not found", nil)
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "access-1", RefreshToken: "refresh-1"})

	c := New(srv.URL, store)
	_, err := c.Do(context.Background(), http.MethodGet, "/api/coffees/99", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Coffee not found", apiErr.Message)
	assert.True(t, c.Session().LoggedIn(), "non-auth errors keep the session")
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "access-1", RefreshToken: "refresh-1"})

	cart := NewCart(store)
	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4}, 1)

	c := New("http://unused", store)
	c.Logout()

	assert.False(t, c.Session().LoggedIn())
	assert.Len(t, NewCart(store).Items(), 1, "logout must not touch the cart")
}
