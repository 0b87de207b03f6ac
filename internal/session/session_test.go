package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"creatortrust/internal/domain"
	"creatortrust/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIStub(t *testing.T, calls *int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte(`{"success":true,"data":{"user":{"id":1,"email":"a@b.c","user_type":"creator"},"access_token":"tok","token_type":"bearer"}}`))
		case "/api/auth/me":
			if r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`))
				return
			}
			w.Write([]byte(`{"success":true,"data":{"user":{"id":1,"email":"a@b.c","user_type":"creator"},"profile":null}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestStore_Bootstrap_NoTokenMakesNoCalls(t *testing.T) {
	var calls int64
	srv := newAPIStub(t, &calls)
	defer srv.Close()

	c, err := client.New(srv.URL, client.NewMemoryTokenStore(), srv.Client())
	require.NoError(t, err)

	store := New(c)
	require.NoError(t, store.Bootstrap(context.Background()))

	assert.False(t, store.Authenticated())
	assert.EqualValues(t, 0, atomic.LoadInt64(&calls))
}

func TestStore_Bootstrap_ValidToken(t *testing.T) {
	var calls int64
	srv := newAPIStub(t, &calls)
	defer srv.Close()

	tokens := client.NewMemoryTokenStore()
	require.NoError(t, tokens.Save("tok"))

	c, err := client.New(srv.URL, tokens, srv.Client())
	require.NoError(t, err)

	store := New(c)
	require.NoError(t, store.Bootstrap(context.Background()))

	assert.True(t, store.Authenticated())
	assert.Equal(t, domain.RoleCreator, store.Role())
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls))
}

func TestStore_Bootstrap_RejectedTokenIsCleared(t *testing.T) {
	var calls int64
	srv := newAPIStub(t, &calls)
	defer srv.Close()

	tokens := client.NewMemoryTokenStore()
	require.NoError(t, tokens.Save("stale"))

	c, err := client.New(srv.URL, tokens, srv.Client())
	require.NoError(t, err)

	store := New(c)
	require.NoError(t, store.Bootstrap(context.Background()))

	assert.False(t, store.Authenticated())
	assert.Empty(t, c.Token())
	persisted, _ := tokens.Load()
	assert.Empty(t, persisted)
}

func TestStore_Login_ThenCurrent(t *testing.T) {
	var calls int64
	srv := newAPIStub(t, &calls)
	defer srv.Close()

	c, err := client.New(srv.URL, client.NewMemoryTokenStore(), srv.Client())
	require.NoError(t, err)

	store := New(c)
	require.NoError(t, store.Login(context.Background(), "a@b.c", "secret"))

	id := store.Current()
	require.NotNil(t, id)
	assert.Equal(t, int64(1), id.User.ID)
}

func TestStore_RefreshFailureClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`))
	}))
	defer srv.Close()

	tokens := client.NewMemoryTokenStore()
	require.NoError(t, tokens.Save("tok"))

	c, err := client.New(srv.URL, tokens, srv.Client())
	require.NoError(t, err)

	store := New(c)
	err = store.RefreshUser(context.Background())
	require.Error(t, err)

	assert.False(t, store.Authenticated())
	assert.Empty(t, c.Token())
}

func TestStore_Logout_Idempotent(t *testing.T) {
	var calls int64
	srv := newAPIStub(t, &calls)
	defer srv.Close()

	c, err := client.New(srv.URL, client.NewMemoryTokenStore(), srv.Client())
	require.NoError(t, err)

	store := New(c)
	require.NoError(t, store.Login(context.Background(), "a@b.c", "secret"))
	before := atomic.LoadInt64(&calls)

	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())

	assert.False(t, store.Authenticated())
	assert.Equal(t, domain.Role(""), store.Role())
	// Logout never touches the network.
	assert.Equal(t, before, atomic.LoadInt64(&calls))
}
