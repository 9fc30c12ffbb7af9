package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdesk/jobdesk/app/store"
)

func TestNew(t *testing.T) {
	t.Run("store required", func(t *testing.T) {
		_, err := New(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store is required")
	})

	t.Run("notifier optional", func(t *testing.T) {
		srv, err := New(Config{Store: store.New(), Version: "1.0"})
		require.NoError(t, err)
		assert.Nil(t, srv.notifier)
		assert.Equal(t, "1.0", srv.version)
	})
}

func TestServer_routes(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	client := http.Client{Timeout: time.Second}

	t.Run("ping", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("status endpoint", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/status")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Cache-Control"), "no-cache")

		var status StatusResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
		assert.Equal(t, "test", status.Version)
		assert.Equal(t, 8, status.Records.Categories, "seeded categories counted")
		assert.Zero(t, status.Records.Users)
	})

	t.Run("patch application status routed", func(t *testing.T) {
		srv.store.CreateApplication(store.Application{JobID: 1, UserID: 1, Status: "applied", AppliedDate: time.Now()})

		req, err := http.NewRequest(http.MethodPatch, ts.URL+"/api/applications/1/status",
			strings.NewReader(`{"status":"reviewed"}`))
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var app store.Application
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&app))
		assert.Equal(t, "reviewed", app.Status)
	})

	t.Run("user creation routed through the rate limiter", func(t *testing.T) {
		body := `{"username":"routed","password":"secret","email":"routed@example.com","userType":"employer"}`
		resp, err := client.Post(ts.URL+"/api/users", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("app info header set", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/categories")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "jobdesk", resp.Header.Get("App-Name"))
	})
}

func TestServer_RunShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	srv := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, fmt.Sprintf("127.0.0.1:%d", port)) }()

	// wait for the server to accept connections, then stop it
	require.Eventually(t, func() bool {
		resp, e := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if e != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_notify(t *testing.T) {
	notifier := &recordingNotifier{}
	srv, err := New(Config{Store: store.New(), Notifier: notifier, Version: "test"})
	require.NoError(t, err)

	srv.notify("first event")
	srv.notify("second event")

	require.Eventually(t, func() bool { return len(notifier.all()) == 2 },
		time.Second, 10*time.Millisecond)

	// nil notifier is a no-op
	srv.notifier = nil
	srv.notify("dropped")
}
