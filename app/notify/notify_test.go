package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records deliveries and returns a fixed error
type fakeSender struct {
	mu    sync.Mutex
	calls []string // destination urls
	err   error
}

func (f *fakeSender) Send(_ context.Context, destination, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, destination)
	return f.err
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestNewService_EmptyDestinations(t *testing.T) {
	svc := NewService(Params{})
	require.Nil(t, svc)
	assert.Equal(t, "notifications disabled", svc.String())
	assert.NoError(t, svc.Send(context.Background(), "goes nowhere"))
}

func TestNewService_Destinations(t *testing.T) {
	svc := NewService(Params{
		WebhookURLs: []string{"https://example.com/hook1", "https://example.com/hook2"},
		ToEmails:    []string{"ops@example.com", "hr@example.com"},
		FromEmail:   "noreply@example.com",
		SMTPHost:    "localhost",
		SMTPPort:    2525,
	})
	require.NotNil(t, svc)
	require.Len(t, svc.destinations, 3)

	assert.Equal(t, "https://example.com/hook1", svc.destinations[0].url)
	assert.Equal(t, "https://example.com/hook2", svc.destinations[1].url)
	assert.Equal(t, "mailto:ops@example.com,hr@example.com?from=noreply%40example.com&subject=jobdesk+notification",
		svc.destinations[2].url)

	assert.Contains(t, svc.String(), "notifications to https://example.com/hook1")
	assert.Contains(t, svc.String(), "mailto:ops@example.com")
}

func TestService_Send(t *testing.T) {
	t.Run("all destinations delivered", func(t *testing.T) {
		ok := &fakeSender{}
		svc := &Service{
			destinations: []destination{
				{url: "https://example.com/hook", sender: ok},
				{url: "mailto:ops@example.com", sender: ok},
			},
			repeater: repeater.New(&strategy.Once{}),
		}

		require.NoError(t, svc.Send(context.Background(), "hello"))
		assert.Equal(t, 2, ok.callCount())
	})

	t.Run("failed destination reported, others still delivered", func(t *testing.T) {
		ok := &fakeSender{}
		bad := &fakeSender{err: errors.New("smtp down")}
		svc := &Service{
			destinations: []destination{
				{url: "https://example.com/hook", sender: ok},
				{url: "mailto:ops@example.com", sender: bad},
			},
			repeater: repeater.New(&strategy.Once{}),
		}

		err := svc.Send(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to deliver to mailto:ops@example.com")
		assert.Contains(t, err.Error(), "smtp down")
		assert.Equal(t, 1, ok.callCount())
	})

	t.Run("retries on transient failures", func(t *testing.T) {
		bad := &fakeSender{err: errors.New("refused")}
		svc := &Service{
			destinations: []destination{{url: "https://example.com/hook", sender: bad}},
			repeater: repeater.New(&strategy.FixedDelay{
				Repeats: 3, Delay: time.Millisecond}),
		}

		require.Error(t, svc.Send(context.Background(), "hello"))
		assert.Equal(t, 3, bad.callCount())
	})
}

func TestService_SendWebhook(t *testing.T) {
	received := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	svc := NewService(Params{WebhookURLs: []string{ts.URL}, Timeout: time.Second})
	require.NotNil(t, svc)

	require.NoError(t, svc.Send(context.Background(), "new application #1 for job 2"))

	select {
	case body := <-received:
		assert.Equal(t, "new application #1 for job 2", body)
	case <-time.After(time.Second):
		t.Fatal("webhook never called")
	}
}

func TestEmailDestination(t *testing.T) {
	assert.Equal(t, "mailto:a@example.com?subject=jobdesk+notification",
		emailDestination([]string{"a@example.com"}, ""))
	assert.Equal(t, "mailto:a@example.com,b@example.com?from=no%40example.com&subject=jobdesk+notification",
		emailDestination([]string{"a@example.com", "b@example.com"}, "no@example.com"))
}
