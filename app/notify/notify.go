// Package notify delivers application lifecycle events (new application,
// status change) to configured webhook and email destinations.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/go-pkgz/syncs"
)

// concurrentSends caps parallel deliveries during fan-out
const concurrentSends = 4

// sender is a subset of go-pkgz/notify senders used by the service
type sender interface {
	Send(ctx context.Context, destination, text string) error
}

// destination pairs a sender with the destination URL it delivers to
type destination struct {
	url    string
	sender sender
}

// Params holds notification configuration
type Params struct {
	WebhookURLs []string // http(s) endpoints to post events to

	ToEmails  []string // email recipients, empty disables email delivery
	FromEmail string
	SMTPHost  string
	SMTPPort  int
	SMTPTLS   bool
	Username  string
	Password  string

	Timeout time.Duration // per-delivery timeout, defaults to 10s
}

// Service fans application events out to all configured destinations.
// A nil *Service is valid and means notifications are disabled.
type Service struct {
	destinations []destination
	repeater     *repeater.Repeater
}

// NewService creates a notification service for the given destinations,
// returns nil if nothing is configured
func NewService(params Params) *Service {
	timeout := params.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	var destinations []destination

	if len(params.WebhookURLs) > 0 {
		wh := notify.NewWebhook(notify.WebhookParams{
			Timeout: timeout,
			Headers: []string{"Content-Type:application/json"},
		})
		for _, u := range params.WebhookURLs {
			destinations = append(destinations, destination{url: u, sender: wh})
		}
	}

	if len(params.ToEmails) > 0 {
		email := notify.NewEmail(notify.SMTPParams{
			Host:     params.SMTPHost,
			Port:     params.SMTPPort,
			TLS:      params.SMTPTLS,
			Username: params.Username,
			Password: params.Password,
			TimeOut:  timeout,
		})
		destinations = append(destinations, destination{
			url:    emailDestination(params.ToEmails, params.FromEmail),
			sender: email,
		})
	}

	if len(destinations) == 0 {
		return nil
	}

	return &Service{
		destinations: destinations,
		repeater:     repeater.New(&strategy.Backoff{Repeats: 3, Duration: time.Second, Factor: 2, Jitter: true}),
	}
}

// Send delivers the text to every destination, retrying each with backoff.
// It blocks until all deliveries finished and returns the combined failures.
func (s *Service) Send(ctx context.Context, text string) error {
	if s == nil {
		return nil
	}

	var mu sync.Mutex
	var errs []error

	wg := syncs.NewSizedGroup(concurrentSends, syncs.Context(ctx))
	for _, d := range s.destinations {
		d := d
		wg.Go(func(ctx context.Context) {
			err := s.repeater.Do(ctx, func() error { return d.sender.Send(ctx, d.url, text) })
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("failed to deliver to %s: %w", d.url, err))
				mu.Unlock()
				return
			}
			log.Printf("[DEBUG] notification delivered to %s", d.url)
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

// String describes the configured destinations for startup logging
func (s *Service) String() string {
	if s == nil {
		return "notifications disabled"
	}
	urls := make([]string, 0, len(s.destinations))
	for _, d := range s.destinations {
		urls = append(urls, d.url)
	}
	return "notifications to " + strings.Join(urls, ", ")
}

// emailDestination builds a go-pkgz/notify mailto URL for the recipients
func emailDestination(to []string, from string) string {
	q := url.Values{}
	q.Set("subject", "jobdesk notification")
	if from != "" {
		q.Set("from", from)
	}
	return "mailto:" + strings.Join(to, ",") + "?" + q.Encode()
}
