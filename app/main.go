package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jobdesk/jobdesk/app/notify"
	"github.com/jobdesk/jobdesk/app/store"
	"github.com/jobdesk/jobdesk/app/web"
)

var opts struct {
	Address string `short:"a" long:"address" env:"JOBDESK_ADDRESS" default:":8080" description:"web server listen address"`

	Notify struct {
		WebhookURLs  []string      `long:"webhook" env:"WEBHOOK" description:"webhook url(s) for application events" env-delim:","`
		ToEmails     []string      `long:"to" env:"TO" description:"email recipient(s) for application events" env-delim:","`
		FromEmail    string        `long:"from" env:"FROM" description:"email from address"`
		SMTPHost     string        `long:"smtp-host" env:"SMTP_HOST" description:"SMTP host"`
		SMTPPort     int           `long:"smtp-port" env:"SMTP_PORT" default:"25" description:"SMTP port"`
		SMTPTLS      bool          `long:"smtp-tls" env:"SMTP_TLS" description:"enable SMTP TLS"`
		SMTPUsername string        `long:"smtp-username" env:"SMTP_USERNAME" description:"SMTP user name"`
		SMTPPassword string        `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
		Timeout      time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"per-delivery timeout"`
	} `group:"notify" namespace:"notify" env-namespace:"JOBDESK_NOTIFY"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable file logging"`
		FilePath        string `long:"file" env:"FILE" default:"jobdesk.log" description:"log file path"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in megabytes"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of rotated log files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"28" description:"max age of rotated log files in days"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"enable compression of rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"JOBDESK_LOG"`

	Dbg bool `long:"dbg" env:"JOBDESK_DEBUG" description:"debug mode"`
}

var revision = "unknown"

func main() {
	fmt.Printf("jobdesk %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT and SIGTERM

	if err := run(ctx); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

// run wires the store, the notification service and the web server
func run(ctx context.Context) error {
	dataStore := store.New()

	cfg := web.Config{Store: dataStore, Version: revision}
	if svc := makeNotifier(); svc != nil {
		log.Printf("[INFO] %s", svc)
		cfg.Notifier = svc
	}

	srv, err := web.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	return srv.Run(ctx, opts.Address)
}

// makeNotifier creates the notification service, nil if nothing configured
func makeNotifier() *notify.Service {
	return notify.NewService(notify.Params{
		WebhookURLs: opts.Notify.WebhookURLs,
		ToEmails:    opts.Notify.ToEmails,
		FromEmail:   opts.Notify.FromEmail,
		SMTPHost:    opts.Notify.SMTPHost,
		SMTPPort:    opts.Notify.SMTPPort,
		SMTPTLS:     opts.Notify.SMTPTLS,
		Username:    opts.Notify.SMTPUsername,
		Password:    opts.Notify.SMTPPassword,
		Timeout:     opts.Notify.Timeout,
	})
}

// setupLogs configures lgr and returns the writer logs go to. With file
// logging enabled the writer is a lumberjack rotator.
func setupLogs() io.Writer {
	logOpts := []log.Option{log.Msec, log.LevelBraces}
	if opts.Dbg {
		logOpts = []log.Option{log.Debug, log.CallerFile, log.CallerFunc, log.Msec, log.LevelBraces}
	}

	var out io.Writer = os.Stdout
	if opts.Log.Enabled && opts.Log.FilePath != "" {
		out = &lumberjack.Logger{
			Filename:   opts.Log.FilePath,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
		logOpts = append(logOpts, log.Out(out))
	}

	log.Setup(logOpts...)
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			cancel() // terminate on SIGTERM and SIGINT
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
