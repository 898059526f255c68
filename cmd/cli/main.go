package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophsocial/internal/buildinfo"
	"github.com/dmitrijs2005/gophsocial/internal/client/api"
	"github.com/dmitrijs2005/gophsocial/internal/client/cli"
	"github.com/dmitrijs2005/gophsocial/internal/client/config"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/social"
	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	store, closeStore, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn(ctx, "closing session store", "error", err)
		}
	}()

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	var app *cli.App
	mgr := session.NewManager(store,
		api.NewBackend(cfg.APIBaseURL, api.WithHTTPClient(httpClient), api.WithLogger(logger)),
		session.WithSettings(cfg.SessionSettings()),
		session.WithLogger(logger),
		session.WithNavigator(session.NavigatorFunc(func(r session.LogoutReason) {
			if app != nil {
				app.ToEntry(r)
			}
		})),
	)
	defer mgr.Close()

	client := api.NewClient(cfg.APIBaseURL, mgr,
		api.WithHTTPClient(httpClient),
		api.WithLogger(logger),
		api.WithRateLimitPolicy(cfg.RateLimitAttempts, cfg.RetryAfter),
		api.WithMinPasswordLength(cfg.MinPasswordLength),
	)

	app = cli.NewApp(cfg, mgr, client, social.New(client, social.WithLogger(logger)), logger)
	app.Run(ctx)

}
