package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deskhound/deskhound/pkg/cli/config"
	server "github.com/deskhound/deskhound/pkg/controller/http"
	"github.com/deskhound/deskhound/pkg/repository"
	slack_svc "github.com/deskhound/deskhound/pkg/service/slack"
	"github.com/deskhound/deskhound/pkg/usecase"
	"github.com/deskhound/deskhound/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr               string
		membershipInterval time.Duration
		sentryCfg          config.Sentry
		slackCfg           config.Slack
		aiCfg              config.AI
		snapshotCfg        config.Snapshot
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("DESKHOUND_ADDR"),
				Usage:       "Listen address (default: 127.0.0.1:8080)",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "membership-interval",
				Sources:     cli.EnvVars("DESKHOUND_MEMBERSHIP_INTERVAL"),
				Usage:       "Refresh interval of the tickets-channel membership cache",
				Value:       time.Hour,
				Destination: &membershipInterval,
			},
		},
		sentryCfg.Flags(),
		slackCfg.Flags(),
		aiCfg.Flags(),
		snapshotCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"membership-interval", membershipInterval,
				"sentry", sentryCfg,
				"slack", slackCfg,
				"ai", aiCfg,
				"snapshot", snapshotCfg,
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			aiClient, err := aiCfg.Configure()
			if err != nil {
				return err
			}

			registry := repository.NewRegistry()
			store, err := snapshotCfg.Configure(registry)
			if err != nil {
				return err
			}

			restored, err := store.Load(ctx)
			if err != nil {
				return err
			}
			if restored {
				logging.From(ctx).Info("restored tickets from snapshot", "count", registry.Count())
			}

			membership := slack_svc.NewMembershipCache(slackSvc.GetClient(), slackCfg.TicketsChannel(), membershipInterval)
			if err := membership.Refresh(ctx); err != nil {
				return err
			}

			go membership.Run(ctx)
			go store.Run(ctx)

			uc := usecase.New(registry, slackSvc, membership,
				slackCfg.HelpChannel(), slackCfg.TicketsChannel(),
				usecase.WithAIClient(aiClient),
				usecase.WithStore(store),
			)

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(uc, server.WithSlackVerifier(slackCfg.Verifier())),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				sdCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				store.Save(sdCtx)

				return httpServer.Shutdown(sdCtx)
			}
		},
	}
}
