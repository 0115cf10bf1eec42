package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"hubgate/internal/hub"
	"hubgate/internal/modkit/repokit"
	"hubgate/internal/platform/config"
	"hubgate/internal/platform/logger"
	phttp "hubgate/internal/platform/net/http"
	"hubgate/internal/platform/store"

	"hubgate/internal/services/api"
	subsvc "hubgate/internal/services/subscriber/service"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	root := config.New()
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "hubgate",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         root.MustString("DATABASE_URL"),
				MaxConns:    int32(root.MayInt("DATABASE_MAX_CONNS", 4)),
				SlowQueryMs: root.MayInt("DATABASE_SLOW_MS", 500),
				LogSQL:      root.MayBool("DATABASE_LOG_SQL", false),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(context.Background(), st)

	// optional per-transaction statement timeout
	if ms := root.MayInt("DATABASE_TX_TIMEOUT_MS", 0); ms > 0 {
		st.PG = repokit.WithBeginHooks(st.PG, func(ctx context.Context, q repokit.Queryer) error {
			_, err := q.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", ms))
			return err
		})
	}

	hubClient, err := hub.Dial(hub.Config{URL: root.MustString("SERVER_URL")})
	if err != nil {
		l.Panic().Err(err).Msg("hub dial failed")
	}
	defer func() {
		if err := hubClient.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close hub conn")
		}
	}()

	// http server (reads BIND_ADDR)
	srv := phttp.NewServer(root)

	rt := api.Mount(srv.Router(), api.Options{
		Config: root,
		Store:  st,
		Hub:    hubClient,
		Logger: l,
	})

	sub := subsvc.New(hubClient, rt.Tasks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error {
		err := sub.Run(ctx)
		if err == context.Canceled {
			return nil
		}
		return err
	})

	// the worker outlives ctx slightly: once the queue closes it drains the
	// backlog it already accepted, then stops
	workerDone := make(chan error, 1)
	go func() { workerDone <- rt.Worker.Run(context.Background()) }()

	g.Go(func() error {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		l.Error().Err(err).Msg("gateway stopped with error")
	}

	rt.CloseQueue()
	if err := <-workerDone; err != nil && err != context.Canceled {
		l.Error().Err(err).Msg("index worker stopped with error")
	}
	l.Info().Msg("gateway stopped")
}
