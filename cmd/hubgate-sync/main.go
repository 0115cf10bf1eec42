package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"hubgate/internal/hub"
	"hubgate/internal/platform/config"
	"hubgate/internal/platform/logger"
	"hubgate/internal/platform/store"

	signsvc "hubgate/internal/services/signers/service"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hubgate-sync <fid>")
		os.Exit(2)
	}
	fid, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad fid %q\n", os.Args[1])
		os.Exit(2)
	}

	root := config.New()
	l := logger.Get()

	ctx := context.Background()

	st, err := store.Open(ctx, store.Config{
		AppName: "hubgate-sync",
		PG: store.PGConfig{
			Enabled:  true,
			URL:      root.MustString("DATABASE_URL"),
			MaxConns: 2,
		},
	}, store.WithLogger(*logger.Get()))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() { _ = st.Close(ctx) }()

	hubClient, err := hub.Dial(hub.Config{URL: root.MustString("SERVER_URL")})
	if err != nil {
		l.Panic().Err(err).Msg("hub dial failed")
	}
	defer func() { _ = hubClient.Close() }()

	svc := signsvc.New(st.PG, hubClient)
	n, err := svc.SyncFid(ctx, fid)
	if err != nil {
		l.Fatal().Err(err).Uint64("fid", fid).Msg("signer sync failed")
	}
	l.Info().Uint64("fid", fid).Int("signers", n).Msg("signer sync complete")
}
