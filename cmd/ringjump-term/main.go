package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"ringjump/internal/app"
	"ringjump/internal/audio"
	"ringjump/internal/session"
	"ringjump/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ringjump-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := app.NewConfig()
	if err := cfg.ApplyEnv(".env"); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sc, err := cfg.SessionConfig()
	if err != nil {
		return err
	}
	// stderr belongs to the screen; without a log file logs are dropped.
	logger, closer, err := cfg.OpenLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	var player *audio.Player
	opts := []session.Option{session.WithLogger(logger)}
	if cfg.Sound {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			logger.Errorf("audio disabled: %v", err)
		}
		defer player.Close()
		opts = append(opts, session.WithListener(player))
	}
	sess := session.New(sc, opts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := term.NewHost(screen, sess, player, logger, cfg.TPS)
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Infof("final scores %v", sess.FinalScores())
	return nil
}
