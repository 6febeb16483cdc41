//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"ringjump/internal/app"
	"ringjump/internal/audio"
	"ringjump/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.ApplyEnv(".env"); err != nil {
		log.Fatalf("environment: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sc, err := cfg.SessionConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, closer, err := cfg.OpenLogger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	var player *audio.Player
	opts := []session.Option{session.WithLogger(logger)}
	if cfg.Sound {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			// Non-fatal, the game runs without sound.
			logger.Errorf("audio disabled: %v", err)
		}
		defer player.Close()
		opts = append(opts, session.WithListener(player))
	}

	sess := session.New(sc, opts...)
	game := app.New(sess, cfg, player, logger)
	w, h := game.Size()

	ebiten.SetWindowTitle("ringjump - " + sess.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	logger.Infof("final scores %v", sess.FinalScores())
}
