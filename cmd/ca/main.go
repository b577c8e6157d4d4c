//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"wireworld/internal/app"
	"wireworld/internal/config"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/web"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	simCfg, err := wireworld.FromMap(cfg.SimParams())
	if err != nil {
		log.Fatal(err)
	}
	engine, err := wireworld.NewWithConfig(simCfg)
	if err != nil {
		log.Fatal(err)
	}
	engine.Reset(cfg.Seed)
	engine.SetRunning(cfg.Running)

	game := app.New(engine, cfg.Scale, cfg.HUDWidth, cfg.Seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Listen != "" {
		hub := web.NewHub()
		hub.Publish(web.Capture(engine))
		game.OnChange(func() { hub.Publish(web.Capture(engine)) })
		go func() {
			if err := web.NewServer(hub).ListenAndServe(ctx, cfg.Listen); err != nil {
				log.Println(err)
			}
		}()
	}

	size := engine.Size()
	ebiten.SetWindowTitle("wireworld")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
