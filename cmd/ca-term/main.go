// Command ca-term runs the Wireworld editor in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"wireworld/internal/config"
	"wireworld/internal/driver"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/term"
	"wireworld/internal/web"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()

	if err := run(engine, screen, cfg); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	screen.Fini()
}

func run(engine *wireworld.Engine, screen tcell.Screen, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := term.New(screen, engine, cfg.Seed)
	drv := driver.New(engine)
	drv.OnTick(view.Wake)

	group, groupCtx := errgroup.WithContext(ctx)
	if cfg.Listen != "" {
		hub := web.NewHub()
		publish := func() { hub.Publish(web.Capture(engine)) }
		publish()
		drv.OnTick(publish)
		view.OnChange(publish)
		group.Go(func() error {
			return web.NewServer(hub).ListenAndServe(groupCtx, cfg.Listen)
		})
	}
	group.Go(func() error { return drv.Run(groupCtx) })
	group.Go(func() error {
		defer cancel()
		return view.Run(groupCtx)
	})
	return group.Wait()
}
