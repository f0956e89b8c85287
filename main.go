package main

import (
	"errors"
	"flag"
	"log"

	"github.com/iburimskiy/drift/internal/config"
	"github.com/iburimskiy/drift/internal/game"
	"github.com/iburimskiy/drift/internal/prefs"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "drift.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	store := prefs.NewStore(prefs.Open(cfg.AppName))

	g, err := game.NewGame(cfg, store, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()
	g.StartMedia()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
