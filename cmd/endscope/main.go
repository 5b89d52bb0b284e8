//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"endscope/internal/app"
	"endscope/internal/core"
	_ "endscope/internal/views/islands"
	_ "endscope/internal/views/slice"
	_ "endscope/internal/views/surface"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Views()[cfg.View]
	if !ok {
		log.Fatalf("unknown view %q", cfg.View)
	}

	view := factory(cfg.ViewConfig())
	view.SetBlocksPerCell(cfg.Zoom)
	view.Reset(cfg.Seed)

	game := app.New(view, cfg)
	size := view.Size()

	ebiten.SetWindowTitle("endscope: " + view.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
