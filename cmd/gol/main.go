//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/board"
	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("grid %dx%d, delay %v, density %.2f, seed %d", cfg.Rows, cfg.Cols, cfg.Delay, cfg.Density, cfg.Seed)

	timer := core.NewTimer(nil)
	b := board.New(timer, cfg.BoardOptions())
	game := app.New(b, timer, cfg.Scale)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
