package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/board"
	"lifegrid/internal/core"
	"lifegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	timer := core.NewTimer(nil)
	b := board.New(timer, cfg.BoardOptions())
	err = term.Run(ctx, screen, b, timer, time.Second/time.Duration(cfg.TPS))
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("stopped after %d generations", b.Generation())
}
