package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/leterax/portfolio/pkg/carousel"
	"github.com/leterax/portfolio/pkg/termring"
)

func main() {
	log.SetPrefix("[RINGTERM] ")

	configPath := flag.String("config", "", "carousel YAML config (embedded defaults when empty)")
	logPath := flag.String("log", "", "write logs to this file (discarded when empty)")
	labels := flag.String("labels", "", "comma separated card titles")
	dumpConfig := flag.String("dump-config", "", "write the effective config to this file and exit")
	flag.Parse()

	if *dumpConfig != "" {
		cfg, err := carousel.LoadConfig(*configPath)
		if err == nil {
			err = cfg.WriteYAML(*dumpConfig)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "dump config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The screen owns stdout; logs only go to a file
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(*configPath, *labels); err != nil {
		fmt.Fprintf(os.Stderr, "ringterm: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, labels string) error {
	cfg, err := carousel.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	opts := termring.DefaultOptions()
	if labels != "" {
		opts.Labels = strings.Split(labels, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("ring ready items=%d", cfg.ItemCount)
	viewer := termring.NewViewer(screen, cfg, opts)
	if err := viewer.Run(ctx); err != nil {
		return err
	}
	log.Printf("ring closed rotation=%.1f", viewer.Controller().State().RotationY)
	return nil
}
