package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/leterax/portfolio/pkg/carousel"
	"github.com/leterax/portfolio/pkg/render"
)

func init() {
	// OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	log.SetPrefix("[RINGVIEWER] ")

	configPath := flag.String("config", "", "carousel YAML config (embedded defaults when empty)")
	width := flag.Int("width", 1024, "window width")
	height := flag.Int("height", 768, "window height")
	items := flag.Int("items", 0, "number of cards (overrides the config when positive)")
	dumpConfig := flag.String("dump-config", "", "write the effective config to this file and exit")
	flag.Parse()

	cfg, err := carousel.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *items > 0 {
		cfg.ItemCount = *items
	}
	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			log.Fatalf("dump config: %v", err)
		}
		log.Printf("config written to %s", *dumpConfig)
		return
	}

	renderer, err := render.NewRenderer(*width, *height, "Portfolio Ring", cfg)
	if err != nil {
		log.Fatalf("init renderer: %v", err)
	}
	log.Printf("ring ready items=%d radius=%.2f", cfg.ItemCount, cfg.Ring.Radius)

	renderer.Run()
}
