//go:build js && wasm

package main

import (
	"log"
	"syscall/js"

	"github.com/leterax/portfolio/pkg/carousel"
	"github.com/leterax/portfolio/pkg/carousel/dom"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[CAROUSEL] ")

	el := js.Global().Get("document").Call("querySelector", ".ring")
	if !el.Truthy() {
		log.Println("no .ring element, carousel disabled")
		return
	}

	cfg := carousel.DefaultConfig()
	if cards := el.Call("querySelectorAll", ".card").Get("length").Int(); cards > 0 {
		cfg.ItemCount = cards
	}

	dom.Attach(el, cfg)
	log.Printf("attached to ring with %d items", cfg.ItemCount)

	// Keep the callbacks alive for the lifetime of the page
	select {}
}
