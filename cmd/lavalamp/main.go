package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lavalamp/internal/config"
	"lavalamp/internal/game"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lavalamp: ")

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := game.RunDesktop(cfg); err != nil {
		log.Fatal(err)
	}
}
