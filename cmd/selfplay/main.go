package main

import (
	"log"

	"github.com/reversilabs/flipdisc/internal/bookclient"
	"github.com/reversilabs/flipdisc/internal/config"
)

func main() {
	config.SetLogLevel()

	cfg := config.LoadSelfplayConfig()
	gameCfg := config.LoadGameConfig()

	selfplay, err := bookclient.NewSelfplay(cfg, gameCfg)
	if err != nil {
		log.Fatalf("Failed to create selfplay client: %v", err)
	}

	if err := selfplay.Run(); err != nil {
		log.Fatalf("Selfplay failed: %v", err)
	}
}
