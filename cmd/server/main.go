package main

import (
	"log"

	"github.com/reversilabs/flipdisc/internal"
	"github.com/reversilabs/flipdisc/internal/config"
)

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
