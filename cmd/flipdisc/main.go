package main

import (
	"log"
	"os"

	"github.com/reversilabs/flipdisc/internal/cli"
	"github.com/reversilabs/flipdisc/internal/config"
	"github.com/reversilabs/flipdisc/internal/search"
)

func main() {
	cfg := config.LoadGameConfig()

	cli.PrintBanner(os.Stdout)

	difficulty, err := cli.PromptDifficulty(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to select difficulty: %v", err)
	}

	searcher := search.NewSearcher(
		search.WithRounds(cfg.SearchRounds),
		search.WithBudget(cfg.SearchBudget),
		search.WithDifficulty(difficulty),
		search.WithWorkers(cfg.SearchWorkers),
	)

	game := cli.NewGame(searcher, os.Stdin, os.Stdout)
	if err := game.Run(); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}
