package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/doko/internal/config"
	"github.com/jask/doko/internal/database"
	"github.com/jask/doko/internal/database/repository"
	"github.com/jask/doko/internal/game"
	"github.com/jask/doko/internal/input"
	"github.com/jask/doko/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string) int {
	fs := flag.NewFlagSet("doko", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default $DOKO_CONFIG or ~/.config/doko/config.toml)")
	writeConfig := fs.String("write-config", "", "write the default config to this path and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *writeConfig != "" {
		if err := config.WriteDefault(*writeConfig); err != nil {
			log.Printf("write config: %v", err)
			return 1
		}
		fmt.Printf("wrote %s\n", *writeConfig)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "doko")
		if err != nil {
			log.Printf("log file: %v", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	db, err := database.OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "open ledger: %v\n", err)
		return 1
	}
	defer db.Close()

	session := game.NewSession(game.Options{
		Tokens:        game.UUIDTokens{},
		Policy:        game.StandardPolicy(cfg.Rules()),
		MaxNameLength: cfg.UI.MaxNameLength,
	})
	machine := input.New(session, input.Config{StayInAddPlayer: cfg.UI.StayInAddPlayer})

	p := tea.NewProgram(tui.New(context.Background(), machine, repository.NewRoundRepo(db)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
