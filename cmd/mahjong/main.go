package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jaredfiacco2/mahjong-solitaire/internal/game"
	"github.com/jaredfiacco2/mahjong-solitaire/internal/ui"
)

func main() {
	layoutID := flag.String("layout", "turtle", "Board layout ("+strings.Join(game.LayoutIDs(), ", ")+")")
	seed := flag.Int64("seed", 0, "Random seed (0: derive from the clock)")
	logFile := flag.String("log", "", "Log file path (default: discard engine logs)")
	flag.Parse()

	// Redirect log output IMMEDIATELY — before any engine code runs.
	// The generator logs degraded deals with zerolog, which writes to
	// stderr by default, and any stderr output corrupts Bubbletea's
	// terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(io.Discard)
	}

	layout, ok := game.LayoutByID(*layoutID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown layout %q. Available: %s\n", *layoutID, strings.Join(game.LayoutIDs(), ", "))
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	session := game.NewSession(layout, game.DefaultGenConfig(), rng)

	model := ui.NewModel(session)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
