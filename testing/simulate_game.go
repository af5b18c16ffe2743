// Command simulate_game replays a key script against an adventure and
// prints a transcript of every press, without a terminal UI.
//
//	go run ./testing -adventure data/adventure.yaml -keys "NUMLTI"
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/tatianab/text-adventure/internal/config"
	"github.com/tatianab/text-adventure/internal/engine"
	"github.com/tatianab/text-adventure/internal/models"
	"github.com/tatianab/text-adventure/internal/observability"
	"github.com/tatianab/text-adventure/internal/store"
)

func main() {
	adventurePath := flag.String("adventure", "data/adventure.yaml", "adventure file to play")
	script := flag.String("keys", "", "keys to press, in order; whitespace is ignored")
	start := flag.Int("start", 0, "start location id")
	level := flag.String("log-level", "warn", "log level written to stderr")
	flag.Parse()

	logger, err := observability.NewLogger(config.LoggingConfig{Level: *level, Format: "console", Output: "stderr"})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	session, err := engine.Open(context.Background(), store.NewFileStore(logger), *adventurePath,
		engine.WithStartLocation(*start),
		engine.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to open adventure: %v", err)
	}

	if err := simulate(session, *script, os.Stdout); err != nil {
		logger.Error("simulation stopped", zap.Error(err))
		os.Exit(1)
	}
}

// transcript counts redraws and tracks the inventory panel so the
// transcript can report what a real renderer would have shown.
type transcript struct {
	redraws          int
	inventoryVisible bool
}

func (t *transcript) Enable()  { t.inventoryVisible = true }
func (t *transcript) Disable() { t.inventoryVisible = false }
func (t *transcript) Toggle()  { t.inventoryVisible = !t.inventoryVisible }
func (t *transcript) Redraw()  { t.redraws++ }

// simulate begins session and presses each key of script in turn. Every
// press is released before the next one, as a terminal would.
func simulate(session *engine.Session, script string, w io.Writer) error {
	tr := &transcript{}
	session.SetRenderer(tr)
	if err := session.Begin(); err != nil {
		return err
	}
	defer session.Close()

	fmt.Fprintln(w, "--- Begin ---")
	describe(w, session.View(), tr)

	turn := 0
	for _, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		turn++
		key := string(r)

		before := tr.redraws
		action, err := session.HandleKey(key)
		session.KeyReleased()

		fmt.Fprintf(w, "\n--- Turn %d: %q ---\n", turn, key)
		switch {
		case err != nil:
			fmt.Fprintf(w, "Action: %s (error: %v)\n", action, err)
		case action == engine.ActionNone:
			fmt.Fprintln(w, "Ignored")
			continue
		default:
			fmt.Fprintf(w, "Action: %s\n", action)
		}
		if tr.redraws != before {
			describe(w, session.View(), tr)
		}
	}
	return nil
}

func describe(w io.Writer, v engine.View, tr *transcript) {
	fmt.Fprintf(w, "State: %s\n", v.State)
	fmt.Fprintf(w, "Location: %s\n", v.Title)
	fmt.Fprintf(w, "Items: %s\n", names(v.Items))
	if tr.inventoryVisible {
		fmt.Fprintf(w, "Inventory: %s\n", names(v.Inventory))
	}
	if v.Selected != nil {
		fmt.Fprintf(w, "Selected: %s\n", v.Selected.Name)
	}
}

func names(items []models.Item) string {
	if len(items) == 0 {
		return "(none)"
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return strings.Join(out, ", ")
}
