package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jmcardle/pickwheel/internal/state"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to pickwheel.db")
	last := flag.Int("last", 20, "show N most recently used contexts")
	ctxName := flag.String("context", "", "show single context detail with pick distribution")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/pickwheel.db [--last N] [--context name] [--json]")
		os.Exit(2)
	}

	store, err := state.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *ctxName != "" {
		if err := runDetailMode(store, *ctxName, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	Name          string `json:"name"`
	ContextID     string `json:"context_id"`
	Strategy      string `json:"strategy"`
	Seed          string `json:"seed,omitempty"`
	AvoidRepeat   bool   `json:"avoid_repeat"`
	PreviousIndex int    `json:"previous_index"`
	QueueLeft     int    `json:"queue_remaining"`
	UpdatedAt     string `json:"updated_at"`
}

func runListMode(store *state.Store, last int, jsonOut bool) error {
	contexts, err := store.ListContexts(last)
	if err != nil {
		return err
	}

	rows := make([]listRow, len(contexts))
	for i, c := range contexts {
		rows[i] = listRow{
			Name:          c.Name,
			ContextID:     c.ContextID,
			Strategy:      string(c.Strategy),
			Seed:          c.Seed,
			AvoidRepeat:   c.AvoidRepeat,
			PreviousIndex: c.Previous,
			QueueLeft:     len(c.Shuffle.Queue),
			UpdatedAt:     c.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}

	fmt.Printf("%-20s| %-10s| %-6s| %-5s| %-5s| %s\n",
		"Name", "Strategy", "Avoid", "Prev", "Bag", "Updated")
	fmt.Println(strings.Repeat("-", 72))
	for _, r := range rows {
		fmt.Printf("%-20s| %-10s| %-6v| %-5d| %-5d| %s\n",
			r.Name, r.Strategy, r.AvoidRepeat, r.PreviousIndex, r.QueueLeft, r.UpdatedAt)
	}
	fmt.Printf("\n%d contexts\n", len(rows))
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOut struct {
	Context listRow           `json:"context"`
	Counts  []state.PickCount `json:"pick_counts"`
}

func runDetailMode(store *state.Store, ctxName string, jsonOut bool) error {
	ctx, err := store.GetContextByName(ctxName)
	if err != nil {
		return err
	}

	counts, err := store.PickCounts(ctx.ContextID)
	if err != nil {
		return err
	}

	row := listRow{
		Name:          ctx.Name,
		ContextID:     ctx.ContextID,
		Strategy:      string(ctx.Strategy),
		Seed:          ctx.Seed,
		AvoidRepeat:   ctx.AvoidRepeat,
		PreviousIndex: ctx.Previous,
		QueueLeft:     len(ctx.Shuffle.Queue),
		UpdatedAt:     ctx.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(detailOut{Context: row, Counts: counts})
	}

	fmt.Printf("Context:   %s (%s)\n", row.Name, row.ContextID)
	fmt.Printf("Strategy:  %s  avoid_repeat=%v  seed=%q\n", row.Strategy, row.AvoidRepeat, row.Seed)
	fmt.Printf("Previous:  %d  bag_remaining=%d  signature=%q\n\n",
		row.PreviousIndex, row.QueueLeft, ctx.Shuffle.Signature)

	if len(counts) == 0 {
		fmt.Println("no picks logged")
		return nil
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	fmt.Printf("%-8s| %-8s| %s\n", "Index", "Picks", "Share")
	fmt.Println(strings.Repeat("-", 30))
	for _, c := range counts {
		fmt.Printf("%-8d| %-8d| %5.1f%%\n", c.Index, c.Count, 100*float64(c.Count)/float64(total))
	}
	fmt.Printf("\n%d picks total\n", total)
	return nil
}

// #endregion detail-mode
