package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jmcardle/pickwheel/internal/engine"
	"github.com/jmcardle/pickwheel/internal/replay"
	"github.com/jmcardle/pickwheel/internal/state"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to pickwheel.db (DB mode, requires --context)")
	ctxName := flag.String("context", "", "context name for DB mode")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/pickwheel.db --context name")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		if *ctxName == "" {
			fmt.Fprintln(os.Stderr, "DB mode requires --context")
			os.Exit(2)
		}
		exitCode = runDBMode(*dbPath, *ctxName)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-extract

// pickRow represents a row from the pick_log table.
type pickRow struct {
	Index       int
	Total       int
	Strategy    string
	Signature   string
	WeightsJSON string
}

func runDBMode(dbPath, ctxName string) int {
	store, err := state.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	ctx, err := store.GetContextByName(ctxName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get context: %v\n", err)
		return 2
	}
	if ctx.Seed == "" {
		fmt.Fprintf(os.Stderr, "context %q has no seed; its history is not replayable\n", ctxName)
		return 2
	}

	rows, err := store.DB().Query(
		`SELECT pick_index, total, strategy, signature, weights_json FROM pick_log
		 WHERE context_id = ? ORDER BY id ASC`, ctx.ContextID,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query pick log: %v\n", err)
		return 2
	}
	defer rows.Close()

	var picks []pickRow
	for rows.Next() {
		var r pickRow
		var sig, weights sql.NullString
		if err := rows.Scan(&r.Index, &r.Total, &r.Strategy, &sig, &weights); err != nil {
			fmt.Fprintf(os.Stderr, "scan row: %v\n", err)
			return 2
		}
		if sig.Valid {
			r.Signature = sig.String
		}
		if weights.Valid {
			r.WeightsJSON = weights.String
		}
		picks = append(picks, r)
	}
	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "iterate rows: %v\n", err)
		return 2
	}
	if len(picks) == 0 {
		fmt.Fprintf(os.Stderr, "no picks logged for context %q\n", ctxName)
		return 2
	}

	steps := make([]replay.Step, len(picks))
	expected := make([]replay.Result, len(picks))
	for i, r := range picks {
		var weights []float64
		if r.WeightsJSON != "" {
			if err := json.Unmarshal([]byte(r.WeightsJSON), &weights); err != nil {
				fmt.Fprintf(os.Stderr, "parse weights row %d: %v\n", i, err)
				return 2
			}
		}
		steps[i] = replay.Step{
			Total:       r.Total,
			Weights:     weights,
			Strategy:    engine.Strategy(r.Strategy),
			AvoidRepeat: ctx.AvoidRepeat,
			Signature:   r.Signature,
		}
		expected[i] = replay.Result{Step: i, Index: r.Index, Picked: true}
	}

	results := replay.Replay(ctx.Seed, steps)
	return printComparison(results, expected)
}

// #endregion db-extract

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	steps, err := f.ToSteps()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad fixture: %v\n", err)
		return 2
	}

	results := replay.Replay(f.Seed, steps)

	if len(f.Expected) == 0 {
		// No expectations recorded: print the run itself.
		for _, r := range results {
			if r.Picked {
				fmt.Printf("step %-4d -> %d\n", r.Step, r.Index)
			} else {
				fmt.Printf("step %-4d -> none\n", r.Step)
			}
		}
		s := replay.Summarize(results)
		fmt.Printf("\n%d steps, %d picks, %d no-selections, %d distinct indices\n",
			s.TotalSteps, s.Picks, s.NoSelections, s.Distinct)
		return 0
	}

	expected := make([]replay.Result, 0, len(f.Expected))
	for _, e := range f.Expected {
		expected = append(expected, replay.Result{Step: e.Step, Index: e.Index, Picked: e.Picked})
	}
	return printComparison(results, expected)
}

// #endregion fixture-mode

// #region output

// printComparison outputs an expected/replayed table and returns the exit
// code: 0 when every step matches, 1 otherwise.
func printComparison(results, expected []replay.Result) int {
	fmt.Printf("%-8s| %-10s| %-10s| %s\n", "Step", "Expected", "Replayed", "Match")
	fmt.Printf("%-8s+%-11s+%-11s+%s\n", "--------", "-----------", "-----------", "------")

	byStep := make(map[int]replay.Result, len(results))
	for _, r := range results {
		byStep[r.Step] = r
	}

	matches := 0
	for _, exp := range expected {
		got, ok := byStep[exp.Step]
		match := "DIFF"
		if ok && got.Index == exp.Index && got.Picked == exp.Picked {
			match = "OK"
			matches++
		}
		fmt.Printf("%-8d| %-10s| %-10s| %s\n",
			exp.Step, formatPick(exp), formatPick(got), match)
	}

	fmt.Printf("\n%d/%d steps match\n", matches, len(expected))
	if matches != len(expected) {
		return 1
	}
	return 0
}

func formatPick(r replay.Result) string {
	if !r.Picked {
		return "none"
	}
	return fmt.Sprintf("%d", r.Index)
}

// #endregion output
