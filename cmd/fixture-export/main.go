package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jmcardle/pickwheel/internal/replay"
	"github.com/jmcardle/pickwheel/internal/state"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to pickwheel.db")
	ctxName := flag.String("context", "", "context to export")
	last := flag.Int("last", 0, "export only the N most recent picks (0 = all)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *ctxName == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --context name --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *ctxName, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, ctxName string, last int, outPath string) error {
	store, err := state.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	ctx, err := store.GetContextByName(ctxName)
	if err != nil {
		return fmt.Errorf("get context: %w", err)
	}
	if ctx.Seed == "" {
		return fmt.Errorf("context %q has no seed; an unseeded history cannot replay", ctxName)
	}

	query := `SELECT pick_index, total, strategy, signature, weights_json FROM pick_log
		 WHERE context_id = ? ORDER BY id ASC`
	args := []interface{}{ctx.ContextID}
	if last > 0 {
		query = `SELECT pick_index, total, strategy, signature, weights_json FROM (
			SELECT id, pick_index, total, strategy, signature, weights_json FROM pick_log
			WHERE context_id = ? ORDER BY id DESC LIMIT ?
		) sub ORDER BY id ASC`
		args = append(args, last)
	}

	rows, err := store.DB().Query(query, args...)
	if err != nil {
		return fmt.Errorf("query pick log: %w", err)
	}
	defer rows.Close()

	fixture := replay.Fixture{
		Description: fmt.Sprintf("exported history of context %q", ctxName),
		Seed:        ctx.Seed,
	}

	step := 0
	for rows.Next() {
		var idx, total int
		var strategy string
		var sig, weightsJSON sql.NullString
		if err := rows.Scan(&idx, &total, &strategy, &sig, &weightsJSON); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}

		fs := replay.FixtureStep{
			Total:       total,
			Strategy:    strategy,
			AvoidRepeat: ctx.AvoidRepeat,
		}
		if sig.Valid {
			fs.Signature = sig.String
		}
		if weightsJSON.Valid && weightsJSON.String != "" {
			if err := json.Unmarshal([]byte(weightsJSON.String), &fs.Weights); err != nil {
				return fmt.Errorf("parse weights row %d: %w", step, err)
			}
		}

		fixture.Steps = append(fixture.Steps, fs)
		fixture.Expected = append(fixture.Expected, replay.FixtureExpected{
			Step:   step,
			Index:  idx,
			Picked: true,
		})
		step++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rows: %w", err)
	}
	if step == 0 {
		return fmt.Errorf("no picks logged for context %q", ctxName)
	}

	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("exported %d steps to %s\n", step, outPath)
	return nil
}

// #endregion export
