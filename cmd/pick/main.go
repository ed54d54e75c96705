package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmcardle/pickwheel/internal/engine"
	"github.com/jmcardle/pickwheel/internal/logging"
	"github.com/jmcardle/pickwheel/internal/rng"
	"github.com/jmcardle/pickwheel/internal/signature"
	"github.com/jmcardle/pickwheel/internal/state"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	total := flag.Int("total", 0, "pool size")
	weightsFlag := flag.String("weights", "", "comma-separated weights, e.g. 1,0,4")
	strategyFlag := flag.String("strategy", "uniform", "uniform | weighted | shuffle")
	seed := flag.String("seed", "", "seed text; empty picks non-deterministically")
	avoid := flag.Bool("avoid-repeat", false, "never repeat the immediately previous pick")
	n := flag.Int("n", 1, "number of picks")
	sig := flag.String("signature", "", "pool signature; derived from total when empty")
	dbPath := flag.String("db", "", "persist state in this pickwheel.db (requires --context)")
	ctxName := flag.String("context", "", "named selection context in the db")
	flag.Parse()

	if *total <= 0 && *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: pick --total N [--strategy s] [--weights w1,w2,...] [--seed text] [--avoid-repeat] [--n count]")
		fmt.Fprintln(os.Stderr, "       pick --db path/to/pickwheel.db --context name --total N [...]")
		os.Exit(2)
	}
	if (*dbPath == "") != (*ctxName == "") {
		fmt.Fprintln(os.Stderr, "--db and --context must be used together")
		os.Exit(2)
	}

	strat, err := engine.ParseStrategy(*strategyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	weights, err := parseWeights(*weightsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	poolSig := *sig
	if poolSig == "" {
		poolSig = signature.OfTotal(*total)
	}

	var exitCode int
	if *dbPath != "" {
		exitCode = runPersistent(*dbPath, *ctxName, *total, weights, strat, *seed, *avoid, *n, poolSig)
	} else {
		exitCode = runOneShot(*total, weights, strat, *seed, *avoid, *n, poolSig)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region one-shot

// runOneShot picks n indices with in-memory state only.
func runOneShot(total int, weights []float64, strat engine.Strategy, seed string, avoid bool, n int, sig string) int {
	src := sourceFromSeed(seed)
	st := &engine.ShuffleState{}
	prev := engine.PrevNone

	for i := 0; i < n; i++ {
		idx, ok := engine.PickNext(engine.Request{
			Total:       total,
			Weights:     weights,
			Strategy:    strat,
			Previous:    prev,
			AvoidRepeat: avoid,
			Signature:   sig,
			Rand:        src,
		}, st)
		if !ok {
			fmt.Println("none")
			prev = engine.PrevNone
			continue
		}
		fmt.Println(idx)
		prev = idx
	}
	return 0
}

// #endregion one-shot

// #region persistent

// runPersistent threads picks through a stored context so repeated
// invocations continue the same rotation.
func runPersistent(dbPath, ctxName string, total int, weights []float64, strat engine.Strategy, seed string, avoid bool, n int, sig string) int {
	store, err := state.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 1
	}
	defer store.Close()

	ctx, err := store.GetContextByName(ctxName)
	if err != nil {
		ctx, err = store.CreateContext(ctxName, strat, seed, avoid)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create context: %v\n", err)
			return 1
		}
	}

	src := sourceFromSeed(ctx.Seed)
	for i := 0; i < n; i++ {
		prev := ctx.Previous
		idx, ok := engine.PickNext(engine.Request{
			Total:       total,
			Weights:     weights,
			Strategy:    ctx.Strategy,
			Previous:    prev,
			AvoidRepeat: ctx.AvoidRepeat,
			Signature:   sig,
			Rand:        src,
		}, &ctx.Shuffle)
		if !ok {
			fmt.Println("none")
			ctx.Previous = engine.PrevNone
			continue
		}
		fmt.Println(idx)
		ctx.Previous = idx

		entry := logging.PickEntry{
			ContextID:     ctx.ContextID,
			Index:         idx,
			Total:         total,
			Strategy:      string(ctx.Strategy),
			Signature:     sig,
			Weights:       weights,
			EligibleCount: engine.EligibleCount(total, prev, ctx.AvoidRepeat),
			Reason:        "cli pick",
		}
		if err := logging.LogPick(store.DB(), entry); err != nil {
			fmt.Fprintf(os.Stderr, "log pick: %v\n", err)
			return 1
		}
	}

	if err := store.SaveContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "save context: %v\n", err)
		return 1
	}
	return 0
}

// #endregion persistent

// #region helpers

func sourceFromSeed(seed string) rng.Source {
	if seed == "" {
		return rng.TimeSource()
	}
	return rng.NewFromString(seed).Source()
}

func parseWeights(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	weights := make([]float64, len(parts))
	for i, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad weight %q: %w", p, err)
		}
		weights[i] = w
	}
	return weights, nil
}

// #endregion helpers
