package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmcardle/pickwheel/internal/engine"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS contexts (
	context_id     TEXT PRIMARY KEY,
	name           TEXT NOT NULL UNIQUE,
	strategy       TEXT NOT NULL,
	seed           TEXT,
	avoid_repeat   INTEGER NOT NULL DEFAULT 0,
	previous_index INTEGER NOT NULL DEFAULT -1,
	signature      TEXT NOT NULL DEFAULT '',
	queue_json     TEXT NOT NULL DEFAULT '[]',
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pick_log (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	context_id     TEXT NOT NULL,
	pick_index     INTEGER NOT NULL,
	total          INTEGER NOT NULL,
	strategy       TEXT NOT NULL,
	signature      TEXT,
	weights_json   TEXT,
	eligible_count INTEGER NOT NULL DEFAULT 0,
	reason         TEXT,
	created_at     TEXT NOT NULL,
	FOREIGN KEY (context_id) REFERENCES contexts(context_id)
);

CREATE INDEX IF NOT EXISTS idx_pick_log_context
ON pick_log(context_id, created_at);
`

// #endregion schema

// #region store-struct
// Store persists selection contexts and their pick history in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region create-context
// CreateContext inserts a fresh context with no pick history.
func (s *Store) CreateContext(name string, strategy engine.Strategy, seed string, avoidRepeat bool) (Context, error) {
	now := time.Now().UTC()
	ctx := Context{
		ContextID:   uuid.New().String(),
		Name:        name,
		Strategy:    strategy,
		Seed:        seed,
		AvoidRepeat: avoidRepeat,
		Previous:    engine.PrevNone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	avoid := 0
	if avoidRepeat {
		avoid = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO contexts (context_id, name, strategy, seed, avoid_repeat, previous_index, signature, queue_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, '', '[]', ?, ?)`,
		ctx.ContextID, name, string(strategy), nullIfEmpty(seed), avoid, engine.PrevNone,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Context{}, fmt.Errorf("insert context: %w", err)
	}
	return ctx, nil
}

// #endregion create-context

// #region get-context
// GetContext retrieves a context by ID.
func (s *Store) GetContext(id string) (Context, error) {
	return s.scanContext(s.db.QueryRow(
		`SELECT context_id, name, strategy, seed, avoid_repeat, previous_index, signature, queue_json, created_at, updated_at
		 FROM contexts WHERE context_id = ?`, id,
	))
}

// GetContextByName retrieves a context by its unique name.
func (s *Store) GetContextByName(name string) (Context, error) {
	return s.scanContext(s.db.QueryRow(
		`SELECT context_id, name, strategy, seed, avoid_repeat, previous_index, signature, queue_json, created_at, updated_at
		 FROM contexts WHERE name = ?`, name,
	))
}

func (s *Store) scanContext(row *sql.Row) (Context, error) {
	var ctx Context
	var seed sql.NullString
	var avoid int
	var strategy, queueJSON, createdStr, updatedStr string

	err := row.Scan(&ctx.ContextID, &ctx.Name, &strategy, &seed, &avoid,
		&ctx.Previous, &ctx.Shuffle.Signature, &queueJSON, &createdStr, &updatedStr)
	if err != nil {
		return Context{}, fmt.Errorf("get context: %w", err)
	}

	ctx.Strategy = engine.Strategy(strategy)
	if seed.Valid {
		ctx.Seed = seed.String
	}
	ctx.AvoidRepeat = avoid != 0
	if err := json.Unmarshal([]byte(queueJSON), &ctx.Shuffle.Queue); err != nil {
		return Context{}, fmt.Errorf("unmarshal queue: %w", err)
	}
	ctx.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	ctx.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return ctx, nil
}

// #endregion get-context

// #region save-context
// SaveContext writes back the mutable engine state for a context: previous
// index, shuffle queue, and signature.
func (s *Store) SaveContext(ctx Context) error {
	queue := ctx.Shuffle.Queue
	if queue == nil {
		queue = []int{}
	}
	queueJSON, err := json.Marshal(queue)
	if err != nil {
		return fmt.Errorf("marshal queue: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE contexts SET previous_index = ?, signature = ?, queue_json = ?, updated_at = ?
		 WHERE context_id = ?`,
		ctx.Previous, ctx.Shuffle.Signature, string(queueJSON),
		time.Now().UTC().Format(time.RFC3339Nano), ctx.ContextID,
	)
	if err != nil {
		return fmt.Errorf("save context: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("context %s not found", ctx.ContextID)
	}
	return nil
}

// #endregion save-context

// #region reset-context
// ResetContext clears the pick history state of a context: the previous
// index goes back to none and the shuffle bag is discarded.
func (s *Store) ResetContext(id string) error {
	res, err := s.db.Exec(
		`UPDATE contexts SET previous_index = ?, signature = '', queue_json = '[]', updated_at = ?
		 WHERE context_id = ?`,
		engine.PrevNone, time.Now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return fmt.Errorf("reset context: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("context %s not found", id)
	}
	return nil
}

// #endregion reset-context

// #region list-contexts
// ListContexts returns the most recently updated contexts.
func (s *Store) ListContexts(limit int) ([]Context, error) {
	rows, err := s.db.Query(
		`SELECT context_id, name, strategy, seed, avoid_repeat, previous_index, signature, queue_json, created_at, updated_at
		 FROM contexts ORDER BY updated_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contexts: %w", err)
	}
	defer rows.Close()

	var contexts []Context
	for rows.Next() {
		var ctx Context
		var seed sql.NullString
		var avoid int
		var strategy, queueJSON, createdStr, updatedStr string

		if err := rows.Scan(&ctx.ContextID, &ctx.Name, &strategy, &seed, &avoid,
			&ctx.Previous, &ctx.Shuffle.Signature, &queueJSON, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		ctx.Strategy = engine.Strategy(strategy)
		if seed.Valid {
			ctx.Seed = seed.String
		}
		ctx.AvoidRepeat = avoid != 0
		if err := json.Unmarshal([]byte(queueJSON), &ctx.Shuffle.Queue); err != nil {
			return nil, fmt.Errorf("unmarshal queue: %w", err)
		}
		ctx.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		ctx.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
		contexts = append(contexts, ctx)
	}
	return contexts, rows.Err()
}

// #endregion list-contexts

// #region pick-counts
// PickCounts aggregates the pick_log distribution for one context, ordered
// by index.
func (s *Store) PickCounts(contextID string) ([]PickCount, error) {
	rows, err := s.db.Query(
		`SELECT pick_index, COUNT(*) FROM pick_log
		 WHERE context_id = ? GROUP BY pick_index ORDER BY pick_index ASC`,
		contextID,
	)
	if err != nil {
		return nil, fmt.Errorf("pick counts: %w", err)
	}
	defer rows.Close()

	var counts []PickCount
	for rows.Next() {
		var pc PickCount
		if err := rows.Scan(&pc.Index, &pc.Count); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

// #endregion pick-counts

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
